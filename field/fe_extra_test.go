// Copyright (c) 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSqrtRatioKnownAnswers(t *testing.T) {
	// 4 is a nonzero square mod p (2 is a square root); sqrt_ratio(4, 1)
	// must therefore report wasSquare=1 and a value that squares back to 4.
	four := new(Element).Add(new(Element).One(), new(Element).One())
	four.Add(four, four)
	one := new(Element).One()

	wasSquare, r := SqrtRatio(four, one)
	require.Equal(t, 1, wasSquare)
	var check Element
	check.Square(r)
	require.Equal(t, 1, check.Equal(four))
	require.Equal(t, 0, r.IsNegative())
}

func TestInvertKnownAnswer(t *testing.T) {
	two := new(Element).Add(new(Element).One(), new(Element).One())
	inv := new(Element).Invert(two)
	var product Element
	product.Multiply(two, inv)
	require.Equal(t, 1, product.Equal(new(Element).One()))
}
