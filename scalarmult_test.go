// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edwards25519

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

// TestMulByGroupOrderMatchesMultByPrimeOrder cross-checks the addition-chain
// based MultByPrimeOrder against an independent computation of the same
// quantity: multiplying by the literal bit pattern of the subgroup order via
// the general windowed Multiply. MultByPrimeOrder mutates its argument, so
// each side gets its own copy of the input point.
func TestMulByGroupOrderMatchesMultByPrimeOrder(t *testing.T) {
	f := func(seed int64) bool {
		var p EdwardsPoint
		p.Multiply(Generator(), randScalar(seed))

		pForChain := new(EdwardsPoint).Set(&p)
		var viaChain EdwardsPoint
		viaChain.MultByPrimeOrder(pForChain)

		var viaBits EdwardsPoint
		viaBits.mulByGroupOrder(&p)

		return viaChain.Equal(&viaBits) == 1
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 32}); err != nil {
		t.Error(err)
	}
}

func TestMulByGroupOrderKillsBasepoint(t *testing.T) {
	var got EdwardsPoint
	got.mulByGroupOrder(Generator())
	require.Equal(t, 1, got.IsIdentity())
}
