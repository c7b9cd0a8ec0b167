// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"math/big"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

// bigP is p = 2^255-19, used only by tests to cross-check the limb
// arithmetic against math/big (never by the library itself: spec.md's
// Non-goals explicitly rule out a general bigint dependency in the
// implementation).
var bigP = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(19))

func fromBig(b *big.Int) *Element {
	b = new(big.Int).Mod(b, bigP)
	buf := make([]byte, 32)
	bb := b.Bytes()
	for i, v := range bb {
		buf[len(bb)-1-i] = v
	}
	return new(Element).SetBytes(buf)
}

func toBig(e *Element) *big.Int {
	b := e.Bytes()
	rev := make([]byte, len(b))
	for i, v := range b {
		rev[len(b)-1-i] = v
	}
	return new(big.Int).SetBytes(rev)
}

func randElement(seed int64) *Element {
	r := big.NewInt(seed)
	r.Mul(r, r)
	r.Add(r, big.NewInt(1))
	return fromBig(r)
}

func TestRoundTrip(t *testing.T) {
	f := func(in [32]byte) bool {
		in[31] &= 0x7f
		e := new(Element).SetBytes(in[:])
		out := e.Bytes()
		return string(out) == string(in[:])
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestAddMatchesBig(t *testing.T) {
	f := func(a, b [32]byte) bool {
		a[31] &= 0x7f
		b[31] &= 0x7f
		ea := new(Element).SetBytes(a[:])
		eb := new(Element).SetBytes(b[:])
		var sum Element
		sum.Add(ea, eb)

		want := new(big.Int).Add(toBig(ea), toBig(eb))
		want.Mod(want, bigP)
		// sum is unreduced (Add is limb-wise); Bytes() normalizes it before
		// comparison, which is exactly what toBig does.
		return toBig(&sum).Cmp(want) == 0
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestMultiplyMatchesBig(t *testing.T) {
	f := func(a, b [32]byte) bool {
		a[31] &= 0x7f
		b[31] &= 0x7f
		ea := new(Element).SetBytes(a[:])
		eb := new(Element).SetBytes(b[:])
		var prod Element
		prod.Multiply(ea, eb)

		want := new(big.Int).Mul(toBig(ea), toBig(eb))
		want.Mod(want, bigP)
		return toBig(&prod).Cmp(want) == 0
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestAssociativity(t *testing.T) {
	f := func(a, b, c [32]byte) bool {
		a[31] &= 0x7f
		b[31] &= 0x7f
		c[31] &= 0x7f
		ea := new(Element).SetBytes(a[:])
		eb := new(Element).SetBytes(b[:])
		ec := new(Element).SetBytes(c[:])

		var ab, abc1 Element
		ab.Multiply(ea, eb)
		abc1.Multiply(&ab, ec)

		var bc, abc2 Element
		bc.Multiply(eb, ec)
		abc2.Multiply(ea, &bc)

		return abc1.Equal(&abc2) == 1
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestDistributivity(t *testing.T) {
	f := func(a, b, c [32]byte) bool {
		a[31] &= 0x7f
		b[31] &= 0x7f
		c[31] &= 0x7f
		ea := new(Element).SetBytes(a[:])
		eb := new(Element).SetBytes(b[:])
		ec := new(Element).SetBytes(c[:])

		var sum, lhs Element
		sum.Add(eb, ec)
		lhs.Multiply(ea, &sum)

		var ab, ac, rhs Element
		ab.Multiply(ea, eb)
		ac.Multiply(ea, ec)
		rhs.Add(&ab, &ac)

		return lhs.Equal(&rhs) == 1
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestInverse(t *testing.T) {
	f := func(in [32]byte) bool {
		in[31] &= 0x7f
		e := new(Element).SetBytes(in[:])
		if e.IsZero() == 1 {
			return true
		}
		var inv, prod Element
		inv.Invert(e)
		prod.Multiply(e, &inv)
		return prod.Equal(new(Element).One()) == 1
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestConditionalSelectAndSwap(t *testing.T) {
	a := randElement(1)
	b := randElement(2)

	var out Element
	out.ConditionalSelect(a, b, 0)
	require.Equal(t, 1, out.Equal(a))
	out.ConditionalSelect(a, b, 1)
	require.Equal(t, 1, out.Equal(b))

	aCopy, bCopy := new(Element).Set(a), new(Element).Set(b)
	ConditionalSwap(aCopy, bCopy, 0)
	require.Equal(t, 1, aCopy.Equal(a))
	require.Equal(t, 1, bCopy.Equal(b))

	ConditionalSwap(aCopy, bCopy, 1)
	require.Equal(t, 1, aCopy.Equal(b))
	require.Equal(t, 1, bCopy.Equal(a))
}

func TestIsNegativeAndAbs(t *testing.T) {
	// IsNegative is the low bit of the canonical encoding: 2 is even
	// (non-negative), and -2 = p-2 is odd (negative).
	one := new(Element).One()
	two := new(Element).Add(one, one)
	var negTwo Element
	negTwo.Negate(two)

	require.Equal(t, 1, negTwo.IsNegative())
	require.Equal(t, 0, two.IsNegative())

	var abs Element
	abs.Abs(&negTwo)
	require.Equal(t, 1, abs.Equal(two))
}

func TestZeroAndOne(t *testing.T) {
	var z Element
	z.Zero()
	require.Equal(t, 1, z.IsZero())

	var o Element
	o.One()
	require.Equal(t, 0, o.IsZero())
	require.Equal(t, byte(1), o.Bytes()[0])
}
