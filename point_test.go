// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edwards25519

import (
	"math/big"
	"testing"
	"testing/quick"

	"github.com/hallowgate/edwards25519/scalar"
	"github.com/stretchr/testify/require"
)

var bigL = func() *big.Int {
	l, ok := new(big.Int).SetString("27742317777372353535851937790883648493", 10)
	if !ok {
		panic("bad constant")
	}
	l.Add(l, new(big.Int).Lsh(big.NewInt(1), 252))
	return l
}()

func scalarFromBig(b *big.Int) *scalar.Scalar {
	b = new(big.Int).Mod(b, bigL)
	buf := make([]byte, 32)
	bb := b.Bytes()
	for i, v := range bb {
		buf[len(bb)-1-i] = v
	}
	s, ok := scalar.FromCanonicalBytes(buf)
	if !ok {
		panic("scalarFromBig: reduced value not canonical")
	}
	return s
}

func randScalar(seed int64) *scalar.Scalar {
	r := big.NewInt(seed)
	r.Mul(r, r)
	r.Add(r, big.NewInt(98765))
	return scalarFromBig(r)
}

func TestIdentityIsAdditiveIdentity(t *testing.T) {
	B := Generator()
	var sum EdwardsPoint
	sum.Add(B, Identity())
	require.Equal(t, 1, sum.Equal(B))
}

func TestGeneratorIsTorsionFree(t *testing.T) {
	require.Equal(t, 1, Generator().IsTorsionFree())
}

func TestEightTorsionOrderDividesEight(t *testing.T) {
	for i, pt := range EightTorsion {
		var eight EdwardsPoint
		eight.MultiplyByCofactor(pt)
		require.Equalf(t, 1, eight.IsIdentity(), "EightTorsion[%d]", i)
	}
}

func TestEightTorsionGeneratorHasOrderEight(t *testing.T) {
	// EightTorsion[1] generates the whole subgroup: none of its first
	// seven multiples should be the identity, but the eighth must be.
	gen := EightTorsion[1]
	acc := Identity()
	for i := 1; i < 8; i++ {
		acc.Add(acc, gen)
		require.Equalf(t, 0, acc.IsIdentity(), "multiple %d of order-8 generator", i)
	}
	acc.Add(acc, gen)
	require.Equal(t, 1, acc.IsIdentity())
}

func TestScalarMultiplyAdditivity(t *testing.T) {
	f := func(seedA, seedB int64) bool {
		a := randScalar(seedA)
		b := randScalar(seedB)
		var sum scalar.Scalar
		sum.Add(a, b)

		B := Generator()
		var aB, bB, sumB, aBPlusBB EdwardsPoint
		aB.Multiply(B, a)
		bB.Multiply(B, b)
		sumB.Multiply(B, &sum)
		aBPlusBB.Add(&aB, &bB)

		return sumB.Equal(&aBPlusBB) == 1
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 64}); err != nil {
		t.Error(err)
	}
}

func TestScalarMultiplyByOneIsIdentity(t *testing.T) {
	B := Generator()
	var got EdwardsPoint
	got.Multiply(B, scalar.NewOne())
	require.Equal(t, 1, got.Equal(B))
}

func TestScalarMultiplyByZeroIsIdentity(t *testing.T) {
	B := Generator()
	var got EdwardsPoint
	got.Multiply(B, scalar.NewZero())
	require.Equal(t, 1, got.IsIdentity())
}

func TestVartimeDoubleScalarMultiplyBasepointMatchesTwoMultiplies(t *testing.T) {
	f := func(seedA, seedB int64) bool {
		a := randScalar(seedA)
		b := randScalar(seedB)

		var A EdwardsPoint
		A.Multiply(Generator(), randScalar(seedA+seedB+1))

		var want, aA, bB EdwardsPoint
		aA.Multiply(&A, a)
		bB.Multiply(Generator(), b)
		want.Add(&aA, &bB)

		var got EdwardsPoint
		got.VartimeDoubleScalarMultiplyBasepoint(a, &A, b)

		return got.Equal(&want) == 1
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 32}); err != nil {
		t.Error(err)
	}
}

func TestCompressDecompressRoundTrip(t *testing.T) {
	f := func(seed int64) bool {
		var p EdwardsPoint
		p.Multiply(Generator(), randScalar(seed))

		got, err := p.Compress().Decompress()
		if err != nil {
			return false
		}
		return got.Equal(&p) == 1
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 64}); err != nil {
		t.Error(err)
	}
}

func TestDecompressRejectsInvalidY(t *testing.T) {
	// y=2: (y^2-1)/(d*y^2+1) is not a square, so no x satisfies the curve
	// equation for this y.
	raw := [32]byte{2}
	c, err := new(CompressedEdwardsY).SetBytes(raw[:])
	require.NoError(t, err)
	_, err = c.Decompress()
	require.Error(t, err)
}

func TestMultByPrimeOrderKillsBasepoint(t *testing.T) {
	var got EdwardsPoint
	got.MultByPrimeOrder(Generator())
	require.Equal(t, 1, got.IsIdentity())
}
