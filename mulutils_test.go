// Copyright (c) 2019 Jack Grigg. Ported under the same license terms.

package edwards25519

import (
	"testing"

	"github.com/hallowgate/edwards25519/scalar"
	"github.com/stretchr/testify/require"
)

func randRistrettoPoint(seed int64) *RistrettoElement {
	p := new(RistrettoElement)
	p.Multiply(RistrettoGenerator(), randScalar(seed))
	return p
}

func TestMulStrausMatchesNaiveSum(t *testing.T) {
	n := 8
	scalars := make([]*scalar.Scalar, n)
	points := make([]*RistrettoElement, n)
	want := NewRistrettoIdentity()
	for i := 0; i < n; i++ {
		scalars[i] = randScalar(int64(1000 + i))
		points[i] = randRistrettoPoint(int64(2000 + i))
		var term RistrettoElement
		term.Multiply(points[i], scalars[i])
		want.Add(want, &term)
	}

	got := MulStraus(scalars, points)
	require.Equal(t, 1, got.CtEquals(want))
}

func TestMulPippengerMatchesMulStraus(t *testing.T) {
	n := 40
	scalars := make([]*scalar.Scalar, n)
	points := make([]*RistrettoElement, n)
	for i := 0; i < n; i++ {
		scalars[i] = randScalar(int64(3000 + i))
		points[i] = randRistrettoPoint(int64(4000 + i))
	}

	viaStraus := MulStraus(scalars, points)
	viaPippenger := MulPippenger(scalars, points)
	require.Equal(t, 1, viaStraus.CtEquals(viaPippenger))
}

func TestMultiscalarMulDispatchesByLength(t *testing.T) {
	small := make([]*scalar.Scalar, 5)
	smallPts := make([]*RistrettoElement, 5)
	for i := range small {
		small[i] = randScalar(int64(5000 + i))
		smallPts[i] = randRistrettoPoint(int64(6000 + i))
	}
	require.Equal(t, 1, MultiscalarMul(small, smallPts).CtEquals(MulStraus(small, smallPts)))

	large := make([]*scalar.Scalar, 32)
	largePts := make([]*RistrettoElement, 32)
	for i := range large {
		large[i] = randScalar(int64(7000 + i))
		largePts[i] = randRistrettoPoint(int64(8000 + i))
	}
	require.Equal(t, 1, MultiscalarMul(large, largePts).CtEquals(MulPippenger(large, largePts)))
}

func TestMultiscalarMulEmpty(t *testing.T) {
	got := MultiscalarMul(nil, nil)
	require.Equal(t, 1, got.CtEquals(NewRistrettoIdentity()))
}
