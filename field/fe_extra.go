// Copyright (c) 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import "encoding/hex"

// This file contains the extended-precision operations (inversion, the
// sqrt-ratio decision procedure used by point decompression and Ristretto)
// that build on the basic ring operations in fe.go.

func mustFromHex(s string) *Element {
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != 32 {
		panic("edwards25519/field: invalid constant")
	}
	return new(Element).SetBytes(b)
}

// SqrtM1 is a square root of -1 in GF(2^255-19).
var SqrtM1 = mustFromHex("b0a00e4a271beec478e42fad0618432fa7d7fb3d99004d2b0bdfc14f8024832b")

func feSquareN(v, a *Element, n int) *Element {
	v.Square(a)
	for i := 1; i < n; i++ {
		v.Square(v)
	}
	return v
}

// pow250_1 sets v = z^(2^250-1) and returns v, along with the intermediate
// z^11 needed by both Invert and Pow22523.
func pow250_1(z *Element) (out, z11 *Element) {
	var z2, z9, z11v, z22, z_5_0, z_10_0, z_20_0, z_40_0, z_50_0, z_100_0, z_200_0 Element

	z2.Square(z)               // 2
	t := new(Element).Square(&z2)
	feSquareN(t, t, 1)         // z^8
	z9.Multiply(t, z)          // z^9
	z11v.Multiply(&z9, &z2)    // z^11
	z22.Square(&z11v)          // z^22
	z_5_0.Multiply(&z22, &z9)  // z^31 = 2^5-1

	z_10_0.Set(&z_5_0)
	feSquareN(&z_10_0, &z_10_0, 5)
	z_10_0.Multiply(&z_10_0, &z_5_0) // 2^10-1

	z_20_0.Set(&z_10_0)
	feSquareN(&z_20_0, &z_20_0, 10)
	z_20_0.Multiply(&z_20_0, &z_10_0) // 2^20-1

	z_40_0.Set(&z_20_0)
	feSquareN(&z_40_0, &z_40_0, 20)
	z_40_0.Multiply(&z_40_0, &z_20_0) // 2^40-1

	z_50_0.Set(&z_40_0)
	feSquareN(&z_50_0, &z_50_0, 10)
	z_50_0.Multiply(&z_50_0, &z_10_0) // 2^50-1

	z_100_0.Set(&z_50_0)
	feSquareN(&z_100_0, &z_100_0, 50)
	z_100_0.Multiply(&z_100_0, &z_50_0) // 2^100-1

	z_200_0.Set(&z_100_0)
	feSquareN(&z_200_0, &z_200_0, 100)
	z_200_0.Multiply(&z_200_0, &z_100_0) // 2^200-1

	z_250_0 := new(Element)
	z_250_0.Set(&z_200_0)
	feSquareN(z_250_0, z_250_0, 50)
	z_250_0.Multiply(z_250_0, &z_50_0) // 2^250-1

	return z_250_0, &z11v
}

// Invert sets v = 1/z mod p and returns v.
//
// If z == 0, Invert returns v = 0.
//
// Uses the addition chain x^(p-2) = x^(2^255-21), built from the shared
// x^(2^250-1) ladder above followed by 5 more squarings and a multiply by
// x^11 (2^255-21 = (2^250-1)*32 + 11).
func (v *Element) Invert(z *Element) *Element {
	z_250_0, z11 := pow250_1(z)
	feSquareN(z_250_0, z_250_0, 5)
	v.Multiply(z_250_0, z11)
	return v
}

// Pow22523 sets v = z^((p-5)/8) and returns v.
//
// (p-5)/8 = 2^252-3 = (2^250-1)*4 + 1, so this is two more squarings of the
// shared x^(2^250-1) ladder followed by a multiply by z.
func (v *Element) Pow22523(z *Element) *Element {
	z_250_0, _ := pow250_1(z)
	feSquareN(z_250_0, z_250_0, 2)
	v.Multiply(z_250_0, z)
	return v
}

// SqrtRatio returns a square root of u/v, following the sqrt_ratio_i
// construction shared by Ristretto decompression and Edwards point
// decompression:
//
//	r = u·v³·(u·v⁷)^((p-5)/8)
//
// It returns wasSquare == 1 if u/v was a square, zero included (in which
// case r*r*v == u), and 0 otherwise (in which case r*r*v == i*u, where
// i = SqrtM1). r is always chosen non-negative. SqrtRatio does not branch on
// u or v: both candidate square roots are computed and one is selected with
// ConditionalSelect/Abs.
func SqrtRatio(u, v *Element) (wasSquare int, r *Element) {
	var v2, v3, v7, uv3, uv7, check, r2, negU, negUI, rTimesSqrtM1 Element
	v2.Square(v)
	v3.Multiply(&v2, v)
	v7.Multiply(&v3, &v3)
	v7.Multiply(&v7, v)
	uv3.Multiply(u, &v3)
	uv7.Multiply(u, &v7)

	r = new(Element)
	r.Pow22523(&uv7)
	r.Multiply(r, &uv3)

	check.Multiply(v, r2.Square(r))
	negU.Negate(u)
	negUI.Multiply(&negU, SqrtM1)

	correctSign := check.Equal(u)
	flippedSign := check.Equal(&negU)
	flippedSignI := check.Equal(&negUI)

	rTimesSqrtM1.Multiply(r, SqrtM1)
	r.ConditionalSelect(r, &rTimesSqrtM1, flippedSign|flippedSignI)

	r.Abs(r)

	wasSquare = correctSign | flippedSign
	return wasSquare, r
}
