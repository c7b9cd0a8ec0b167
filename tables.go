// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edwards25519

import (
	"crypto/subtle"

	"github.com/hallowgate/edwards25519/scalar"
)

// projectiveNielsLookupTable holds the multiples {P, 2P, ..., 8P} of a
// single point, in ProjectiveNiels form, indexed by a signed digit in
// [-8, 8]. Select scans the whole table with constant-time equality masks,
// so it is safe to use with secret digits.
type projectiveNielsLookupTable struct {
	points [8]ProjectiveNiels
}

func newProjectiveNielsLookupTable(p *EdwardsPoint) *projectiveNielsLookupTable {
	var t projectiveNielsLookupTable
	t.points[0].FromExtended(p)
	cur := new(EdwardsPoint).Set(p)
	for i := 1; i < 8; i++ {
		cur.Add(cur, p)
		t.points[i].FromExtended(cur)
	}
	return &t
}

// Select sets v to |digit|*P, negated if digit is negative, in constant
// time. digit must be in [-8, 8].
func (t *projectiveNielsLookupTable) Select(v *ProjectiveNiels, digit int8) {
	mask := digit >> 7 // 0 if digit >= 0, -1 if digit < 0, via arithmetic shift
	absDigit := (digit ^ mask) - mask
	sign := int(mask & 1)

	*v = identityProjectiveNiels
	for i := 1; i <= 8; i++ {
		cond := equalInt8(absDigit, int8(i))
		v.ConditionalSelect(v, &t.points[i-1], cond)
	}
	v.ConditionalNegate(sign)
}

// equalInt8 returns 1 if a == b, and 0 otherwise, in constant time.
func equalInt8(a, b int8) int {
	return int(subtle.ConstantTimeByteEq(uint8(a), uint8(b)))
}

var identityProjectiveNiels = func() ProjectiveNiels {
	var t ProjectiveNiels
	t.FromExtended(Identity())
	return t
}()

// affineNielsNafLookupTable holds the odd multiples {P, 3P, 5P, ...} of a
// single point up to (2^(width-1)-1)*P, in AffineNiels form, used by
// variable-time NAF-based scalar multiplication (basepointNafTable in
// scalarmult.go, and the public-point table of
// VartimeDoubleScalarMultiplyBasepoint).
type affineNielsNafLookupTable struct {
	points []AffineNiels
}

func newAffineNielsNafLookupTableWidth(p *EdwardsPoint, width uint) *affineNielsNafLookupTable {
	n := 1 << (width - 2)
	t := affineNielsNafLookupTable{points: make([]AffineNiels, n)}
	t.points[0].FromExtended(p)
	p2 := new(EdwardsPoint).Double(p)
	cur := new(EdwardsPoint).Set(p)
	for i := 1; i < n; i++ {
		cur.Add(cur, p2)
		t.points[i].FromExtended(cur)
	}
	return &t
}

// newAffineNielsNafLookupTable builds a width-5 table, the width used for
// the public point in VartimeDoubleScalarMultiplyBasepoint.
func newAffineNielsNafLookupTable(p *EdwardsPoint) *affineNielsNafLookupTable {
	return newAffineNielsNafLookupTableWidth(p, 5)
}

// SelectVartime returns |digit|*P (negated if digit < 0) in variable time.
// digit must be odd and within the range the table was built for.
func (t *affineNielsNafLookupTable) SelectVartime(digit int8) *AffineNiels {
	if digit == 0 {
		panic("edwards25519: NAF lookup of zero digit")
	}
	idx := digit
	neg := false
	if idx < 0 {
		idx = -idx
		neg = true
	}
	v := t.points[(idx-1)/2]
	if neg {
		v.YPlusX, v.YMinusX = v.YMinusX, v.YPlusX
		v.T2d.Negate(&v.T2d)
	}
	return &v
}

// EdwardsBasepointTable is a precomputed table for fast fixed-base scalar
// multiplication against a chosen basepoint. It holds, for each of the 64
// radix-16 digit positions of a scalar, the 8 points j*16^i*P for j in
// [1,8], in AffineNiels form.
type EdwardsBasepointTable struct {
	tables [64]affineNielsLookupTable8
}

// affineNielsLookupTable8 holds the multiples {P, 2P, ..., 8P} of a point,
// in AffineNiels form, for constant-time windowed lookup with a radix-16
// digit (range [-8, 8]) during fixed-base multiplication.
type affineNielsLookupTable8 struct {
	points [8]AffineNiels
}

func newAffineNielsLookupTable8(p *EdwardsPoint) *affineNielsLookupTable8 {
	var t affineNielsLookupTable8
	t.points[0].FromExtended(p)
	cur := new(EdwardsPoint).Set(p)
	for i := 1; i < 8; i++ {
		cur.Add(cur, p)
		t.points[i].FromExtended(cur)
	}
	return &t
}

func (t *affineNielsLookupTable8) Select(v *AffineNiels, digit int8) {
	mask := digit >> 7 // 0 if digit >= 0, -1 if digit < 0, via arithmetic shift
	absDigit := (digit ^ mask) - mask
	sign := int(mask & 1)

	*v = identityAffineNiels
	for i := int8(1); i <= 8; i++ {
		cond := equalInt8(absDigit, i)
		v.ConditionalSelect(v, &t.points[i-1], cond)
	}
	v.ConditionalNegate(sign)
}

var identityAffineNiels = func() AffineNiels {
	var t AffineNiels
	t.FromExtended(Identity())
	return t
}()

// NewEdwardsBasepointTable builds a fixed-base multiplication table for p.
func NewEdwardsBasepointTable(p *EdwardsPoint) *EdwardsBasepointTable {
	var table EdwardsBasepointTable
	cur := new(EdwardsPoint).Set(p)
	for i := 0; i < 64; i++ {
		table.tables[i] = *newAffineNielsLookupTable8(cur)
		// Advance to 16^(i+1)*P for the next digit position.
		for j := 0; j < 4; j++ {
			cur.Double(cur)
		}
	}
	return &table
}

// Multiply sets v = s*B, where B is the table's basepoint, using the
// radix-16 signed digit expansion of s and one AffineNiels addition per
// digit (64 additions total, no doublings needed since each table column
// already holds the right power of 16).
func (table *EdwardsBasepointTable) Multiply(v *EdwardsPoint, s *scalar.Scalar) *EdwardsPoint {
	digits := s.ToRadix16()

	v.SetIdentity()
	var r Completed
	var addend AffineNiels
	for i := 0; i < 64; i++ {
		table.tables[i].Select(&addend, digits[i])
		r.AddAffine(v, &addend)
		v.SetCompleted(&r)
	}
	return v
}
