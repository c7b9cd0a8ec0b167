// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package edwards25519 implements group logic for the twisted Edwards curve
//
//	-x^2 + y^2 = 1 + d*x^2*y^2
//
// This is the curve used by the Ed25519 signature scheme and, via its
// cofactor-8 prime-order quotient, by the Ristretto255 group. Five
// coordinate systems are used internally (Extended, Projective,
// ProjectiveNiels, AffineNiels, Completed) and chosen per-operation to
// minimize the number of field multiplications, following the
// Hisil-Wong-Carter-Dawson formulas.
package edwards25519

import "github.com/hallowgate/edwards25519/field"

// Completed holds a point in (X:Y:Z:T) coordinates with independent
// denominators for the pairs (X,Z) and (Y,T): the direct output of an
// addition or doubling, before it is folded back into Extended form.
type Completed struct {
	X, Y, Z, T field.Element
}

// Projective holds a point in (X:Y:Z) coordinates: used for doubling, where
// the T coordinate isn't needed until the result is converted back.
type Projective struct {
	X, Y, Z field.Element
}

// EdwardsPoint is a point on edwards25519 in extended (X:Y:Z:T) coordinates,
// satisfying x = X/Z, y = Y/Z, x*y = T/Z. This is the canonical internal
// form and the type callers hold.
//
// This type works similarly to math/big.Int: all arguments and receivers
// are allowed to alias, and the zero value is not a valid point (use
// Identity or Generator).
type EdwardsPoint struct {
	X, Y, Z, T field.Element
}

// ProjectiveNiels holds the precomputed addend (Y+X, Y-X, Z, 2dT) used by
// the mixed addition formulas.
type ProjectiveNiels struct {
	YPlusX, YMinusX, Z, T2d field.Element
}

// AffineNiels holds the precomputed addend (y+x, y-x, 2dxy) for a point
// with Z=1, used by fixed-base tables where an inversion has already been
// paid once at table-construction time.
type AffineNiels struct {
	YPlusX, YMinusX, T2d field.Element
}

// Identity returns the identity element (0, 1, 1, 0).
func Identity() *EdwardsPoint {
	return new(EdwardsPoint).SetIdentity()
}

// SetIdentity sets v to the identity element and returns v.
func (v *EdwardsPoint) SetIdentity() *EdwardsPoint {
	v.X.Zero()
	v.Y.One()
	v.Z.One()
	v.T.Zero()
	return v
}

// Generator returns the canonical edwards25519 basepoint B.
func Generator() *EdwardsPoint {
	v, err := basepointCompressed.Decompress()
	if err != nil {
		panic("edwards25519: basepoint does not decompress: " + err.Error())
	}
	return v
}

// Set sets v = u and returns v.
func (v *EdwardsPoint) Set(u *EdwardsPoint) *EdwardsPoint {
	*v = *u
	return v
}

// Conversions between coordinate systems.

// SetCompleted sets v from a Completed point and returns v.
func (v *EdwardsPoint) SetCompleted(p *Completed) *EdwardsPoint {
	v.X.Multiply(&p.X, &p.T)
	v.Y.Multiply(&p.Y, &p.Z)
	v.Z.Multiply(&p.Z, &p.T)
	v.T.Multiply(&p.X, &p.Y)
	return v
}

// SetProjective sets v from a Projective point and returns v.
func (v *EdwardsPoint) SetProjective(p *Projective) *EdwardsPoint {
	v.X.Multiply(&p.X, &p.Z)
	v.Y.Multiply(&p.Y, &p.Z)
	v.Z.Square(&p.Z)
	v.T.Multiply(&p.X, &p.Y)
	return v
}

// FromCompleted sets v from a Completed point and returns v.
func (v *Projective) FromCompleted(p *Completed) *Projective {
	v.X.Multiply(&p.X, &p.T)
	v.Y.Multiply(&p.Y, &p.Z)
	v.Z.Multiply(&p.Z, &p.T)
	return v
}

// FromExtended sets v from an EdwardsPoint and returns v.
func (v *Projective) FromExtended(p *EdwardsPoint) *Projective {
	v.X.Set(&p.X)
	v.Y.Set(&p.Y)
	v.Z.Set(&p.Z)
	return v
}

// FromExtended builds the ProjectiveNiels addend for p and returns v.
func (v *ProjectiveNiels) FromExtended(p *EdwardsPoint) *ProjectiveNiels {
	v.YPlusX.Add(&p.Y, &p.X)
	v.YMinusX.Subtract(&p.Y, &p.X)
	v.Z.Set(&p.Z)
	v.T2d.Multiply(&p.T, d2)
	return v
}

// FromExtended builds the AffineNiels addend for p, dividing out Z, and
// returns v.
func (v *AffineNiels) FromExtended(p *EdwardsPoint) *AffineNiels {
	var invZ field.Element
	invZ.Invert(&p.Z)

	var x, y, t field.Element
	x.Multiply(&p.X, &invZ)
	y.Multiply(&p.Y, &invZ)
	t.Multiply(&p.T, &invZ)

	v.YPlusX.Add(&y, &x)
	v.YMinusX.Subtract(&y, &x)
	v.T2d.Multiply(&t, d2)
	return v
}

// Addition and subtraction.
//
// Formulas follow the extended-twisted-Edwards addition of
// Hisil-Wong-Carter-Dawson, with Q given as a ProjectiveNiels addend
// (Y+X, Y-X, Z, 2dT):
//
//	A = (Y-X)*Q.YMinusX
//	B = (Y+X)*Q.YPlusX
//	C = T*Q.T2d
//	D = Z*Q.Z
//	X3 = B-A, Y3 = B+A
//	Z3 = 2D+C, T3 = 2D-C      (addition)
//	Z3 = 2D-C, T3 = 2D+C      (subtraction; swap Q.YPlusX/YMinusX)

// Add sets v = p + q and returns v.
func (v *EdwardsPoint) Add(p, q *EdwardsPoint) *EdwardsPoint {
	var qn ProjectiveNiels
	qn.FromExtended(q)
	var r Completed
	r.AddNiels(p, &qn)
	return v.SetCompleted(&r)
}

// Subtract sets v = p - q and returns v.
func (v *EdwardsPoint) Subtract(p, q *EdwardsPoint) *EdwardsPoint {
	var qn ProjectiveNiels
	qn.FromExtended(q)
	var r Completed
	r.SubNiels(p, &qn)
	return v.SetCompleted(&r)
}

// AddNiels sets v = p + q, where q is a ProjectiveNiels addend, and returns v.
func (v *Completed) AddNiels(p *EdwardsPoint, q *ProjectiveNiels) *Completed {
	var yPlusX, yMinusX, pp, mm, tt2d, zz2 field.Element

	yPlusX.Add(&p.Y, &p.X)
	yMinusX.Subtract(&p.Y, &p.X)

	pp.Multiply(&yPlusX, &q.YPlusX)
	mm.Multiply(&yMinusX, &q.YMinusX)
	tt2d.Multiply(&p.T, &q.T2d)
	zz2.Multiply(&p.Z, &q.Z)

	zz2.Add(&zz2, &zz2)

	v.X.Subtract(&pp, &mm)
	v.Y.Add(&pp, &mm)
	v.Z.Add(&zz2, &tt2d)
	v.T.Subtract(&zz2, &tt2d)
	return v
}

// SubNiels sets v = p - q, where q is a ProjectiveNiels addend, and returns v.
func (v *Completed) SubNiels(p *EdwardsPoint, q *ProjectiveNiels) *Completed {
	var yPlusX, yMinusX, pp, mm, tt2d, zz2 field.Element

	yPlusX.Add(&p.Y, &p.X)
	yMinusX.Subtract(&p.Y, &p.X)

	pp.Multiply(&yPlusX, &q.YMinusX) // flipped
	mm.Multiply(&yMinusX, &q.YPlusX) // flipped
	tt2d.Multiply(&p.T, &q.T2d)
	zz2.Multiply(&p.Z, &q.Z)

	zz2.Add(&zz2, &zz2)

	v.X.Subtract(&pp, &mm)
	v.Y.Add(&pp, &mm)
	v.Z.Subtract(&zz2, &tt2d) // flipped
	v.T.Add(&zz2, &tt2d)      // flipped
	return v
}

// AddAffine sets v = p + q, where q is an AffineNiels addend, and returns v.
func (v *Completed) AddAffine(p *EdwardsPoint, q *AffineNiels) *Completed {
	var yPlusX, yMinusX, pp, mm, tt2d, z2 field.Element

	yPlusX.Add(&p.Y, &p.X)
	yMinusX.Subtract(&p.Y, &p.X)

	pp.Multiply(&yPlusX, &q.YPlusX)
	mm.Multiply(&yMinusX, &q.YMinusX)
	tt2d.Multiply(&p.T, &q.T2d)

	z2.Add(&p.Z, &p.Z)

	v.X.Subtract(&pp, &mm)
	v.Y.Add(&pp, &mm)
	v.Z.Add(&z2, &tt2d)
	v.T.Subtract(&z2, &tt2d)
	return v
}

// SubAffine sets v = p - q, where q is an AffineNiels addend, and returns v.
func (v *Completed) SubAffine(p *EdwardsPoint, q *AffineNiels) *Completed {
	var yPlusX, yMinusX, pp, mm, tt2d, z2 field.Element

	yPlusX.Add(&p.Y, &p.X)
	yMinusX.Subtract(&p.Y, &p.X)

	pp.Multiply(&yPlusX, &q.YMinusX) // flipped
	mm.Multiply(&yMinusX, &q.YPlusX) // flipped
	tt2d.Multiply(&p.T, &q.T2d)

	z2.Add(&p.Z, &p.Z)

	v.X.Subtract(&pp, &mm)
	v.Y.Add(&pp, &mm)
	v.Z.Subtract(&z2, &tt2d) // flipped
	v.T.Add(&z2, &tt2d)      // flipped
	return v
}

// Doubling.

// Double sets v = 2*p and returns v.
func (v *Completed) Double(p *Projective) *Completed {
	var xx, yy, zz2, xPlusYSq field.Element

	xx.Square(&p.X)
	yy.Square(&p.Y)
	zz2.Square(&p.Z)
	zz2.Add(&zz2, &zz2)
	xPlusYSq.Add(&p.X, &p.Y)
	xPlusYSq.Square(&xPlusYSq)

	v.Y.Add(&yy, &xx)
	v.Z.Subtract(&yy, &xx)

	v.X.Subtract(&xPlusYSq, &v.Y)
	v.T.Subtract(&zz2, &v.Z)
	return v
}

// Double sets v = 2*p and returns v.
func (v *EdwardsPoint) Double(p *EdwardsPoint) *EdwardsPoint {
	var pp Projective
	pp.FromExtended(p)
	var r Completed
	r.Double(&pp)
	return v.SetCompleted(&r)
}

// MultiplyByCofactor sets v = 8*p (three doublings) and returns v.
func (v *EdwardsPoint) MultiplyByCofactor(p *EdwardsPoint) *EdwardsPoint {
	return v.mulByPow2(p, 3)
}

// mulByPow2 sets v = 2^k * p via k chained doublings, staying in Projective
// form between doublings and only reconverting to Extended once at the end.
func (v *EdwardsPoint) mulByPow2(p *EdwardsPoint, k uint) *EdwardsPoint {
	if k == 0 {
		return v.Set(p)
	}
	var pp Projective
	pp.FromExtended(p)
	var r Completed
	for i := uint(0); i < k-1; i++ {
		r.Double(&pp)
		pp.FromCompleted(&r)
	}
	r.Double(&pp)
	return v.SetCompleted(&r)
}

// Negate sets v = -p and returns v.
func (v *EdwardsPoint) Negate(p *EdwardsPoint) *EdwardsPoint {
	v.X.Negate(&p.X)
	v.Y.Set(&p.Y)
	v.Z.Set(&p.Z)
	v.T.Negate(&p.T)
	return v
}

// Equal returns 1 if v is the same point as u, and 0 otherwise, in
// constant time. It compares x=X/Z, y=Y/Z cross-multiplied to avoid an
// inversion.
func (v *EdwardsPoint) Equal(u *EdwardsPoint) int {
	var t1, t2, t3, t4 field.Element
	t1.Multiply(&v.X, &u.Z)
	t2.Multiply(&u.X, &v.Z)
	t3.Multiply(&v.Y, &u.Z)
	t4.Multiply(&u.Y, &v.Z)

	return t1.Equal(&t2) & t3.Equal(&t4)
}

// IsIdentity returns 1 if v is the identity element, and 0 otherwise.
func (v *EdwardsPoint) IsIdentity() int {
	return v.Equal(Identity())
}

// IsSmallOrder returns 1 if v has order dividing 8 (multiplyByCofactor(v) is
// the identity), and 0 otherwise.
func (v *EdwardsPoint) IsSmallOrder() int {
	var p EdwardsPoint
	p.MultiplyByCofactor(v)
	return p.IsIdentity()
}

// IsTorsionFree returns 1 if [l]v = identity, i.e. v lies in the
// prime-order subgroup, and 0 otherwise. This is variable-time, since it
// is a public predicate on a public point (never on a secret scalar).
func (v *EdwardsPoint) IsTorsionFree() int {
	var p, scratch EdwardsPoint
	scratch.Set(v)
	p.MultByPrimeOrder(&scratch)
	return p.IsIdentity()
}

// ConditionalSelect sets v to a if cond == 0, and to b if cond == 1, in
// constant time.
func (v *EdwardsPoint) ConditionalSelect(a, b *EdwardsPoint, cond int) *EdwardsPoint {
	v.X.ConditionalSelect(&a.X, &b.X, cond)
	v.Y.ConditionalSelect(&a.Y, &b.Y, cond)
	v.Z.ConditionalSelect(&a.Z, &b.Z, cond)
	v.T.ConditionalSelect(&a.T, &b.T, cond)
	return v
}

// ConditionalSelect sets v to a if cond == 0, and to b if cond == 1, in
// constant time.
func (v *ProjectiveNiels) ConditionalSelect(a, b *ProjectiveNiels, cond int) *ProjectiveNiels {
	v.YPlusX.ConditionalSelect(&a.YPlusX, &b.YPlusX, cond)
	v.YMinusX.ConditionalSelect(&a.YMinusX, &b.YMinusX, cond)
	v.Z.ConditionalSelect(&a.Z, &b.Z, cond)
	v.T2d.ConditionalSelect(&a.T2d, &b.T2d, cond)
	return v
}

// ConditionalSelect sets v to a if cond == 0, and to b if cond == 1, in
// constant time.
func (v *AffineNiels) ConditionalSelect(a, b *AffineNiels, cond int) *AffineNiels {
	v.YPlusX.ConditionalSelect(&a.YPlusX, &b.YPlusX, cond)
	v.YMinusX.ConditionalSelect(&a.YMinusX, &b.YMinusX, cond)
	v.T2d.ConditionalSelect(&a.T2d, &b.T2d, cond)
	return v
}

// ConditionalNegate negates v if cond == 1, and leaves it unchanged if
// cond == 0, in constant time.
func (v *ProjectiveNiels) ConditionalNegate(cond int) *ProjectiveNiels {
	field.ConditionalSwap(&v.YPlusX, &v.YMinusX, cond)
	v.T2d.ConditionalNegate(&v.T2d, cond)
	return v
}

// ConditionalNegate negates v if cond == 1, and leaves it unchanged if
// cond == 0, in constant time.
func (v *AffineNiels) ConditionalNegate(cond int) *AffineNiels {
	field.ConditionalSwap(&v.YPlusX, &v.YMinusX, cond)
	v.T2d.ConditionalNegate(&v.T2d, cond)
	return v
}
