// Copyright (c) 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edwards25519

import (
	"bytes"
	"errors"

	"github.com/hallowgate/edwards25519/field"
	"github.com/hallowgate/edwards25519/scalar"
)

// RistrettoElement is an element of the Ristretto255 group, the prime-order
// group obtained by quotienting edwards25519 by its cofactor-8 torsion
// subgroup. It wraps an EdwardsPoint in extended coordinates; two
// EdwardsPoints that differ by an element of the 4-torsion subgroup wrap to
// the same RistrettoElement, so equality and encoding are defined via the
// Ristretto bijection (Compress/CtEquals), never by comparing the
// coordinates directly.
type RistrettoElement struct {
	repr EdwardsPoint
}

// NewRistrettoIdentity returns the identity element of the Ristretto255 group.
func NewRistrettoIdentity() *RistrettoElement {
	r := new(RistrettoElement)
	r.repr.SetIdentity()
	return r
}

// RistrettoGenerator returns the standard Ristretto255 generator, the image
// of the edwards25519 basepoint under the quotient map.
func RistrettoGenerator() *RistrettoElement {
	r := new(RistrettoElement)
	r.repr.Set(Generator())
	return r
}

// Add sets v = p + q and returns v.
func (v *RistrettoElement) Add(p, q *RistrettoElement) *RistrettoElement {
	v.repr.Add(&p.repr, &q.repr)
	return v
}

// Subtract sets v = p - q and returns v.
func (v *RistrettoElement) Subtract(p, q *RistrettoElement) *RistrettoElement {
	v.repr.Subtract(&p.repr, &q.repr)
	return v
}

// Negate sets v = -p and returns v.
func (v *RistrettoElement) Negate(p *RistrettoElement) *RistrettoElement {
	v.repr.Negate(&p.repr)
	return v
}

// Multiply sets v = s*p and returns v.
func (v *RistrettoElement) Multiply(p *RistrettoElement, s *scalar.Scalar) *RistrettoElement {
	v.repr.Multiply(&p.repr, s)
	return v
}

// CtEquals returns 1 if v and u represent the same Ristretto255 element,
// and 0 otherwise, in constant time. Two extended-coordinate
// representatives of the same Ristretto element can differ by a 4-torsion
// component that swaps the roles of X and Y, so this checks both
// X1*Y2 == X2*Y1 and Y1*Y2 == X1*X2 rather than comparing full encodings
// or the first product alone.
func (v *RistrettoElement) CtEquals(u *RistrettoElement) int {
	var x1y2, x2y1, y1y2, x1x2 field.Element
	x1y2.Multiply(&v.repr.X, &u.repr.Y)
	x2y1.Multiply(&u.repr.X, &v.repr.Y)
	y1y2.Multiply(&v.repr.Y, &u.repr.Y)
	x1x2.Multiply(&v.repr.X, &u.repr.X)
	return x1y2.Equal(&x2y1) | y1y2.Equal(&x1x2)
}

// ConditionalSelect sets v to a if cond == 0, and to b if cond == 1, in
// constant time.
func (v *RistrettoElement) ConditionalSelect(a, b *RistrettoElement, cond int) *RistrettoElement {
	v.repr.ConditionalSelect(&a.repr, &b.repr, cond)
	return v
}

// ConditionalNegate negates v if cond == 1, and leaves it unchanged if
// cond == 0, in constant time.
func (v *RistrettoElement) ConditionalNegate(cond int) *RistrettoElement {
	var neg RistrettoElement
	neg.Negate(v)
	return v.ConditionalSelect(v, &neg, cond)
}

// Compress returns the canonical 32-byte encoding of p.
func (p *RistrettoElement) Compress() *CompressedRistretto {
	return new(CompressedRistretto).Compress(p)
}

// CompressedRistretto is the 32-byte canonical encoding of a RistrettoElement.
type CompressedRistretto struct {
	b [32]byte
}

// Bytes returns the 32-byte encoding of c.
func (c *CompressedRistretto) Bytes() []byte {
	out := make([]byte, 32)
	copy(out, c.b[:])
	return out
}

// SetBytes sets c to the raw bytes x, which must be 32 bytes long. It does
// not validate that x decodes to a valid element; use Decompress for that.
func (c *CompressedRistretto) SetBytes(x []byte) (*CompressedRistretto, error) {
	if len(x) != 32 {
		return nil, errors.New("edwards25519: invalid CompressedRistretto length")
	}
	copy(c.b[:], x)
	return c, nil
}

// Compress sets c to the canonical encoding of p and returns c.
func (c *CompressedRistretto) Compress(p *RistrettoElement) *CompressedRistretto {
	X, Y, Z, T := &p.repr.X, &p.repr.Y, &p.repr.Z, &p.repr.T

	var u1, zmy, zpy, u2, u2Sqr field.Element
	zpy.Add(Z, Y)
	zmy.Subtract(Z, Y)
	u1.Multiply(&zpy, &zmy)
	u2.Multiply(X, Y)
	u2Sqr.Square(&u2)

	one := new(field.Element).One()
	var t field.Element
	t.Multiply(&u1, &u2Sqr)
	_, invsqrt := field.SqrtRatio(one, &t)

	var den1, den2, zInv field.Element
	den1.Multiply(invsqrt, &u1)
	den2.Multiply(invsqrt, &u2)
	zInv.Multiply(&den1, &den2)
	zInv.Multiply(&zInv, T)

	var ix0, iy0 field.Element
	ix0.Multiply(X, field.SqrtM1)
	iy0.Multiply(Y, field.SqrtM1)

	var tTimesZInv field.Element
	tTimesZInv.Multiply(T, &zInv)
	enable1 := tTimesZInv.IsNegative()

	var x, y, denInv field.Element
	x.ConditionalSelect(X, &iy0, enable1)
	y.ConditionalSelect(Y, &ix0, enable1)

	var den1TimesInvSqrtAMinusD field.Element
	den1TimesInvSqrtAMinusD.Multiply(&den1, invSqrtAMinusD)
	denInv.ConditionalSelect(&den2, &den1TimesInvSqrtAMinusD, enable1)

	var xTimesZInv field.Element
	xTimesZInv.Multiply(&x, &zInv)
	enable2 := xTimesZInv.IsNegative()

	var negY field.Element
	negY.Negate(&y)
	y.ConditionalSelect(&y, &negY, enable2)

	var s, zMinusY field.Element
	zMinusY.Subtract(Z, &y)
	s.Multiply(&denInv, &zMinusY)
	s.Abs(&s)

	copy(c.b[:], s.Bytes())
	return c
}

// Decompress attempts to decompress c into a RistrettoElement. It returns
// ErrInvalidEncoding if c's bytes are non-canonical, negative, or do not
// decode to a valid element.
func (c *CompressedRistretto) Decompress() (*RistrettoElement, error) {
	var s field.Element
	s.SetBytes(c.b[:])
	if !bytes.Equal(s.Bytes(), c.b[:]) {
		return nil, ErrInvalidEncoding
	}
	if s.IsNegative() == 1 {
		return nil, ErrInvalidEncoding
	}

	var ss, u1, u2, u2Sqr field.Element
	ss.Square(&s)
	one := new(field.Element).One()
	u1.Subtract(one, &ss)
	u2.Add(one, &ss)
	u2Sqr.Square(&u2)

	var u1Sqr, dU1Sqr, v field.Element
	u1Sqr.Square(&u1)
	dU1Sqr.Multiply(d, &u1Sqr)
	v.Negate(&dU1Sqr)
	v.Subtract(&v, &u2Sqr)

	var t field.Element
	t.Multiply(&v, &u2Sqr)
	wasSquare, invsqrt := field.SqrtRatio(one, &t)
	if wasSquare == 0 {
		return nil, ErrInvalidEncoding
	}

	var denX, denY field.Element
	denX.Multiply(invsqrt, &u2)
	denY.Multiply(invsqrt, &denX)
	denY.Multiply(&denY, &v)

	var x, y, twoS field.Element
	twoS.Add(&s, &s)
	x.Multiply(&twoS, &denX)
	x.Abs(&x)
	y.Multiply(&u1, &denY)

	var xy field.Element
	xy.Multiply(&x, &y)
	if y.IsZero() == 1 || xy.IsNegative() == 1 {
		return nil, ErrInvalidEncoding
	}

	r := new(RistrettoElement)
	r.repr.X.Set(&x)
	r.repr.Y.Set(&y)
	r.repr.Z.One()
	r.repr.T.Multiply(&x, &y)
	return r, nil
}

// mapToPoint implements the Ristretto Elligator2 map (Mike Hamburg's
// variation, via an intermediate point on the Jacobi quartic associated to
// edwards25519): given a field element r0 (the top-bit-masked
// interpretation of 32 uniform bytes), it returns the corresponding point
// on the curve.
func mapToPoint(r0Bytes []byte) *EdwardsPoint {
	var masked [32]byte
	copy(masked[:], r0Bytes)
	masked[31] &= 0x7f
	var r0 field.Element
	r0.SetBytes(masked[:])

	one := new(field.Element).One()

	// r = i * r0^2
	var r0i, r field.Element
	r0i.Multiply(&r0, field.SqrtM1)
	r.Multiply(&r0, &r0i)

	// D = -((d*r)+1) * (r+d)
	var dr, dr1, rPlusD, D field.Element
	dr.Multiply(d, &r)
	dr1.Add(&dr, one)
	rPlusD.Add(&r, d)
	D.Multiply(&dr1, &rPlusD)
	D.Negate(&D)

	// N = (1-d^2) * (r+1)
	var rPlusOne, N field.Element
	rPlusOne.Add(&r, one)
	N.Multiply(oneMinusDSquared, &rPlusOne)

	// sqrt is the inverse square root of N*D, or of i*N*D if N*D is
	// not itself a square (in which case b == 0). field.SqrtRatio's
	// non-square branch satisfies r*r*v == i*u rather than the
	// invsqrt(i*v) == u convention this map is built on, so an extra
	// factor of SqrtM1 is folded in here to match before taking Abs.
	var ND field.Element
	ND.Multiply(&N, &D)
	b, invsqrtND := field.SqrtRatio(one, &ND)
	var sqrt, iInvsqrtND field.Element
	iInvsqrtND.Multiply(invsqrtND, field.SqrtM1)
	sqrt.ConditionalSelect(invsqrtND, &iInvsqrtND, 1-b)
	sqrt.Abs(&sqrt)

	var twiddle, sgn, negOne field.Element
	negOne.Negate(one)
	twiddle.ConditionalSelect(one, &r0i, 1-b)
	sgn.ConditionalSelect(one, &negOne, 1-b)
	sqrt.Multiply(&sqrt, &twiddle)

	var jcS, jcT field.Element
	jcS.Multiply(&sqrt, &N)

	var negSgn field.Element
	negSgn.Negate(&sgn)
	jcT.Multiply(&sqrt, &negSgn)
	jcT.Multiply(&jcS, &jcT)
	jcT.Multiply(dMinusOneSquared, &jcT)
	var rMinusOne field.Element
	rMinusOne.Subtract(&r, one)
	jcT.Multiply(&rMinusOne, &jcT)
	jcT.Subtract(&jcT, one)

	// Fix the sign of s: negate it whenever IsNegative(s) already equals b.
	var sNeg field.Element
	sNeg.Negate(&jcS)
	flip := 1 - (jcS.IsNegative() ^ b)
	jcS.ConditionalSelect(&jcS, &sNeg, flip)

	var comp Completed
	comp.X.Multiply(&jcS, doubleInvSqrtMinusDMinusOne)
	comp.Z.Set(&jcT)
	var s2 field.Element
	s2.Square(&jcS)
	comp.Y.Subtract(one, &s2)
	comp.T.Add(one, &s2)

	p := new(EdwardsPoint)
	p.SetCompleted(&comp)
	return p
}

// FromUniformBytes maps 64 bytes of hash output to a RistrettoElement,
// suitable for hash-to-group constructions. It splits the input into two
// 32-byte halves, sends each through the Elligator2 map, and adds the
// results.
func (v *RistrettoElement) FromUniformBytes(b []byte) *RistrettoElement {
	if len(b) != 64 {
		panic("edwards25519: FromUniformBytes requires 64 bytes")
	}
	p1 := mapToPoint(b[:32])
	p2 := mapToPoint(b[32:])
	v.repr.Add(p1, p2)
	return v
}
