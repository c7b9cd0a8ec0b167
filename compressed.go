// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edwards25519

import (
	"errors"

	"github.com/hallowgate/edwards25519/field"
)

// ErrInvalidEncoding is returned when decompressing a CompressedEdwardsY or
// a CompressedRistretto whose bytes do not encode a valid point.
var ErrInvalidEncoding = errors.New("edwards25519: invalid point encoding")

// CompressedEdwardsY is the 32-byte little-endian encoding of an
// EdwardsPoint: the y-coordinate, with the sign of x folded into the
// otherwise-unused top bit.
type CompressedEdwardsY struct {
	b [32]byte
}

// SetBytes sets c to x, which must be a 32-byte encoding. It does not
// validate that x decompresses to a point; use Decompress for that.
func (c *CompressedEdwardsY) SetBytes(x []byte) (*CompressedEdwardsY, error) {
	if len(x) != 32 {
		return nil, errors.New("edwards25519: invalid CompressedEdwardsY length")
	}
	copy(c.b[:], x)
	return c, nil
}

// Bytes returns the 32-byte encoding of c.
func (c *CompressedEdwardsY) Bytes() []byte {
	out := make([]byte, 32)
	copy(out, c.b[:])
	return out
}

// Compress returns the compressed encoding of p.
func (p *EdwardsPoint) Compress() *CompressedEdwardsY {
	return new(CompressedEdwardsY).Compress(p)
}

// Compress sets c to the compressed encoding of p and returns c.
//
// With u = 1/Z, x = X*u, y = Y*u; c is y as 32 little-endian bytes with the
// low bit of x copied into the top bit of the last byte.
func (c *CompressedEdwardsY) Compress(p *EdwardsPoint) *CompressedEdwardsY {
	var invZ, x, y field.Element
	invZ.Invert(&p.Z)
	x.Multiply(&p.X, &invZ)
	y.Multiply(&p.Y, &invZ)

	copy(c.b[:], y.Bytes())
	c.b[31] |= byte(x.IsNegative()) << 7
	return c
}

// Decompress attempts to decompress c into an EdwardsPoint. It returns
// ErrInvalidEncoding if y*y is not on the curve for either sign of x
// (i.e. u/v is not a square).
func (c *CompressedEdwardsY) Decompress() (*EdwardsPoint, error) {
	signBit := c.b[31] >> 7
	var yBytes [32]byte
	copy(yBytes[:], c.b[:])
	yBytes[31] &= 0x7f

	var y field.Element
	y.SetBytes(yBytes[:])

	var yy, u, v field.Element
	yy.Square(&y)
	u.Subtract(&yy, new(field.Element).One()) // u = y^2-1
	v.Multiply(d, &yy)
	v.Add(&v, new(field.Element).One()) // v = d*y^2+1

	wasSquare, x := field.SqrtRatio(&u, &v)
	if wasSquare == 0 {
		return nil, ErrInvalidEncoding
	}

	if byte(x.IsNegative()) != signBit {
		x.Negate(x)
	}

	p := new(EdwardsPoint)
	p.X.Set(x)
	p.Y.Set(&y)
	p.Z.One()
	p.T.Multiply(x, &y)
	return p, nil
}
