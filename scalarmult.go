// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edwards25519

import "github.com/hallowgate/edwards25519/scalar"

// Multiply sets v = s*p in constant time, using a windowed method: build the
// lookup table {p, 2p, ..., 8p}, expand s into 64 signed radix-16 digits,
// and fold in one digit per iteration behind four doublings.
func (v *EdwardsPoint) Multiply(p *EdwardsPoint, s *scalar.Scalar) *EdwardsPoint {
	table := newProjectiveNielsLookupTable(p)
	digits := s.ToRadix16()

	v.SetIdentity()
	var addend ProjectiveNiels
	var r Completed
	var pp Projective
	for i := 63; i >= 0; i-- {
		// v = 16*v
		pp.FromExtended(v)
		r.Double(&pp)
		pp.FromCompleted(&r)
		r.Double(&pp)
		pp.FromCompleted(&r)
		r.Double(&pp)
		pp.FromCompleted(&r)
		r.Double(&pp)
		v.SetCompleted(&r)

		table.Select(&addend, digits[i])
		r.AddNiels(v, &addend)
		v.SetCompleted(&r)
	}
	return v
}

// groupOrderBits is the exact byte pattern of the prime-order subgroup
// order l = 2^252 + 27742317777372353535851937790883648493, used only to
// test membership in the subgroup via mulByGroupOrder. It is deliberately
// not a canonical Scalar (it is congruent to 0 mod l), so it is built with
// scalar.FromBits rather than scalar.FromCanonicalBytes.
var groupOrderBits = [32]byte{
	0xed, 0xd3, 0xf5, 0x5c, 0x1a, 0x63, 0x12, 0x58,
	0xd6, 0x9c, 0xf7, 0xa2, 0xde, 0xf9, 0xde, 0x14,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10,
}

var groupOrderScalar = scalar.FromBits(groupOrderBits[:])

// mulByGroupOrder sets v = [l]p, where l is the prime subgroup order,
// using the literal bit pattern of l rather than its (necessarily zero)
// reduced value, so that this actually tests subgroup membership instead
// of trivially returning the identity.
func (v *EdwardsPoint) mulByGroupOrder(p *EdwardsPoint) *EdwardsPoint {
	return v.Multiply(p, groupOrderScalar)
}

// VartimeDoubleScalarMultiplyBasepoint sets v = a*A + b*B, where B is the
// canonical basepoint, in variable time. A is expected to be a public
// point (e.g. a signature's public key), so branching and table lookups
// keyed on its scalar and coordinates are not a side-channel concern.
//
// It uses width-5 NAF for a, a width-8 NAF table of the basepoint's odd
// multiples for b, and interleaves the two ladders into a single pass of
// doublings.
func (v *EdwardsPoint) VartimeDoubleScalarMultiplyBasepoint(a *scalar.Scalar, A *EdwardsPoint, b *scalar.Scalar) *EdwardsPoint {
	aNaf := a.NonAdjacentForm(5)
	bNaf := b.NonAdjacentForm(8)

	aTable := newAffineNielsNafLookupTable(A)

	i := 255
	for ; i >= 0; i-- {
		if aNaf[i] != 0 || bNaf[i] != 0 {
			break
		}
	}

	v.SetIdentity()
	var pp Projective
	var r Completed
	for ; i >= 0; i-- {
		pp.FromExtended(v)
		r.Double(&pp)
		v.SetCompleted(&r)

		if aNaf[i] > 0 {
			r.AddAffine(v, aTable.SelectVartime(aNaf[i]))
			v.SetCompleted(&r)
		} else if aNaf[i] < 0 {
			r.SubAffine(v, aTable.SelectVartime(-aNaf[i]))
			v.SetCompleted(&r)
		}

		if bNaf[i] > 0 {
			r.AddAffine(v, basepointNafTable.SelectVartime(bNaf[i]))
			v.SetCompleted(&r)
		} else if bNaf[i] < 0 {
			r.SubAffine(v, basepointNafTable.SelectVartime(-bNaf[i]))
			v.SetCompleted(&r)
		}
	}
	return v
}

// basepointNafTable holds the odd multiples of the canonical basepoint, up
// to width 8, used by VartimeDoubleScalarMultiplyBasepoint.
var basepointNafTable = newAffineNielsNafLookupTableWidth(Generator(), 8)
