// Copyright (c) 2019 Jack Grigg. Ported under the same license terms.

package edwards25519

import "github.com/hallowgate/edwards25519/scalar"

// MultiscalarMul computes the sum of scalars[i]*points[i] for i in
// [0,len(points)), dispatching to Pippenger's method once the input is
// large enough (30 or more terms) to amortize its bucket bookkeeping, and
// to Straus's method otherwise.
func MultiscalarMul(scalars []*scalar.Scalar, points []*RistrettoElement) *RistrettoElement {
	if len(points) >= 30 {
		return MulPippenger(scalars, points)
	}
	return MulStraus(scalars, points)
}

// MulStraus computes sum(scalars[i]*points[i]) using Straus's method: one
// signed-digit lookup table per point, folded into a single accumulator
// with one pass of 64 radix-16 digits shared across all terms.
func MulStraus(scalars []*scalar.Scalar, points []*RistrettoElement) *RistrettoElement {
	if len(scalars) != len(points) {
		panic("edwards25519: MulStraus requires equal-length scalars and points")
	}

	tables := make([]*projectiveNielsLookupTable, len(points))
	digits := make([][64]int8, len(points))
	for i, p := range points {
		tables[i] = newProjectiveNielsLookupTable(&p.repr)
		digits[i] = scalars[i].ToRadix16()
	}

	Q := Identity()
	var addend ProjectiveNiels
	var r Completed
	for i := 63; i >= 0; i-- {
		Q.mulByPow2(Q, 4)
		for j := range points {
			tables[j].Select(&addend, digits[j][i])
			r.AddNiels(Q, &addend)
			Q.SetCompleted(&r)
		}
	}

	res := new(RistrettoElement)
	res.repr.Set(Q)
	return res
}

// pippengerWindowWidth picks the bucket window width used by Pippenger's
// method, following the standard heuristic of trading more buckets for
// fewer digit passes as the input grows.
func pippengerWindowWidth(n int) uint {
	switch {
	case n < 500:
		return 6
	case n < 800:
		return 7
	default:
		return 8
	}
}

// MulPippenger computes sum(scalars[i]*points[i]) using Pippenger's bucket
// method: each point is expanded into signed radix-2^c digits, and for
// each digit position the points are sorted into 2^(c-1) buckets by digit
// magnitude and sign, summed with a running-sum trick, then folded into
// the accumulator behind c doublings.
func MulPippenger(scalars []*scalar.Scalar, points []*RistrettoElement) *RistrettoElement {
	if len(scalars) != len(points) {
		panic("edwards25519: MulPippenger requires equal-length scalars and points")
	}

	c := pippengerWindowWidth(len(points))

	pts := make([]ProjectiveNiels, len(points))
	for i, p := range points {
		pts[i].FromExtended(&p.repr)
	}

	digitsPerScalar := make([][]int8, len(scalars))
	for i, s := range scalars {
		digitsPerScalar[i] = s.ToRadix2w(c)
	}

	bucketsCount := 1 << (c - 1)
	numDigits := (256 + int(c) - 1) / int(c)
	if c == 8 {
		numDigits++
	}

	var Q *EdwardsPoint
	for k := numDigits - 1; k >= 0; k-- {
		buckets := make([]*EdwardsPoint, bucketsCount)
		for i := range buckets {
			buckets[i] = Identity()
		}

		var r Completed
		for i := range points {
			dgt := digitsPerScalar[i][k]
			if dgt == 0 {
				continue
			}
			var idx int
			if dgt > 0 {
				idx = int(dgt) - 1
				r.AddNiels(buckets[idx], &pts[i])
			} else {
				idx = -int(dgt) - 1
				r.SubNiels(buckets[idx], &pts[i])
			}
			buckets[idx].SetCompleted(&r)
		}

		sum := new(EdwardsPoint).Set(buckets[bucketsCount-1])
		bsum := new(EdwardsPoint).Set(buckets[bucketsCount-1])
		for i := bucketsCount - 2; i >= 0; i-- {
			sum.Add(sum, buckets[i])
			bsum.Add(bsum, sum)
		}

		if Q == nil {
			Q = bsum
		} else {
			Q.mulByPow2(Q, c)
			Q.Add(Q, bsum)
		}
	}
	if Q == nil {
		Q = Identity()
	}

	res := new(RistrettoElement)
	res.repr.Set(Q)
	return res
}
