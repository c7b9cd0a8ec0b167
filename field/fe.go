// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package field implements fast arithmetic modulo 2^255-19.
package field

import "crypto/subtle"

// Element represents an element of the field GF(2^255-19). Note that this
// is not a cryptographically secure group, and should only be used to
// interact with edwards25519 Point coordinates.
//
// An Element is represented as ten signed 32-bit limbs in a mixed radix of
// 2^26 and 2^25 (even indices use the wider radix), following the layout
// used throughout the ed25519 reference implementation and its many ports.
// Between operations, all limbs are kept below roughly 2^26/2^25 in
// magnitude except immediately after Add/Subtract, which are limb-wise and
// rely on the next Multiply or Square to re-normalize.
//
// This type works similarly to math/big.Int: all arguments and receivers
// are allowed to alias, and the zero value is a valid zero element.
type Element struct {
	l [10]int32
}

// widths holds the bit width of each limb: even limbs are 26 bits, odd
// limbs are 25 bits, for a total of 255 bits.
var widths = [10]uint{26, 25, 26, 25, 26, 25, 26, 25, 26, 25}

// Zero sets v = 0 and returns v.
func (v *Element) Zero() *Element {
	*v = Element{}
	return v
}

// One sets v = 1 and returns v.
func (v *Element) One() *Element {
	*v = Element{l: [10]int32{1}}
	return v
}

// Set sets v = a and returns v.
func (v *Element) Set(a *Element) *Element {
	*v = *a
	return v
}

// Add sets v = a + b and returns v.
//
// Add does not normalize its output: limb magnitudes grow, and it is the
// caller's responsibility to eventually pass the result through a
// normalizing operation (Multiply, Square, or Bytes) before the magnitude
// bound documented above is exceeded.
func (v *Element) Add(a, b *Element) *Element {
	for i := range v.l {
		v.l[i] = a.l[i] + b.l[i]
	}
	return v
}

// Subtract sets v = a - b and returns v.
//
// Like Add, Subtract does not normalize its output.
func (v *Element) Subtract(a, b *Element) *Element {
	for i := range v.l {
		v.l[i] = a.l[i] - b.l[i]
	}
	return v
}

// Negate sets v = -a and returns v.
func (v *Element) Negate(a *Element) *Element {
	for i := range v.l {
		v.l[i] = -a.l[i]
	}
	return v
}

// carryPropagate reduces every limb of l to its canonical bit width,
// carrying the overflow into the next limb, and folding the overflow out of
// limb 9 back into limb 0 multiplied by 19 (since 2^255 ≡ 19 mod p). Two
// sweeps bring any accumulator produced by mulGeneric back within the
// ±2^26/±2^25 bound; reduce() below runs it twice more to fully canonicalize
// a value that may have started far from that bound (long Add/Subtract
// chains without an intervening Multiply).
func carryPropagate(l *[10]int64) {
	for pass := 0; pass < 2; pass++ {
		for i := 0; i < 10; i++ {
			shift := widths[i]
			c := l[i] >> shift
			l[i] -= c << shift
			next := (i + 1) % 10
			if i == 9 {
				l[next] += c * 19
			} else {
				l[next] += c
			}
		}
	}
}

// mulGeneric computes the schoolbook product of a and b into l.
//
// Limb i of a and limb j of b contribute to output limb (i+j) mod 10.
// Because the mixed 26/25-bit radix is not perfectly linear, a term needs
// doubling whenever both i and j are odd (25-bit limbs), and needs an extra
// factor of 19 (from 2^255 ≡ 19 mod p) whenever i+j wraps past limb 9; when
// both conditions hold the factors compose to 38.
func mulGeneric(l *[10]int64, a, b *[10]int32) {
	for i := 0; i < 10; i++ {
		ai := int64(a[i])
		if ai == 0 {
			continue
		}
		for j := 0; j < 10; j++ {
			bj := int64(b[j])
			mult := int64(1)
			if i%2 == 1 && j%2 == 1 {
				mult = 2
			}
			k := i + j
			if k >= 10 {
				k -= 10
				mult *= 19
			}
			l[k] += ai * bj * mult
		}
	}
}

// Multiply sets v = a * b and returns v.
func (v *Element) Multiply(a, b *Element) *Element {
	var acc [10]int64
	mulGeneric(&acc, &a.l, &b.l)
	carryPropagate(&acc)
	for i := range v.l {
		v.l[i] = int32(acc[i])
	}
	return v
}

// Square sets v = a * a and returns v.
func (v *Element) Square(a *Element) *Element {
	return v.Multiply(a, a)
}

// SquareAndDouble sets v = 2 * a * a and returns v.
func (v *Element) SquareAndDouble(a *Element) *Element {
	var acc [10]int64
	mulGeneric(&acc, &a.l, &a.l)
	for i := range acc {
		acc[i] *= 2
	}
	carryPropagate(&acc)
	for i := range v.l {
		v.l[i] = int32(acc[i])
	}
	return v
}

// Mult32 sets v = a * b, where b is a small positive constant, and returns v.
func (v *Element) Mult32(a *Element, b uint32) *Element {
	var acc [10]int64
	for i := range a.l {
		acc[i] = int64(a.l[i]) * int64(b)
	}
	carryPropagate(&acc)
	for i := range v.l {
		v.l[i] = int32(acc[i])
	}
	return v
}

// extractBits reads width bits from buf starting at bitPos (little-endian
// bit order) and returns them as the low bits of a uint64.
func extractBits(buf *[32]byte, bitPos, width uint) uint64 {
	startByte := bitPos / 8
	var v uint64
	for k := uint(0); k < 8 && startByte+k < 32; k++ {
		v |= uint64(buf[startByte+k]) << (8 * k)
	}
	v >>= bitPos % 8
	return v & (1<<width - 1)
}

// SetBytes sets v to x, where x is a 32-byte little-endian encoding. The top
// bit of the last byte is ignored, matching the wire format used throughout
// this package's encodings: SetBytes never fails.
func (v *Element) SetBytes(x []byte) *Element {
	if len(x) != 32 {
		panic("edwards25519/field: invalid field element input size")
	}
	var buf [32]byte
	copy(buf[:], x)
	buf[31] &= 0x7f
	var bitPos uint
	for i := 0; i < 10; i++ {
		v.l[i] = int32(extractBits(&buf, bitPos, widths[i]))
		bitPos += widths[i]
	}
	return v
}

// pLimbs holds p = 2^255-19 in the same limb layout as Element, used only by
// the final canonicalization compare-and-subtract.
var pLimbs = [10]int32{
	0x3ffffed, 0x1ffffff, 0x3ffffff, 0x1ffffff, 0x3ffffff,
	0x1ffffff, 0x3ffffff, 0x1ffffff, 0x3ffffff, 0x1ffffff,
}

// reduce fully reduces v modulo p, leaving nonnegative limbs whose weighted
// sum is the canonical representative in [0, p).
func (v *Element) reduce() *Element {
	var acc [10]int64
	for i := range v.l {
		acc[i] = int64(v.l[i])
	}
	// Two more carryPropagate calls (four sweeps) on top of the two sweeps
	// Multiply already performs: enough
	// to flatten the bounded Add/Subtract chains this package allows
	// between normalizing operations (see the Add/Subtract docs above).
	carryPropagate(&acc)
	carryPropagate(&acc)
	for i := range v.l {
		v.l[i] = int32(acc[i])
	}
	v.subtractPIfGE()
	return v
}

// subtractPIfGE subtracts p from v's limbs, in constant time, if and only if
// the represented value is >= p. v must already be fully carry-propagated
// and non-negative.
func (v *Element) subtractPIfGE() {
	var borrow int64
	var diff [10]int32
	for i := 0; i < 10; i++ {
		d := int64(v.l[i]) - int64(pLimbs[i]) - borrow
		mask := d >> 63 // all-ones if d<0, all-zero if d>=0
		d += (int64(1) << widths[i]) & mask
		borrow = mask & 1
		diff[i] = int32(d)
	}
	// borrow == 1 here means v < p (the final borrow propagated past the
	// top limb): keep v unchanged. borrow == 0 means v >= p: take diff.
	mask := int32(borrow - 1) // all-ones if v>=p, all-zero if v<p
	for i := range v.l {
		v.l[i] ^= mask & (v.l[i] ^ diff[i])
	}
}

// Bytes returns the canonical 32-byte little-endian encoding of v, a value
// in [0, p).
func (v *Element) Bytes() []byte {
	var out [32]byte
	return v.bytes(&out)
}

func (v *Element) bytes(out *[32]byte) []byte {
	var t Element
	t.Set(v).reduce()
	var bitPos uint
	for i := 0; i < 10; i++ {
		limb := uint64(uint32(t.l[i]))
		remaining := widths[i]
		for remaining > 0 {
			byteIdx := bitPos / 8
			bitOff := bitPos % 8
			room := 8 - bitOff
			take := remaining
			if take > room {
				take = room
			}
			mask := uint64(1<<take - 1)
			out[byteIdx] |= byte((limb & mask) << bitOff)
			limb >>= take
			bitPos += take
			remaining -= take
		}
	}
	return out[:]
}

// Equal returns 1 if v == u, and 0 otherwise, in constant time.
func (v *Element) Equal(u *Element) int {
	sa, sb := v.Bytes(), u.Bytes()
	return subtle.ConstantTimeCompare(sa, sb)
}

// ConditionalSelect sets v to a if cond == 0, and to b if cond == 1, in
// constant time, using the arithmetic mask pattern
// self ⊕ (mask & (self ⊕ other)), mask = 0 - cond.
func (v *Element) ConditionalSelect(a, b *Element, cond int) *Element {
	mask := int32(-cond)
	for i := range v.l {
		v.l[i] = a.l[i] ^ (mask & (a.l[i] ^ b.l[i]))
	}
	return v
}

// ConditionalNegate sets v = -a if cond == 1, and v = a if cond == 0, in
// constant time.
func (v *Element) ConditionalNegate(a *Element, cond int) *Element {
	var neg Element
	neg.Negate(a)
	return v.ConditionalSelect(a, &neg, cond)
}

// ConditionalSwap swaps a and b if cond == 1, and leaves them unchanged if
// cond == 0, in constant time.
func ConditionalSwap(a, b *Element, cond int) {
	mask := int32(-cond)
	for i := range a.l {
		t := mask & (a.l[i] ^ b.l[i])
		a.l[i] ^= t
		b.l[i] ^= t
	}
}

// IsNegative returns 1 if the low bit of v's canonical byte encoding is set,
// and 0 otherwise.
func (v *Element) IsNegative() int {
	b := v.Bytes()
	return int(b[0] & 1)
}

// IsZero returns 1 if v == 0, and 0 otherwise.
func (v *Element) IsZero() int {
	var zero Element
	return v.Equal(&zero)
}

// Abs sets v to |a| (a if non-negative, -a otherwise, using the canonical
// sign convention of IsNegative) and returns v.
func (v *Element) Abs(a *Element) *Element {
	return v.ConditionalNegate(a, a.IsNegative())
}
