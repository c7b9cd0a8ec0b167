// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scalar implements arithmetic modulo the edwards25519 group order
//
//	l = 2^252 + 27742317777372353535851937790883648493
package scalar

import (
	"crypto/subtle"
	"errors"
)

// ErrInvalidRepresentation is returned when constructing a Scalar from
// bytes that are not the unique canonical representative of a residue
// class in [0, l): the high bit is set, or the encoding is >= l.
var ErrInvalidRepresentation = errors.New("edwards25519/scalar: invalid scalar representation")

// Scalar is an integer modulo
//
//	l = 2^252 + 27742317777372353535851937790883648493
//
// which is the order of the edwards25519 base point and the prime-order
// Ristretto255 group built on top of it.
//
// This type works similarly to math/big.Int: all arguments and receivers are
// allowed to alias, and the zero value is a valid zero scalar.
//
// The internal representation is the canonical 32-byte little-endian
// encoding; the invariant that the top bit is always zero holds for every
// exported constructor and every arithmetic operation below.
type Scalar struct {
	b [32]byte
}

// lWords holds the group order l as eight little-endian 32-bit words, used
// only by the constant-time conditional subtraction of l in Add and the
// constant-time conditional addition of l in Subtract.
var lWords = [8]uint32{
	0x5cf5d3ed, 0x5812631a, 0xa2f79cd6, 0x14def9de,
	0x00000000, 0x00000000, 0x00000000, 0x10000000,
}

func loadWords(b *[32]byte) [8]uint32 {
	var w [8]uint32
	for i := range w {
		w[i] = uint32(b[4*i]) | uint32(b[4*i+1])<<8 | uint32(b[4*i+2])<<16 | uint32(b[4*i+3])<<24
	}
	return w
}

func storeWords(w *[8]uint32) [32]byte {
	var b [32]byte
	for i, v := range w {
		b[4*i] = byte(v)
		b[4*i+1] = byte(v >> 8)
		b[4*i+2] = byte(v >> 16)
		b[4*i+3] = byte(v >> 24)
	}
	return b
}

// NewZero returns the scalar 0.
func NewZero() *Scalar { return new(Scalar) }

// NewOne returns the scalar 1.
func NewOne() *Scalar {
	s := new(Scalar)
	s.b[0] = 1
	return s
}

// Set sets s = a and returns s.
func (s *Scalar) Set(a *Scalar) *Scalar {
	s.b = a.b
	return s
}

// Bytes returns the canonical 32-byte little-endian encoding of s.
func (s *Scalar) Bytes() []byte {
	out := make([]byte, 32)
	copy(out, s.b[:])
	return out
}

// test returns bit number bit of s's encoding (0 or 1), where bit 0 is the
// least significant bit of the first byte.
func (s *Scalar) test(bit int) int {
	return int(s.b[bit/8]>>uint(bit%8)) & 1
}

// fromBytesModOrderWide reduces a 64-byte little-endian integer modulo l,
// following the classic radix-2^21 Barrett-style reduction: the input is
// loaded into twenty-four signed limbs (twenty-three of 21 bits, one of 29),
// and the top twelve limbs are folded into the bottom twelve using the
// precomputed multipliers that expand -(l - 2^252) in base 2^21.
func fromBytesModOrderWide(input []byte) *Scalar {
	if len(input) != 64 {
		panic("edwards25519/scalar: invalid fromBytesModOrderWide input size")
	}

	load3 := func(b []byte, i int) int64 {
		return int64(b[i]) | int64(b[i+1])<<8 | int64(b[i+2])<<16
	}
	load4 := func(b []byte, i int) int64 {
		return int64(b[i]) | int64(b[i+1])<<8 | int64(b[i+2])<<16 | int64(b[i+3])<<24
	}

	s0 := 0x1FFFFF & load3(input, 0)
	s1 := 0x1FFFFF & (load4(input, 2) >> 5)
	s2 := 0x1FFFFF & (load3(input, 5) >> 2)
	s3 := 0x1FFFFF & (load4(input, 7) >> 7)
	s4 := 0x1FFFFF & (load4(input, 10) >> 4)
	s5 := 0x1FFFFF & (load3(input, 13) >> 1)
	s6 := 0x1FFFFF & (load4(input, 15) >> 6)
	s7 := 0x1FFFFF & (load3(input, 18) >> 3)
	s8 := 0x1FFFFF & load3(input, 21)
	s9 := 0x1FFFFF & (load4(input, 23) >> 5)
	s10 := 0x1FFFFF & (load3(input, 26) >> 2)
	s11 := 0x1FFFFF & (load4(input, 28) >> 7)
	s12 := 0x1FFFFF & (load4(input, 31) >> 4)
	s13 := 0x1FFFFF & (load3(input, 34) >> 1)
	s14 := 0x1FFFFF & (load4(input, 36) >> 6)
	s15 := 0x1FFFFF & (load3(input, 39) >> 3)
	s16 := 0x1FFFFF & load3(input, 42)
	s17 := 0x1FFFFF & (load4(input, 44) >> 5)
	s18 := 0x1FFFFF & (load3(input, 47) >> 2)
	s19 := 0x1FFFFF & (load4(input, 49) >> 7)
	s20 := 0x1FFFFF & (load4(input, 52) >> 4)
	s21 := 0x1FFFFF & (load3(input, 55) >> 1)
	s22 := 0x1FFFFF & (load4(input, 57) >> 6)
	s23 := load4(input, 60) >> 3

	// 2^252 == -q0 (mod l), where
	// -q0 = 666643*2^0 + 470296*2^21 + 654183*2^42 - 997805*2^63 + 136657*2^84 - 683901*2^105.
	s11 += s23 * 666643
	s12 += s23 * 470296
	s13 += s23 * 654183
	s14 -= s23 * 997805
	s15 += s23 * 136657
	s16 -= s23 * 683901

	s10 += s22 * 666643
	s11 += s22 * 470296
	s12 += s22 * 654183
	s13 -= s22 * 997805
	s14 += s22 * 136657
	s15 -= s22 * 683901

	s9 += s21 * 666643
	s10 += s21 * 470296
	s11 += s21 * 654183
	s12 -= s21 * 997805
	s13 += s21 * 136657
	s14 -= s21 * 683901

	s8 += s20 * 666643
	s9 += s20 * 470296
	s10 += s20 * 654183
	s11 -= s20 * 997805
	s12 += s20 * 136657
	s13 -= s20 * 683901

	s7 += s19 * 666643
	s8 += s19 * 470296
	s9 += s19 * 654183
	s10 -= s19 * 997805
	s11 += s19 * 136657
	s12 -= s19 * 683901

	s6 += s18 * 666643
	s7 += s18 * 470296
	s8 += s18 * 654183
	s9 -= s18 * 997805
	s10 += s18 * 136657
	s11 -= s18 * 683901

	carry6 := (s6 + (1 << 20)) >> 21
	s7 += carry6
	s6 -= carry6 << 21
	carry8 := (s8 + (1 << 20)) >> 21
	s9 += carry8
	s8 -= carry8 << 21
	carry10 := (s10 + (1 << 20)) >> 21
	s11 += carry10
	s10 -= carry10 << 21
	carry12 := (s12 + (1 << 20)) >> 21
	s13 += carry12
	s12 -= carry12 << 21
	carry14 := (s14 + (1 << 20)) >> 21
	s15 += carry14
	s14 -= carry14 << 21
	carry16 := (s16 + (1 << 20)) >> 21
	s17 += carry16
	s16 -= carry16 << 21

	carry7 := (s7 + (1 << 20)) >> 21
	s8 += carry7
	s7 -= carry7 << 21
	carry9 := (s9 + (1 << 20)) >> 21
	s10 += carry9
	s9 -= carry9 << 21
	carry11 := (s11 + (1 << 20)) >> 21
	s12 += carry11
	s11 -= carry11 << 21
	carry13 := (s13 + (1 << 20)) >> 21
	s14 += carry13
	s13 -= carry13 << 21
	carry15 := (s15 + (1 << 20)) >> 21
	s16 += carry15
	s15 -= carry15 << 21

	s5 += s17 * 666643
	s6 += s17 * 470296
	s7 += s17 * 654183
	s8 -= s17 * 997805
	s9 += s17 * 136657
	s10 -= s17 * 683901

	s4 += s16 * 666643
	s5 += s16 * 470296
	s6 += s16 * 654183
	s7 -= s16 * 997805
	s8 += s16 * 136657
	s9 -= s16 * 683901

	s3 += s15 * 666643
	s4 += s15 * 470296
	s5 += s15 * 654183
	s6 -= s15 * 997805
	s7 += s15 * 136657
	s8 -= s15 * 683901

	s2 += s14 * 666643
	s3 += s14 * 470296
	s4 += s14 * 654183
	s5 -= s14 * 997805
	s6 += s14 * 136657
	s7 -= s14 * 683901

	s1 += s13 * 666643
	s2 += s13 * 470296
	s3 += s13 * 654183
	s4 -= s13 * 997805
	s5 += s13 * 136657
	s6 -= s13 * 683901

	s0 += s12 * 666643
	s1 += s12 * 470296
	s2 += s12 * 654183
	s3 -= s12 * 997805
	s4 += s12 * 136657
	s5 -= s12 * 683901
	s12 = 0

	carry0 := (s0 + (1 << 20)) >> 21
	s1 += carry0
	s0 -= carry0 << 21
	carry2 := (s2 + (1 << 20)) >> 21
	s3 += carry2
	s2 -= carry2 << 21
	carry4 := (s4 + (1 << 20)) >> 21
	s5 += carry4
	s4 -= carry4 << 21
	carry6 = (s6 + (1 << 20)) >> 21
	s7 += carry6
	s6 -= carry6 << 21
	carry8 = (s8 + (1 << 20)) >> 21
	s9 += carry8
	s8 -= carry8 << 21
	carry10 = (s10 + (1 << 20)) >> 21
	s11 += carry10
	s10 -= carry10 << 21

	carry1 := (s1 + (1 << 20)) >> 21
	s2 += carry1
	s1 -= carry1 << 21
	carry3 := (s3 + (1 << 20)) >> 21
	s4 += carry3
	s3 -= carry3 << 21
	carry5 := (s5 + (1 << 20)) >> 21
	s6 += carry5
	s5 -= carry5 << 21
	carry7 = (s7 + (1 << 20)) >> 21
	s8 += carry7
	s7 -= carry7 << 21
	carry9 = (s9 + (1 << 20)) >> 21
	s10 += carry9
	s9 -= carry9 << 21
	carry11 = (s11 + (1 << 20)) >> 21
	s12 = carry11
	s11 -= carry11 << 21

	s0 += s12 * 666643
	s1 += s12 * 470296
	s2 += s12 * 654183
	s3 -= s12 * 997805
	s4 += s12 * 136657
	s5 -= s12 * 683901

	carry0 = s0 >> 21
	s1 += carry0
	s0 -= carry0 << 21
	carry1 = s1 >> 21
	s2 += carry1
	s1 -= carry1 << 21
	carry2 = s2 >> 21
	s3 += carry2
	s2 -= carry2 << 21
	carry3 = s3 >> 21
	s4 += carry3
	s3 -= carry3 << 21
	carry4 = s4 >> 21
	s5 += carry4
	s4 -= carry4 << 21
	carry5 = s5 >> 21
	s6 += carry5
	s5 -= carry5 << 21
	carry6 = s6 >> 21
	s7 += carry6
	s6 -= carry6 << 21
	carry7 = s7 >> 21
	s8 += carry7
	s7 -= carry7 << 21
	carry8 = s8 >> 21
	s9 += carry8
	s8 -= carry8 << 21
	carry9 = s9 >> 21
	s10 += carry9
	s9 -= carry9 << 21
	carry10 = s10 >> 21
	s11 += carry10
	s10 -= carry10 << 21
	carry11 = s11 >> 21
	s12 = carry11
	s11 -= carry11 << 21

	s0 += s12 * 666643
	s1 += s12 * 470296
	s2 += s12 * 654183
	s3 -= s12 * 997805
	s4 += s12 * 136657
	s5 -= s12 * 683901

	carry0 = s0 >> 21
	s1 += carry0
	s0 -= carry0 << 21
	carry1 = s1 >> 21
	s2 += carry1
	s1 -= carry1 << 21
	carry2 = s2 >> 21
	s3 += carry2
	s2 -= carry2 << 21
	carry3 = s3 >> 21
	s4 += carry3
	s3 -= carry3 << 21
	carry4 = s4 >> 21
	s5 += carry4
	s4 -= carry4 << 21
	carry5 = s5 >> 21
	s6 += carry5
	s5 -= carry5 << 21
	carry6 = s6 >> 21
	s7 += carry6
	s6 -= carry6 << 21
	carry7 = s7 >> 21
	s8 += carry7
	s7 -= carry7 << 21
	carry8 = s8 >> 21
	s9 += carry8
	s8 -= carry8 << 21
	carry9 = s9 >> 21
	s10 += carry9
	s9 -= carry9 << 21
	carry10 = s10 >> 21
	s11 += carry10
	s10 -= carry10 << 21

	var out Scalar
	out.b[0] = byte(s0)
	out.b[1] = byte(s0 >> 8)
	out.b[2] = byte((s0 >> 16) | (s1 << 5))
	out.b[3] = byte(s1 >> 3)
	out.b[4] = byte(s1 >> 11)
	out.b[5] = byte((s1 >> 19) | (s2 << 2))
	out.b[6] = byte(s2 >> 6)
	out.b[7] = byte((s2 >> 14) | (s3 << 7))
	out.b[8] = byte(s3 >> 1)
	out.b[9] = byte(s3 >> 9)
	out.b[10] = byte((s3 >> 17) | (s4 << 4))
	out.b[11] = byte(s4 >> 4)
	out.b[12] = byte(s4 >> 12)
	out.b[13] = byte((s4 >> 20) | (s5 << 1))
	out.b[14] = byte(s5 >> 7)
	out.b[15] = byte((s5 >> 15) | (s6 << 6))
	out.b[16] = byte(s6 >> 2)
	out.b[17] = byte(s6 >> 10)
	out.b[18] = byte((s6 >> 18) | (s7 << 3))
	out.b[19] = byte(s7 >> 5)
	out.b[20] = byte(s7 >> 13)
	out.b[21] = byte(s8)
	out.b[22] = byte(s8 >> 8)
	out.b[23] = byte((s8 >> 16) | (s9 << 5))
	out.b[24] = byte(s9 >> 3)
	out.b[25] = byte(s9 >> 11)
	out.b[26] = byte((s9 >> 19) | (s10 << 2))
	out.b[27] = byte(s10 >> 6)
	out.b[28] = byte((s10 >> 14) | (s11 << 7))
	out.b[29] = byte(s11 >> 1)
	out.b[30] = byte(s11 >> 9)
	out.b[31] = byte(s11 >> 17)
	return &out
}

// FromBytesModOrderWide reduces the 64-byte little-endian integer x modulo l
// and returns the resulting Scalar. It panics if len(x) != 64.
func FromBytesModOrderWide(x []byte) *Scalar {
	return fromBytesModOrderWide(x)
}

// FromBytesModOrder reduces the 32-byte little-endian integer x modulo l and
// returns the resulting Scalar. It panics if len(x) != 32.
func FromBytesModOrder(x []byte) *Scalar {
	if len(x) != 32 {
		panic("edwards25519/scalar: invalid FromBytesModOrder input size")
	}
	var wide [64]byte
	copy(wide[:32], x)
	return fromBytesModOrderWide(wide[:])
}

// FromCanonicalBytes constructs a Scalar from its canonical 32-byte
// little-endian encoding, returning false if the encoding is not the unique
// canonical representative in [0, l).
func FromCanonicalBytes(x []byte) (*Scalar, bool) {
	s, err := new(Scalar).SetCanonicalBytes(x)
	return s, err == nil
}

// SetCanonicalBytes sets s to x, the canonical 32-byte little-endian
// encoding of a value in [0, l). It returns ErrInvalidRepresentation,
// leaving s unchanged, if x's high bit is set or x >= l.
func (s *Scalar) SetCanonicalBytes(x []byte) (*Scalar, error) {
	if len(x) != 32 || x[31]&0x80 != 0 {
		return nil, ErrInvalidRepresentation
	}
	var candidate Scalar
	copy(candidate.b[:], x)
	if candidate.ctEquals(FromBytesModOrder(x)) != 1 {
		return nil, ErrInvalidRepresentation
	}
	s.Set(&candidate)
	return s, nil
}

// FromBits constructs a Scalar from the low 255 bits of a 256-bit
// little-endian integer, masking off the top bit rather than reducing.
func FromBits(x []byte) *Scalar {
	if len(x) != 32 {
		panic("edwards25519/scalar: invalid FromBits input size")
	}
	var s Scalar
	copy(s.b[:], x)
	s.b[31] &= 0x7f
	return &s
}

// ctEquals returns 1 if s == other, and 0 otherwise, in constant time.
func (s *Scalar) ctEquals(other *Scalar) int {
	return subtle.ConstantTimeCompare(s.b[:], other.b[:])
}

// CtEquals returns 1 if s == other, and 0 otherwise, in constant time.
func (s *Scalar) CtEquals(other *Scalar) int {
	return s.ctEquals(other)
}

// CtSelect sets s to a if cond == 0, and to b if cond == 1, in constant time.
func (s *Scalar) CtSelect(a, b *Scalar, cond int) *Scalar {
	mask := byte(-int8(cond))
	for i := range s.b {
		s.b[i] = a.b[i] ^ (mask & (a.b[i] ^ b.b[i]))
	}
	return s
}

// IsCanonical reports whether s's stored encoding is the unique
// representative of its residue class in [0, l).
func (s *Scalar) IsCanonical() bool {
	return s.ctEquals(FromBytesModOrder(s.b[:])) == 1
}

// Reduce sets s to a reduced modulo l and returns s.
func (s *Scalar) Reduce(a *Scalar) *Scalar {
	*s = *FromBytesModOrder(a.b[:])
	return s
}

// subtractLIfGE subtracts l from the words of w in place if and only if w >= l,
// in constant time, returning w unchanged otherwise. w must represent a
// value less than 2*l.
func subtractLIfGE(w *[8]uint32) {
	var borrow int64
	var diff [8]uint32
	for i := 0; i < 8; i++ {
		d := int64(w[i]) - int64(lWords[i]) - borrow
		mask := d >> 63 // all-ones if d<0, all-zero if d>=0
		d += (int64(1) << 32) & mask
		borrow = mask & 1
		diff[i] = uint32(d)
	}
	mask := uint32(borrow - 1) // all-ones if w>=l, all-zero if w<l
	for i := range w {
		w[i] ^= mask & (w[i] ^ diff[i])
	}
}

// Add sets s = a + b mod l and returns s. a and b must already be reduced.
func (s *Scalar) Add(a, b *Scalar) *Scalar {
	aw, bw := loadWords(&a.b), loadWords(&b.b)
	var sum [8]uint32
	var carry uint64
	for i := 0; i < 8; i++ {
		t := uint64(aw[i]) + uint64(bw[i]) + carry
		sum[i] = uint32(t)
		carry = t >> 32
	}
	subtractLIfGE(&sum)
	s.b = storeWords(&sum)
	return s
}

// Subtract sets s = a - b mod l and returns s. a and b must already be
// reduced.
func (s *Scalar) Subtract(a, b *Scalar) *Scalar {
	aw, bw := loadWords(&a.b), loadWords(&b.b)
	var diff [8]uint32
	var borrow int64
	for i := 0; i < 8; i++ {
		d := int64(aw[i]) - int64(bw[i]) - borrow
		mask := d >> 63 // all-ones if d<0, all-zero if d>=0
		d += (int64(1) << 32) & mask
		borrow = mask & 1
		diff[i] = uint32(d)
	}
	// If borrow == 1, diff holds a - b + 2^256; add l back (masked rather
	// than branched on) to land in [0, l).
	lMask := uint32(-borrow)
	var carry uint64
	for i := 0; i < 8; i++ {
		t := uint64(diff[i]) + uint64(lWords[i]&lMask) + carry
		diff[i] = uint32(t)
		carry = t >> 32
	}
	s.b = storeWords(&diff)
	return s
}

// Negate sets s = -a mod l and returns s.
func (s *Scalar) Negate(a *Scalar) *Scalar {
	return s.Subtract(NewZero(), a)
}

// widenMultiply computes the schoolbook product a*b of two 32-byte
// little-endian integers as a 64-byte little-endian integer.
func widenMultiply(a, b *[32]byte) [64]byte {
	// 16-bit limbs, not 32-bit: a column can accumulate up to sixteen
	// products, and sixteen 32-bit products (2^32 each) safely fit a
	// uint64 accumulator, whereas eight 64-bit products (32-bit limbs)
	// would not.
	var aw, bw [16]uint32
	for i := 0; i < 16; i++ {
		aw[i] = uint32(a[2*i]) | uint32(a[2*i+1])<<8
		bw[i] = uint32(b[2*i]) | uint32(b[2*i+1])<<8
	}
	var acc [32]uint64
	for i := 0; i < 16; i++ {
		for j := 0; j < 16; j++ {
			acc[i+j] += uint64(aw[i]) * uint64(bw[j])
		}
	}
	var carry uint64
	var words [32]uint32
	for i := 0; i < 32; i++ {
		t := acc[i] + carry
		words[i] = uint32(t) & 0xffff
		carry = t >> 16
	}
	var out [64]byte
	for i, w := range words {
		out[2*i] = byte(w)
		out[2*i+1] = byte(w >> 8)
	}
	return out
}

// Multiply sets s = a * b mod l and returns s.
func (s *Scalar) Multiply(a, b *Scalar) *Scalar {
	wide := widenMultiply(&a.b, &b.b)
	*s = *fromBytesModOrderWide(wide[:])
	return s
}

// Square sets s = a * a mod l and returns s.
func (s *Scalar) Square(a *Scalar) *Scalar {
	return s.Multiply(a, a)
}

// MultiplyAdd sets s = a*b + c mod l and returns s.
func (s *Scalar) MultiplyAdd(a, b, c *Scalar) *Scalar {
	wide := widenMultiply(&a.b, &b.b)
	var carry uint64
	for i := 0; i < 32; i++ {
		t := uint64(wide[i]) + uint64(c.b[i]) + carry
		wide[i] = byte(t)
		carry = t >> 8
	}
	// Propagate any remaining carry into the upper half.
	for i := 32; carry != 0 && i < 64; i++ {
		t := uint64(wide[i]) + carry
		wide[i] = byte(t)
		carry = t >> 8
	}
	*s = *fromBytesModOrderWide(wide[:])
	return s
}

// pow returns s^n mod l via a fixed public square-and-multiply ladder over
// the bits of n (most significant first). Because n is always a compile-time
// constant (l-2, for Invert), the sequence of squarings and multiplications
// does not depend on the secret base s, so this is safe despite the
// straight-line bit loop.
func (s *Scalar) pow(base *Scalar, n []byte) *Scalar {
	acc := NewOne()
	for i := len(n)*8 - 1; i >= 0; i-- {
		acc.Square(acc)
		if (n[i/8]>>uint(i%8))&1 == 1 {
			acc.Multiply(acc, base)
		}
	}
	return s.Set(acc)
}

// lMinus2 is l-2 in 32-byte little-endian form, the Fermat's-little-theorem
// exponent used by Invert.
var lMinus2 = [32]byte{
	0xeb, 0xd3, 0xf5, 0x5c, 0x1a, 0x63, 0x12, 0x58, 0xd6, 0x9c, 0xf7, 0xa2,
	0xde, 0xf9, 0xde, 0x14, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10,
}

// Invert sets s = 1/a mod l and returns s, using Fermat's little theorem
// (a^(l-2) = a^-1 mod l, since l is prime). a must be nonzero mod l.
func (s *Scalar) Invert(a *Scalar) *Scalar {
	return s.pow(a, lMinus2[:])
}

// Divide sets s = a / b mod l and returns s.
func (s *Scalar) Divide(a, b *Scalar) *Scalar {
	var inv Scalar
	inv.Invert(b)
	return s.Multiply(a, &inv)
}

// ToRadix16 returns the signed radix-16 digit expansion of s: 64 digits in
// [-8, 8), little-endian, satisfying sum(digits[i] * 16^i) == s. Used by
// constant-time variable-base scalar multiplication.
func (s *Scalar) ToRadix16() [64]int8 {
	var digits [64]int8
	for i := 0; i < 32; i++ {
		digits[2*i] = int8(s.b[i] & 15)
		digits[2*i+1] = int8((s.b[i] >> 4) & 15)
	}
	var carry int8
	for i := 0; i < 63; i++ {
		digits[i] += carry
		carry = (digits[i] + 8) >> 4
		digits[i] -= carry << 4
	}
	digits[63] += carry
	return digits
}

// ToRadix2w returns the signed width-w digit expansion of s, for w in
// {6, 7, 8}, used by variable-time fixed-base and multi-scalar
// multiplication window tables.
func (s *Scalar) ToRadix2w(w uint) []int8 {
	if w < 4 || w > 8 {
		panic("edwards25519/scalar: ToRadix2w width out of range")
	}
	digitsCount := (256 + int(w) - 1) / int(w)
	if w == 8 {
		digitsCount++
	}
	digits := make([]int8, digitsCount)

	radix := int64(1) << w
	windowMask := radix - 1

	var carry int64
	for i := 0; i < digitsCount; i++ {
		bitOffset := uint(i) * w
		v := int64(extractWindow(&s.b, bitOffset, w))
		v += carry
		d := v & windowMask
		if d >= radix/2 {
			d -= radix
		}
		carry = (v - d) >> w
		digits[i] = int8(d)
	}
	return digits
}

// extractWindow reads width bits from b starting at bitPos (little-endian
// bit order) into the low bits of a uint64.
func extractWindow(b *[32]byte, bitPos, width uint) uint64 {
	startByte := bitPos / 8
	var v uint64
	for k := uint(0); k < 8 && startByte+k < 32; k++ {
		v |= uint64(b[startByte+k]) << (8 * k)
	}
	v >>= bitPos % 8
	return v & (1<<width - 1)
}

// nafWords is a little-endian multi-word unsigned integer wide enough to
// hold a scalar (which is under 2^253) plus the small growth introduced by
// non-adjacent-form's balanced-residue step.
type nafWords [9]uint32

func nafWordsFromScalar(s *Scalar) nafWords {
	var k nafWords
	for i := 0; i < 8; i++ {
		k[i] = uint32(s.b[4*i]) | uint32(s.b[4*i+1])<<8 | uint32(s.b[4*i+2])<<16 | uint32(s.b[4*i+3])<<24
	}
	return k
}

func (k *nafWords) isZero() bool {
	for _, w := range k {
		if w != 0 {
			return false
		}
	}
	return true
}

func (k *nafWords) isOdd() bool { return k[0]&1 == 1 }

// subSmall subtracts the (possibly negative) value d from k in place.
func (k *nafWords) subSmall(d int64) {
	if d == 0 {
		return
	}
	if d > 0 {
		var borrow int64
		rem := d
		for i := range k {
			t := int64(k[i]) - rem - borrow
			rem = 0
			borrow = 0
			if t < 0 {
				t += 1 << 32
				borrow = 1
			}
			k[i] = uint32(t)
			if borrow == 0 {
				break
			}
		}
		return
	}
	var carry uint64
	rem := uint64(-d)
	for i := range k {
		t := uint64(k[i]) + rem + carry
		rem = 0
		k[i] = uint32(t)
		carry = t >> 32
		if carry == 0 {
			break
		}
	}
}

// rshift1 divides k by 2 in place, discarding the (assumed zero) low bit.
func (k *nafWords) rshift1() {
	var carry uint32
	for i := len(k) - 1; i >= 0; i-- {
		next := k[i] & 1
		k[i] = (k[i] >> 1) | (carry << 31)
		carry = next
	}
}

// NonAdjacentForm returns the width-w non-adjacent form of s: a signed
// digit expansion with the property that no two consecutive nonzero digits
// are within w positions of each other, used by variable-time double-scalar
// multiplication (VartimeDoubleScalarMultiplyBasepoint in the edwards25519
// package). w must be in [2, 8]; at
// w == 8 the balanced residues span [-128, 127], which is exactly int8's
// range.
//
// This follows the standard mods-based construction (Handbook of Applied
// Cryptography, Algorithm 3.35): while k > 0, if k is odd subtract its
// balanced residue mod 2^w (bringing that digit to zero) and record the
// digit, then halve k.
func (s *Scalar) NonAdjacentForm(w uint) [256]int8 {
	if w < 2 || w > 8 {
		panic("edwards25519/scalar: NonAdjacentForm width out of range")
	}
	var naf [256]int8
	width := int64(1) << w

	k := nafWordsFromScalar(s)
	for i := 0; i < 256 && !k.isZero(); i++ {
		if k.isOdd() {
			d := int64(k[0]) & (width - 1)
			if d >= width/2 {
				d -= width
			}
			naf[i] = int8(d)
			k.subSmall(d)
		}
		k.rshift1()
	}
	return naf
}
