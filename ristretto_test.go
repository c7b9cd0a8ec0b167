// Copyright (c) 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edwards25519

import (
	"encoding/hex"
	"testing"
	"testing/quick"

	"github.com/hallowgate/edwards25519/scalar"
	"github.com/stretchr/testify/require"
)

// ristrettoBasepointMultiples holds the compressed encodings of [i]B for
// i = 0..15 in the Ristretto255 group, cross-checked against the published
// IETF test vectors for the first several multiples.
var ristrettoBasepointMultiples = [16]string{
	"0000000000000000000000000000000000000000000000000000000000000000",
	"e2f2ae0a6abc4e71a884a961c500515f58e30b6aa582dd8db6a65945e08d2d76",
	"6a493210f7499cd17fecb510ae0cea23a110e8d5b901f8acadd3095c73a3b919",
	"94741f5d5d52755ece4f23f044ee27d5d1ea1e2bd196b462166b16152a9d0259",
	"da80862773358b466ffadfe0b3293ab3d9fd53c5ea6c955358f568322daf6a57",
	"e882b131016b52c1d3337080187cf768423efccbb517bb495ab812c4160ff44e",
	"f64746d3c92b13050ed8d80236a7f0007c3b3f962f5ba793d19a601ebb1df403",
	"44f53520926ec81fbd5a387845beb7df85a96a24ece18738bdcfa6a7822a176d",
	"903293d8f2287ebe10e2374dc1a53e0bc887e592699f02d077d5263cdd55601c",
	"02622ace8f7303a31cafc63f8fc48fdc16e1c8c8d234b2f0d6685282a9076031",
	"20706fd788b2720a1ed2a5dad4952b01f413bcf0e7564de8cdc816689e2db95f",
	"bce83f8ba5dd2fa572864c24ba1810f9522bc6004afe95877ac73241cafdab42",
	"e4549ee16b9aa03099ca208c67adafcafa4c3f3e4e5303de6026e3ca8ff84460",
	"aa52e000df2e16f55fb1032fc33bc42742dad6bd5a8fc0be0167436c5948501f",
	"46376b80f409b29dc2b5f6f0c52591990896e5716f41477cd30085ab7f10301e",
	"e0c418f7c8d9c4cdd7395b93ea124f3ad99021bb681dfc3302a9d99a2e53e64e",
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	require.Len(t, b, 32)
	return b
}

func TestRistrettoBasepointMultiplesKnownAnswers(t *testing.T) {
	acc := NewRistrettoIdentity()
	B := RistrettoGenerator()
	for i, want := range ristrettoBasepointMultiples {
		got := acc.Compress().Bytes()
		require.Equalf(t, want, hex.EncodeToString(got), "multiple %d", i)
		acc.Add(acc, B)
	}
}

func TestRistrettoIdentityDecodesFromZeroBytes(t *testing.T) {
	var zero [32]byte
	c, err := new(CompressedRistretto).SetBytes(zero[:])
	require.NoError(t, err)
	p, err := c.Decompress()
	require.NoError(t, err)
	require.Equal(t, 1, p.CtEquals(NewRistrettoIdentity()))
}

func TestRistrettoCompressDecompressRoundTrip(t *testing.T) {
	f := func(seed int64) bool {
		var p RistrettoElement
		p.Multiply(RistrettoGenerator(), randScalar(seed))

		got, err := p.Compress().Decompress()
		if err != nil {
			return false
		}
		return got.CtEquals(&p) == 1
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 64}); err != nil {
		t.Error(err)
	}
}

func TestRistrettoDecompressRejectsBadEncodings(t *testing.T) {
	cases := []struct {
		name string
		hex  string
	}{
		// s = p: not a canonical field encoding.
		{"non-canonical", "edffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff7f"},
		// s = 1: odd/negative representative, never produced by Compress.
		{"negative", "0100000000000000000000000000000000000000000000000000000000000000"},
		// s = 8: v = -(d*u1^2)-u2^2 is not a square for this s.
		{"v-not-square", "0800000000000000000000000000000000000000000000000000000000000000"},
		// s = 2: x*y is negative.
		{"xy-negative", "0200000000000000000000000000000000000000000000000000000000000000"},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			b := mustHex(t, c.hex)
			cr, err := new(CompressedRistretto).SetBytes(b)
			require.NoError(t, err)
			_, err = cr.Decompress()
			require.Error(t, err)
		})
	}
}

func TestRistrettoDecompressAcceptsValidEncoding(t *testing.T) {
	b := mustHex(t, "0400000000000000000000000000000000000000000000000000000000000000")
	cr, err := new(CompressedRistretto).SetBytes(b)
	require.NoError(t, err)
	_, err = cr.Decompress()
	require.NoError(t, err)
}

func TestFromUniformBytesProducesKnownPoint(t *testing.T) {
	seed := mustHex2x(t, "5a1b482c625a551fa4306acf3e649b440f4167dbbd71aef5016565b2be3144fc68118b1f6a1ea78a1a126ccf34269b3939c78fe8b68d5895b09aba752385ab44")
	var p RistrettoElement
	p.FromUniformBytes(seed)
	got := hex.EncodeToString(p.Compress().Bytes())
	require.Equal(t, "ead5a56c3ce2eadba6c4944bfe638a05bfb8ee39e191b98360ccc47849d4370c", got)
}

func mustHex2x(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	require.Len(t, b, 64)
	return b
}

func TestRistrettoAddSubtractInverse(t *testing.T) {
	f := func(seed int64) bool {
		var p, neg, sum RistrettoElement
		p.Multiply(RistrettoGenerator(), randScalar(seed))
		neg.Negate(&p)
		sum.Add(&p, &neg)
		return sum.CtEquals(NewRistrettoIdentity()) == 1
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 32}); err != nil {
		t.Error(err)
	}
}

func TestRistrettoScalarMultiplyAdditivity(t *testing.T) {
	f := func(seedA, seedB int64) bool {
		a := randScalar(seedA)
		b := randScalar(seedB)
		var sumScalar scalar.Scalar
		sumScalar.Add(a, b)

		B := RistrettoGenerator()
		var aB, bB, viaScalar, viaPoints RistrettoElement
		aB.Multiply(B, a)
		bB.Multiply(B, b)
		viaScalar.Multiply(B, &sumScalar)
		viaPoints.Add(&aB, &bB)

		return viaScalar.CtEquals(&viaPoints) == 1
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 32}); err != nil {
		t.Error(err)
	}
}
