// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edwards25519

import (
	"encoding/hex"

	"github.com/hallowgate/edwards25519/field"
)

func mustFieldElement(s string) *field.Element {
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != 32 {
		panic("edwards25519: invalid constant")
	}
	return new(field.Element).SetBytes(b)
}

// d is the twisted Edwards curve parameter: -x^2 + y^2 = 1 + d*x^2*y^2,
// d = -121665/121666 mod p.
var d = mustFieldElement("a3785913ca4deb75abd841414d0a700098e879777940c78c73fe6f2bee6c0352")

// d2 = 2*d, precomputed since it appears in every point addition/doubling.
var d2 = new(field.Element).Add(d, d)

// sqrtADMinusOne and invSqrtAMinusD are sqrt(a*d-1) and 1/sqrt(a-d), where
// a = -1 for edwards25519 (so a*d-1 and a-d are literally the same field
// element). Both appear in the Ristretto compression and decompression
// formulas.
var sqrtADMinusOne = mustFieldElement("1b2e7b49a0f6977ebd54781b0c8e9daffdd1f531c9fc3c0fac48832bbf316937")
var invSqrtAMinusD = mustFieldElement("ea405d80aafdc899be72415a17162f9d40d801fe917bc216a2fcafcf05896c78")

// doubleInvSqrtMinusDMinusOne, dMinusOneSquared and oneMinusDSquared are
// the remaining constants needed by the Ristretto Elligator2 map
// (mapToPoint): 2/sqrt(-1-d), (d-1)^2 and 1-d^2 respectively.
var doubleInvSqrtMinusDMinusOne = mustFieldElement("067e45ffaa046ecc821a7d4bd1d3a1c57e4ffc03dc087bd2bb06a060f4ed260f")
var dMinusOneSquared = mustFieldElement("204ded44aa5aad3199191eb02c4a9ed2eb4e9b522fd3dc4c41226cf67ab36859")
var oneMinusDSquared = mustFieldElement("76c15f94c1097ce20f355ecd38a1812ce4df70beddab9499d7e0b3b2a8729002")

// basepointCompressed is the canonical compressed encoding of the
// edwards25519 basepoint B.
var basepointCompressed = mustCompressedEdwardsY("5866666666666666666666666666666666666666666666666666666666666666")

func mustCompressedEdwardsY(s string) *CompressedEdwardsY {
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != 32 {
		panic("edwards25519: invalid basepoint constant")
	}
	var c CompressedEdwardsY
	copy(c.b[:], b)
	return &c
}
