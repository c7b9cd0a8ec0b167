// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edwards25519

// eightTorsionCompressed holds the compressed encodings of the eight
// points of the cofactor-8 torsion subgroup of edwards25519, the cyclic
// group of order dividing 8 that Ristretto quotients away. Index i holds
// [i]T for a fixed generator T of order 8, so index 0 is the identity and
// index 4 is the unique point of order 2.
var eightTorsionCompressed = [8]string{
	"0100000000000000000000000000000000000000000000000000000000000000",
	"26e8958fc2b227b045c3f489f2ef98f0d5dfac05d3c63339b13802886d53fc85",
	"0000000000000000000000000000000000000000000000000000000000000080",
	"c7176a703d4dd84fba3c0b760d10670f2a2053fa2c39ccc64ec7fd7792ac03fa",
	"ecffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff7f",
	"c7176a703d4dd84fba3c0b760d10670f2a2053fa2c39ccc64ec7fd7792ac037a",
	"0000000000000000000000000000000000000000000000000000000000000000",
	"26e8958fc2b227b045c3f489f2ef98f0d5dfac05d3c63339b13802886d53fc05",
}

// EightTorsion holds the eight decompressed points of the cofactor
// subgroup, computed once at package init.
var EightTorsion = func() [8]*EdwardsPoint {
	var pts [8]*EdwardsPoint
	for i, s := range eightTorsionCompressed {
		p, err := mustCompressedEdwardsY(s).Decompress()
		if err != nil {
			panic("edwards25519: eight-torsion point does not decompress: " + err.Error())
		}
		pts[i] = p
	}
	return pts
}()
