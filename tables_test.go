// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edwards25519

import (
	"testing"
	"testing/quick"
)

func TestEdwardsBasepointTableMatchesGeneratorMultiply(t *testing.T) {
	table := NewEdwardsBasepointTable(Generator())

	f := func(seed int64) bool {
		s := randScalar(seed)

		var viaTable EdwardsPoint
		table.Multiply(&viaTable, s)

		var viaGenerator EdwardsPoint
		viaGenerator.Multiply(Generator(), s)

		return viaTable.Equal(&viaGenerator) == 1
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 64}); err != nil {
		t.Error(err)
	}
}
