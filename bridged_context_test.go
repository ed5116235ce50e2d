// SPDX-License-Identifier: GPL-2.0-only
// Source: WoozyMasta-lzo compress_test.go (style)

package srx

import "testing"

func TestBridgedContext_IndicesStayInBounds(t *testing.T) {
	p := newPrimaryContext()
	for _, b := range []byte("a context index must never run off the end of the predictor table") {
		p.matching(b)
		info := newBridgedContext(p.getInfo())
		for name, idx := range map[string]int{
			"firstContext":  info.firstContext(),
			"secondContext": info.secondContext(),
			"thirdContext":  info.thirdContext(),
			"literalIndex":  info.literalContextIndex(),
		} {
			if idx < 0 || idx >= secondaryContextSize {
				t.Fatalf("%s = %d out of [0, %d)", name, idx, secondaryContextSize)
			}
		}
	}
}

func TestBridgedContext_LiteralRegionDoesNotOverlapBitRegion(t *testing.T) {
	// Every literal context's nibble-tree descent can add up to 255 to the
	// base index (15*16 + 15, see secondaryContextEncoder.byte); that must still land
	// strictly below where the bit region starts.
	const bitRegionStart = 0x4000 * 256
	const maxLiteralBase = 0x3FFF * 256
	if maxLiteralBase+256 > bitRegionStart {
		t.Fatalf("literal region (max base %d, + nibble tree headroom) would overlap the bit region at %d", maxLiteralBase, bitRegionStart)
	}
}
