// SPDX-License-Identifier: GPL-2.0-only
// Source: thanhminhmr/srx src/codec/bridged.rs

package srx

// bridgedContext derives the four secondary-context indices used to code
// one input byte, from a primaryContextInfo snapshot. See spec.md §4.4.
type bridgedContext struct {
	bitContext     int
	literalContext int
	primaryInfo    primaryContextInfo
}

func newBridgedContext(info primaryContextInfo) bridgedContext {
	matchCount := info.matchCount
	var class int
	switch {
	case matchCount < 4:
		class = (int(info.previousByte) << 2) | matchCount
	case matchCount <= 67:
		class = 1024 + ((matchCount - 4) >> 1)
	default:
		class = 1024 + 31
	}
	return bridgedContext{
		bitContext:     0x4000*256 + class*768,
		literalContext: int(info.hashValue&0x3FFF) * 256,
		primaryInfo:    info,
	}
}

func (b bridgedContext) firstContext() int {
	return b.bitContext + int(b.primaryInfo.firstByte)
}

func (b bridgedContext) secondContext() int {
	sum := int(b.primaryInfo.secondByte) + int(b.primaryInfo.thirdByte)
	return b.bitContext + 0x100 + (sum & 0xFF)
}

func (b bridgedContext) thirdContext() int {
	diff := 2*int(b.primaryInfo.secondByte) - int(b.primaryInfo.thirdByte)
	return b.bitContext + 0x200 + (diff & 0xFF)
}

func (b bridgedContext) literalContextIndex() int {
	return b.literalContext
}

func (b bridgedContext) firstByte() byte  { return b.primaryInfo.firstByte }
func (b bridgedContext) secondByte() byte { return b.primaryInfo.secondByte }
func (b bridgedContext) thirdByte() byte  { return b.primaryInfo.thirdByte }
