// SPDX-License-Identifier: GPL-2.0-only
// Source: thanhminhmr/srx src/primary_context/context.rs

package srx

// primaryContextSize is SIZE in spec.md §3: 2^24, and must stay a power of
// two for the hash advance formula's modulo-via-mask to stay exact.
const primaryContextSize = 1 << 24

// primaryContext is the symbol-ranking model: per hashed prefix, the three
// most-recently-matched byte values in rank order. One instance is owned
// by each encoder or decoder pipeline; never shared across goroutines.
type primaryContext struct {
	previousByte byte
	hashValue    uint32
	cells        []byteHistory // heap-allocated, len == primaryContextSize
}

func newPrimaryContext() *primaryContext {
	return &primaryContext{
		cells: make([]byteHistory, primaryContextSize),
	}
}

// primaryContextInfo is a snapshot of the current cell plus the context
// that produced it, used to derive the bridged secondary-context indices.
type primaryContextInfo struct {
	previousByte byte
	firstByte    byte
	secondByte   byte
	thirdByte    byte
	hashValue    uint32
	matchCount   int
}

func (p *primaryContext) getInfo() primaryContextInfo {
	cell := p.cells[p.hashValue]
	return primaryContextInfo{
		previousByte: p.previousByte,
		firstByte:    cell.firstByte(),
		secondByte:   cell.secondByte(),
		thirdByte:    cell.thirdByte(),
		hashValue:    p.hashValue,
		matchCount:   cell.matchCount(),
	}
}

func nextHash(hashValue uint32, nextByte byte) uint32 {
	return (hashValue*160 + uint32(nextByte) + 1) % primaryContextSize
}

// matching is the encoder path: classify nextByte against the current
// cell, update it, and advance the hash.
func (p *primaryContext) matching(nextByte byte) Matched {
	matched := p.cells[p.hashValue].matching(nextByte)
	p.previousByte = nextByte
	p.hashValue = nextHash(p.hashValue, nextByte)
	return matched
}

// matched is the decoder path: apply the same cell update given an outcome
// obtained by decoding, without reclassifying.
func (p *primaryContext) matched(nextByte byte, matched Matched) {
	p.cells[p.hashValue].matched(nextByte, matched)
	p.previousByte = nextByte
	p.hashValue = nextHash(p.hashValue, nextByte)
}
