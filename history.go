// SPDX-License-Identifier: GPL-2.0-only
// Source: thanhminhmr/srx src/primary_context/history.rs

package srx

// Matched classifies an incoming byte against a primaryCell's ranked trio.
type Matched uint8

const (
	MatchFirst Matched = iota
	MatchSecond
	MatchThird
	NoMatch
)

// historyState is one entry of the 256-entry history state table: the
// successor state index for each outcome, plus the match count this state
// represents. A plain struct of five uint8 fields, so each table row is one
// small comparable, copyable value.
type historyState struct {
	nextIfFirst  uint8
	nextIfSecond uint8
	nextIfThird  uint8
	nextIfMiss   uint8
	firstCount   uint8
}

// historyStateTable is generated once at init time; see SPEC_FULL.md §3.1
// for why the state *is* the saturating run-length of consecutive
// first-rank matches.
var historyStateTable = generateHistoryStateTable()

func generateHistoryStateTable() [256]historyState {
	var table [256]historyState
	for state := 0; state < 256; state++ {
		run := uint8(state)
		nextIfFirst := run
		if run < 255 {
			nextIfFirst = run + 1
		}
		table[state] = historyState{
			nextIfFirst:  nextIfFirst,
			nextIfSecond: run / 2,
			nextIfThird:  run / 4,
			nextIfMiss:   0,
			firstCount:   run,
		}
	}
	return table
}

func (s historyState) next(matched Matched) uint8 {
	switch matched {
	case MatchFirst:
		return s.nextIfFirst
	case MatchSecond:
		return s.nextIfSecond
	case MatchThird:
		return s.nextIfThird
	default:
		return s.nextIfMiss
	}
}

// byteHistory is a 32-bit cell: [state:8][first:8][second:8][third:8]
// (low to high). It holds, for one hashed context, the three
// most-recently-seen byte values ranked by recency of match.
type byteHistory uint32

func (h byteHistory) firstByte() byte  { return byte(h >> 8) }
func (h byteHistory) secondByte() byte { return byte(h >> 16) }
func (h byteHistory) thirdByte() byte  { return byte(h >> 24) }

func (h byteHistory) state() historyState {
	return historyStateTable[byte(h)]
}

func (h byteHistory) matchCount() int {
	return int(h.state().firstCount)
}

// matching classifies nextByte against the cell's ranked trio, rotates the
// ranking accordingly, and advances the state index. Used by the encoder,
// which knows the real next byte.
func (h *byteHistory) matching(nextByte byte) Matched {
	cell := uint32(*h)
	mask := cell ^ (0x01_01_01_00 * uint32(nextByte))

	var matched Matched
	var updated uint32
	switch {
	case mask&0x00_00_FF_00 == 0:
		matched = MatchFirst
		updated = cell & 0xFF_FF_FF_00
	case mask&0x00_FF_00_00 == 0:
		matched = MatchSecond
		updated = (cell & 0xFF_00_00_00) | (((cell & 0x00_00_FF_00) | uint32(nextByte)) << 8)
	case mask&0xFF_00_00_00 == 0:
		matched = MatchThird
		updated = ((cell & 0x00_FF_FF_00) | uint32(nextByte)) << 8
	default:
		matched = NoMatch
		updated = ((cell & 0x00_FF_FF_00) | uint32(nextByte)) << 8
	}

	*h = byteHistory(updated | uint32(byteHistory(cell).state().next(matched)))
	return matched
}

// matched applies the same cell update as matching, given an outcome
// obtained externally (decoding). Must produce identical state to what
// matching would have produced had it classified nextByte itself.
func (h *byteHistory) matched(nextByte byte, matched Matched) {
	cell := uint32(*h)
	var updated uint32
	switch matched {
	case MatchFirst:
		updated = cell & 0xFF_FF_FF_00
	case MatchSecond:
		updated = (cell & 0xFF_00_00_00) | (((cell & 0x00_00_FF_00) | uint32(nextByte)) << 8)
	default: // MatchThird and NoMatch rotate the cell identically.
		updated = ((cell & 0x00_FF_FF_00) | uint32(nextByte)) << 8
	}
	*h = byteHistory(updated | uint32(byteHistory(cell).state().next(matched)))
}
