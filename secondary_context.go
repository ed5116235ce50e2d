// SPDX-License-Identifier: GPL-2.0-only
// Source: thanhminhmr/srx src/secondary_context/encoder.rs (discipline), src/codec/bridged.rs (sizing)

package srx

// secondaryContextSize is N in spec.md §3/§4.4: every bit_context,
// first/second/third/literal context index must land in [0, N).
const secondaryContextSize = 0x4000*256 + (1024+32)*768

// secondaryContext is the adaptive bit predictor: a flat array of bit
// states, each an index into the shared secondaryStateTable.
type secondaryContext struct {
	cells []bitState // heap-allocated, len == secondaryContextSize
}

func newSecondaryContext() *secondaryContext {
	return &secondaryContext{
		cells: make([]bitState, secondaryContextSize),
	}
}

func (s *secondaryContext) getInfo(index int) stateInfo {
	return s.cells[index].getInfo()
}

// update advances the cell at index given the observed bit. Callers must
// pass the stateInfo obtained from the immediately preceding getInfo call
// at the same index, and must use that same stateInfo's prediction to
// drive the range coder — not a freshly looked-up one — so encoder and
// decoder see identical predictions bit-by-bit.
func (s *secondaryContext) update(info stateInfo, index int, bit int) {
	s.cells[index].update(info, bit)
}
