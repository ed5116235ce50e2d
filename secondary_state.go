// SPDX-License-Identifier: GPL-2.0-only
// Source: thanhminhmr/srx src/secondary_context/state/state.rs

package srx

// stateInfo is one entry of the secondary state table: the predicted
// probability that the next bit is 1 (as a fraction of 1<<32), and the
// successor state index for each outcome.
type stateInfo struct {
	prediction uint32
	nextIfZero uint16
	nextIfOne  uint16
}

func (s stateInfo) next(bit int) uint16 {
	if bit == 1 {
		return s.nextIfOne
	}
	return s.nextIfZero
}

// bitState is a 16-bit index into secondaryStateTable.
type bitState uint16

func (b bitState) getInfo() stateInfo {
	return secondaryStateTable[b]
}

func (b *bitState) update(info stateInfo, bit int) {
	*b = bitState(info.next(bit))
}

// secondaryStateTable: states are saturating event-count pairs (n0, n1),
// each clamped to [0,255], addressed as n0*256+n1 — exactly fills the
// 16-bit bitState index space. See SPEC_FULL.md §3.1 for the rationale.
var secondaryStateTable = generateSecondaryStateTable()

// nonStationaryDecayThreshold: once the *other* counter exceeds this, a new
// observation halves it instead of leaving it untouched, so the predictor
// tracks local statistics instead of a fixed long-run frequency.
const nonStationaryDecayThreshold = 2

func generateSecondaryStateTable() [65536]stateInfo {
	var table [65536]stateInfo
	for n0 := 0; n0 < 256; n0++ {
		for n1 := 0; n1 < 256; n1++ {
			index := n0*256 + n1
			table[index] = stateInfo{
				prediction: ktPrediction(n0, n1),
				nextIfZero: uint16(transition(n0, n1, 0)),
				nextIfOne:  uint16(transition(n0, n1, 1)),
			}
		}
	}
	return table
}

// ktPrediction is a Krichevsky–Trofimov-style estimator of P(bit=1),
// scaled to the full uint32 range so the range coder can use it directly.
func ktPrediction(n0, n1 int) uint32 {
	num := uint64(2*n1 + 1)
	den := uint64(2*n0 + 2*n1 + 2)
	return uint32((num << 32) / den)
}

func transition(n0, n1, bit int) int {
	if bit == 1 {
		n1 = saturate(n1 + 1)
		if n0 > nonStationaryDecayThreshold {
			n0 /= 2
		}
	} else {
		n0 = saturate(n0 + 1)
		if n1 > nonStationaryDecayThreshold {
			n1 /= 2
		}
	}
	return n0*256 + n1
}

func saturate(n int) int {
	if n > 255 {
		return 255
	}
	return n
}
