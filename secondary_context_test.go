// SPDX-License-Identifier: GPL-2.0-only
// Source: WoozyMasta-lzo compress_test.go (style)

package srx

import "testing"

func TestSecondaryContext_GetUpdateDiscipline(t *testing.T) {
	ctx := newSecondaryContext()
	const index = 12345

	info := ctx.getInfo(index)
	if info.prediction != ktPrediction(0, 0) {
		t.Fatalf("fresh cell prediction = %d, want the n0=n1=0 KT estimate", info.prediction)
	}

	ctx.update(info, index, 1)
	next := ctx.getInfo(index)
	if next.prediction <= info.prediction {
		t.Fatalf("prediction after observing a 1-bit did not increase: %d -> %d", info.prediction, next.prediction)
	}
}

func TestSecondaryContext_IndicesAreIndependent(t *testing.T) {
	ctx := newSecondaryContext()
	info := ctx.getInfo(0)
	ctx.update(info, 0, 1)

	other := ctx.getInfo(1)
	if other.prediction != ktPrediction(0, 0) {
		t.Fatalf("updating index 0 leaked into index 1")
	}
}
