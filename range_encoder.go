// SPDX-License-Identifier: GPL-2.0-only
// Source: thanhminhmr/srx src/secondary_context/encoder.rs (BitEncoder)

package srx

// rangeEncoder is a carry-less binary range coder: it maps a stream of
// (prediction, bit) pairs to bytes. See spec.md §4.7.
type rangeEncoder struct {
	low    uint32
	high   uint32
	output *PipeWriter[byte]
}

func newRangeEncoder(output *PipeWriter[byte]) *rangeEncoder {
	return &rangeEncoder{low: 0, high: 0xFFFFFFFF, output: output}
}

// bit codes one bit given prediction p, the probability (scaled to
// [0, 1<<32)) that the bit is 1.
func (e *rangeEncoder) bit(prediction uint32, bit int) error {
	delta := uint32((uint64(e.high-e.low) * uint64(prediction)) >> 32)
	middle := e.low + delta
	if bit == 0 {
		e.low = middle + 1
	} else {
		e.high = middle
	}
	if (e.high ^ e.low) < 0x01000000 {
		return e.flush()
	}
	return nil
}

// flush emits normalized-out bytes while the top byte of low and high agree.
func (e *rangeEncoder) flush() error {
	for {
		if err := e.output.Output(byte(e.low >> 24)); err != nil {
			return err
		}
		e.low <<= 8
		e.high = (e.high << 8) | 0xFF
		if (e.high ^ e.low) >= 0x01000000 {
			return nil
		}
	}
}

// close emits a four-byte tail unconditionally (the top byte of low plus
// one, then three zero bytes) and closes the downstream byte pipe. After
// normalization the top byte of high is greater than that of low, so the
// tail value lies inside [low, high]: the decoder recovers the last bits
// no matter what follows the stream, and the trailing zeros match what it
// reads once input runs out.
func (e *rangeEncoder) close() error {
	for _, b := range [4]byte{byte(e.low>>24) + 1, 0, 0, 0} {
		if err := e.output.Output(b); err != nil {
			return err
		}
	}
	return e.output.Close()
}
