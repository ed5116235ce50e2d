// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo (teacher), thanhminhmr/srx (algorithm)

/*
Package srx implements a lossless byte-stream compressor/decompressor based
on symbol ranking with a two-level context model fed into a binary
arithmetic (range) coder.

The primary context ranks, per hashed prefix, the three most-recently-seen
byte values. The secondary context is an adaptive bit predictor indexed by
a composite built from the primary context's state. A carry-less binary
range coder turns the resulting bit stream into bytes.

# Encode / Decode

	err := srx.Encode(ctx, r, w)
	err := srx.Decode(ctx, r, w)

Both accept options to size the internal pipes or attach a logger:

	err := srx.Encode(ctx, r, w, srx.WithIOBufferSize(1<<20))

Encoding runs as a pipeline of goroutines (reader, primary context, secondary
context + range coder, writer) connected by bounded buffered pipes; decoding
fuses the range coder with both context models into a single goroutine
because each decoded bit depends on context state built from previously
decoded bytes.

The compressed stream has no header, magic number, or checksum: it is
exactly the range coder's output, with end-of-stream signaled in-band. Two
independent Encode calls never share state, so concatenating their outputs
is meaningless, but each call on its own is fully self-describing for
decoding purposes given the matching Decode call.
*/
package srx
