// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package srx

import "errors"

// Sentinel errors for encoding and decoding.
var (
	// ErrBrokenPipe is returned when a stage writes to a pipe it already
	// closed, or to a pipe whose consumer has closed its side. The reader
	// side never returns it: a closed writer reads as end of stream.
	ErrBrokenPipe = errors.New("srx: broken pipe")
	// ErrGoroutinePanic wraps a recovered panic from a pipeline stage.
	ErrGoroutinePanic = errors.New("srx: goroutine panic")
	// ErrTruncatedStream names a compressed stream that ends before its
	// in-band end-of-stream marker. The decoder does not return it: the
	// range decoder reads input past the end of the stream as zero bytes.
	ErrTruncatedStream = errors.New("srx: truncated compressed stream")
)
