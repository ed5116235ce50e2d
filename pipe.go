// SPDX-License-Identifier: GPL-2.0-only
// Source: thanhminhmr/srx src/basic/pipe.rs (protocol), github.com/woozymasta/lzo (Go idiom)

package srx

import "io"

// pipeChunk is what a PipeWriter hands a PipeReader over the forward
// channel: a filled buffer plus how much of it is valid.
type pipeChunk[T any] struct {
	buf []T
	n   int
}

// NewPipe creates a bounded single-producer/single-consumer pipe of
// fixed-size element buffers. size is the capacity of each buffer (not the
// number of buffers in flight, which is always exactly two: one with the
// writer, one with the reader).
func NewPipe[T any](size int) (*PipeWriter[T], *PipeReader[T]) {
	forward := make(chan pipeChunk[T], 1)
	back := make(chan []T, 1)
	return &PipeWriter[T]{
			forward: forward,
			back:    back,
			buf:     make([]T, size),
			size:    size,
		}, &PipeReader[T]{
			forward: forward,
			back:    back,
			buf:     make([]T, size), // spare, handed back to the writer on the first sync
		}
}

// PipeWriter is the producer side of a Pipe. Exactly one goroutine may call
// its methods.
type PipeWriter[T any] struct {
	forward chan<- pipeChunk[T]
	back    <-chan []T
	buf     []T // nil once the pipe has been closed or found broken
	idx     int
	size    int
	closed  bool
}

// sync hands the filled buffer to the reader and blocks for a recycled one.
func (w *PipeWriter[T]) sync() error {
	w.forward <- pipeChunk[T]{buf: w.buf, n: w.idx}
	recycled, ok := <-w.back
	if !ok {
		w.buf = nil
		return ErrBrokenPipe
	}
	w.buf = recycled
	w.idx = 0
	return nil
}

// Output appends one element, syncing the buffer to the reader once full.
func (w *PipeWriter[T]) Output(value T) error {
	if w.buf == nil {
		return ErrBrokenPipe
	}
	w.buf[w.idx] = value
	w.idx++
	if w.idx == w.size {
		return w.sync()
	}
	return nil
}

// Close flushes any pending partial buffer and signals end-of-stream to the
// reader. Safe to call more than once.
func (w *PipeWriter[T]) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	var err error
	if w.buf != nil && w.idx > 0 {
		err = w.sync()
	}
	close(w.forward)
	w.buf = nil
	return err
}

// ReceiveFrom bulk-fills a byte PipeWriter from r, syncing whenever the
// buffer fills. Returns the number of bytes read from r in this call (0
// signals r is exhausted, matching io.Reader's own EOF convention applied
// to the upstream source rather than the pipe).
func ReceiveFrom(w *PipeWriter[byte], r io.Reader) (int, error) {
	if w.buf == nil {
		return 0, ErrBrokenPipe
	}
	n, err := r.Read(w.buf[w.idx:w.size])
	if n > 0 {
		w.idx += n
		if w.idx == w.size {
			if syncErr := w.sync(); syncErr != nil {
				return n, syncErr
			}
		}
	}
	if err == io.EOF {
		return n, nil
	}
	return n, err
}

// PipeReader is the consumer side of a Pipe. Exactly one goroutine may call
// its methods.
type PipeReader[T any] struct {
	forward <-chan pipeChunk[T]
	back    chan<- []T
	buf     []T // the spare buffer before the first sync, nil once drained
	idx     int
	n       int
}

// sync receives the next chunk and returns the drained (or, on the very
// first call, spare) buffer to the writer.
func (r *PipeReader[T]) sync() error {
	old := r.buf
	chunk, ok := <-r.forward
	if !ok {
		r.buf = nil
		return nil
	}
	r.buf = chunk.buf
	r.n = chunk.n
	r.idx = 0
	if old != nil {
		// Errors here only happen once the writer has already quit without
		// reading the recycled buffer back; there's nothing useful to do
		// about that, so the send is best-effort and non-blocking.
		select {
		case r.back <- old:
		default:
		}
	}
	return nil
}

// Produce reads one element. ok is false once the writer has closed and all
// buffered data has been drained.
func (r *PipeReader[T]) Produce() (value T, ok bool, err error) {
	if r.buf != nil && r.idx == r.n {
		if err = r.sync(); err != nil {
			return value, false, err
		}
	}
	if r.buf == nil {
		return value, false, nil
	}
	value = r.buf[r.idx]
	r.idx++
	return value, true, nil
}

// Close releases the reader side: it closes the recycle channel, so a
// writer waiting for a recycled buffer gets ErrBrokenPipe, and later
// Produce/TransferTo calls report end of stream. Safe to call more than once.
func (r *PipeReader[T]) Close() error {
	if r.back != nil {
		close(r.back)
		r.back = nil
	}
	r.buf = nil
	return nil
}

// TransferTo bulk-drains a byte PipeReader into w. Returns the number of
// bytes written in this call; 0 signals the pipe is exhausted.
func TransferTo(r *PipeReader[byte], w io.Writer) (int, error) {
	if r.buf != nil && r.idx == r.n {
		if err := r.sync(); err != nil {
			return 0, err
		}
	}
	if r.buf == nil {
		return 0, nil
	}
	n, err := w.Write(r.buf[r.idx:r.n])
	r.idx += n
	return n, err
}
