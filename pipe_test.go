// SPDX-License-Identifier: GPL-2.0-only
// Source: WoozyMasta-lzo compress_test.go (style); thanhminhmr/srx src/basic/pipe.rs (behavior under test)

package srx

import (
	"bytes"
	"io"
	"testing"
)

func TestPipe_OutputProduceRoundTrip(t *testing.T) {
	w, r := NewPipe[byte](4)

	go func() {
		for _, b := range []byte("hello, pipe") {
			if err := w.Output(b); err != nil {
				t.Errorf("Output: %v", err)
				return
			}
		}
		if err := w.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	}()

	var got []byte
	for {
		b, ok, err := r.Produce()
		if err != nil {
			t.Fatalf("Produce: %v", err)
		}
		if !ok {
			break
		}
		got = append(got, b)
	}
	if string(got) != "hello, pipe" {
		t.Fatalf("got %q, want %q", got, "hello, pipe")
	}
}

func TestPipe_ProduceOnEmptyClosedPipe(t *testing.T) {
	w, r := NewPipe[byte](16)
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	_, ok, err := r.Produce()
	if err != nil {
		t.Fatalf("Produce: %v", err)
	}
	if ok {
		t.Fatalf("expected ok=false from an empty closed pipe")
	}
}

func TestPipe_ExactlyOneBufferOfData(t *testing.T) {
	const size = 8
	w, r := NewPipe[byte](size)
	data := bytes.Repeat([]byte{0x42}, size)

	go func() {
		for _, b := range data {
			_ = w.Output(b)
		}
		_ = w.Close()
	}()

	n, err := TransferTo(r, io.Discard)
	if err != nil {
		t.Fatalf("TransferTo: %v", err)
	}
	if n != size {
		t.Fatalf("first TransferTo: got %d bytes, want %d", n, size)
	}
	n, err = TransferTo(r, io.Discard)
	if err != nil {
		t.Fatalf("TransferTo: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected pipe exhausted after exactly one buffer, got %d more bytes", n)
	}
}

func TestPipe_ReceiveFromAndTransferTo(t *testing.T) {
	const bufSize = 3
	w, r := NewPipe[byte](bufSize)
	in := bytes.Repeat([]byte("abcdefgh"), 100)

	errc := make(chan error, 1)
	go func() {
		src := bytes.NewReader(in)
		for {
			n, err := ReceiveFrom(w, src)
			if err != nil {
				errc <- err
				return
			}
			if n == 0 {
				break
			}
		}
		errc <- w.Close()
	}()

	var out bytes.Buffer
	if _, err := TransferTo(r, &out); err != nil {
		t.Fatalf("TransferTo: %v", err)
	}
	for {
		n, err := TransferTo(r, &out)
		if err != nil {
			t.Fatalf("TransferTo: %v", err)
		}
		if n == 0 {
			break
		}
	}
	if err := <-errc; err != nil {
		t.Fatalf("writer goroutine: %v", err)
	}
	if !bytes.Equal(out.Bytes(), in) {
		t.Fatalf("ReceiveFrom/TransferTo round-trip mismatch: got %d bytes, want %d", out.Len(), len(in))
	}
}

func TestPipe_OutputAfterCloseFails(t *testing.T) {
	w, r := NewPipe[byte](4)

	drained := make(chan struct{})
	go func() {
		defer close(drained)
		for {
			_, ok, err := r.Produce()
			if err != nil || !ok {
				return
			}
		}
	}()

	if err := w.Output(1); err != nil {
		t.Fatalf("Output: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	<-drained

	if err := w.Output(2); err != ErrBrokenPipe {
		t.Fatalf("Output after Close: got %v, want %v", err, ErrBrokenPipe)
	}
}
