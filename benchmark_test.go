// SPDX-License-Identifier: GPL-2.0-only
// Source: WoozyMasta-lzo benchmark_test.go (shape, adapted to the Encode/Decode API)

package srx

import (
	"bytes"
	"context"
	"fmt"
	"testing"
)

func benchmarkInputSets() map[string][]byte {
	return map[string][]byte{
		"small-text-4k":   bytes.Repeat([]byte("srx benchmark text payload "), 160),
		"pattern-128k":    bytes.Repeat([]byte("ABCDEF0123456789"), 8192),
		"byte-cycle-256k": bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 26214),
	}
}

func BenchmarkEncode(b *testing.B) {
	for name, data := range benchmarkInputSets() {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(data)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				var out bytes.Buffer
				if err := Encode(context.Background(), bytes.NewReader(data), &out); err != nil {
					b.Fatalf("Encode failed: %v", err)
				}
			}
		})
	}
}

func BenchmarkDecode(b *testing.B) {
	for name, data := range benchmarkInputSets() {
		var compressed bytes.Buffer
		if err := Encode(context.Background(), bytes.NewReader(data), &compressed); err != nil {
			b.Fatalf("setup Encode failed for %s: %v", name, err)
		}
		compressedBytes := compressed.Bytes()

		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(data)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				var out bytes.Buffer
				if err := Decode(context.Background(), bytes.NewReader(compressedBytes), &out); err != nil {
					b.Fatalf("Decode failed: %v", err)
				}
			}
		})
	}
}

func BenchmarkRoundTrip(b *testing.B) {
	data := bytes.Repeat([]byte("RoundTripData"), 16384)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		var compressed bytes.Buffer
		if err := Encode(context.Background(), bytes.NewReader(data), &compressed); err != nil {
			b.Fatalf("Encode failed: %v", err)
		}
		var out bytes.Buffer
		if err := Decode(context.Background(), bytes.NewReader(compressed.Bytes()), &out); err != nil {
			b.Fatalf("Decode failed: %v", err)
		}
	}
}

func BenchmarkEncode_BufferSizes(b *testing.B) {
	data := bytes.Repeat([]byte("buffer size sweep payload "), 4000)
	for _, size := range []int{1 << 10, 1 << 14, 1 << 18} {
		b.Run(fmt.Sprintf("io-buffer-%d", size), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(data)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				var out bytes.Buffer
				if err := Encode(context.Background(), bytes.NewReader(data), &out, WithIOBufferSize(size)); err != nil {
					b.Fatalf("Encode failed: %v", err)
				}
			}
		})
	}
}
