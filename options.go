// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo (options idiom), thanhminhmr/srx (defaults)

package srx

import "go.uber.org/zap"

// Default pipe capacities, matching spec's IO_BUFFER_SIZE / MESSAGE_BUFFER_SIZE.
const (
	defaultIOBufferSize      = 1 << 16
	defaultMessageBufferSize = 1 << 16
)

// settings holds the resolved options for one Encode or Decode call.
// Unexported: callers only ever see the functional Option constructors.
type settings struct {
	ioBufferSize      int
	messageBufferSize int
	logger            *zap.Logger
}

func defaultSettings() *settings {
	return &settings{
		ioBufferSize:      defaultIOBufferSize,
		messageBufferSize: defaultMessageBufferSize,
		logger:            zap.NewNop(),
	}
}

// Option configures an Encode or Decode call. The zero value of every
// Option-affected field behaves correctly, so passing no options is always
// valid, matching the teacher's opts == nil handling.
type Option func(*settings)

// WithIOBufferSize sets the capacity, in bytes, of each byte pipe in the
// pipeline. Must be positive; non-positive values are ignored.
func WithIOBufferSize(size int) Option {
	return func(s *settings) {
		if size > 0 {
			s.ioBufferSize = size
		}
	}
}

// WithMessageBufferSize sets the capacity, in packed messages, of the pipe
// between the primary and secondary encoder stages. Must be positive;
// non-positive values are ignored.
func WithMessageBufferSize(size int) Option {
	return func(s *settings) {
		if size > 0 {
			s.messageBufferSize = size
		}
	}
}

// WithLogger attaches a structured logger for pipeline stage diagnostics.
// A nil logger is ignored (the no-op default logger is kept).
func WithLogger(logger *zap.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func resolveSettings(opts []Option) *settings {
	s := defaultSettings()
	for _, opt := range opts {
		opt(s)
	}
	return s
}
