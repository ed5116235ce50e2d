// SPDX-License-Identifier: GPL-2.0-only
// Source: thanhminhmr/srx src/codec/shared.rs

package srx

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// runFileReader bulk-fills output from r until r is exhausted, then closes
// output. Checked against ctx between reads so a sibling stage's failure
// can stop this one promptly instead of only via pipe breakage.
func runFileReader(ctx context.Context, logger *zap.Logger, r io.Reader, output *PipeWriter[byte]) error {
	var total int
	for {
		if err := ctx.Err(); err != nil {
			return multierr.Append(err, output.Close())
		}
		n, err := ReceiveFrom(output, r)
		if err != nil {
			return err
		}
		total += n
		if n == 0 {
			break
		}
	}
	logger.Debug("reader stage done", zap.Int("bytes", total))
	return output.Close()
}

// runFileWriter drains input into w until input is exhausted, then closes
// input.
func runFileWriter(ctx context.Context, logger *zap.Logger, input *PipeReader[byte], w io.Writer) error {
	var total int
	for {
		if err := ctx.Err(); err != nil {
			return multierr.Append(err, input.Close())
		}
		n, err := TransferTo(input, w)
		if err != nil {
			return err
		}
		total += n
		if n == 0 {
			break
		}
	}
	logger.Debug("writer stage done", zap.Int("bytes", total))
	return input.Close()
}

// withStagePanicRecovery converts a recovered panic in a pipeline stage
// into an ErrGoroutinePanic, so a programming error in one goroutine
// surfaces as a normal error to errgroup.Wait() instead of crashing the
// process.
func withStagePanicRecovery(stage func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrGoroutinePanic, r)
		}
	}()
	return stage()
}
