// SPDX-License-Identifier: GPL-2.0-only
// Source: thanhminhmr/srx src/codec/encoder.rs

package srx

import (
	"context"
	"io"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Encode consumes r to EOF and writes the compressed stream to w. See
// spec.md §4.8 for the four-stage pipeline this spawns.
func Encode(ctx context.Context, r io.Reader, w io.Writer, opts ...Option) error {
	s := resolveSettings(opts)

	readerOutput, readerInput := NewPipe[byte](s.ioBufferSize)
	messageOutput, messageInput := NewPipe[packedMessage](s.messageBufferSize)
	writerOutput, writerInput := NewPipe[byte](s.ioBufferSize)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return withStagePanicRecovery(func() error {
			return runFileReader(gctx, s.logger, r, readerOutput)
		})
	})
	g.Go(func() error {
		return withStagePanicRecovery(func() error {
			return runPrimaryContextEncoder(gctx, s.logger, readerInput, messageOutput)
		})
	})
	g.Go(func() error {
		return withStagePanicRecovery(func() error {
			return runSecondaryContextEncoder(gctx, s.logger, messageInput, writerOutput)
		})
	})
	g.Go(func() error {
		return withStagePanicRecovery(func() error {
			return runFileWriter(gctx, s.logger, writerInput, w)
		})
	})

	return g.Wait()
}

// runPrimaryContextEncoder pulls bytes one at a time, classifies each
// against the primary context, and emits 1-4 packed messages per byte to
// the secondary stage. On input EOF it emits the in-band end-of-stream
// marker (a NoMatch whose literal equals the current first-rank byte) and
// closes both ends.
func runPrimaryContextEncoder(ctx context.Context, logger *zap.Logger, input *PipeReader[byte], output *PipeWriter[packedMessage]) error {
	ctxModel := newPrimaryContext()
	var bytesIn int
	for {
		info := newBridgedContext(ctxModel.getInfo())

		current, ok, err := input.Produce()
		if err != nil {
			return err
		}
		if !ok {
			if err := output.Output(packBit(info.firstContext(), 1)); err != nil {
				return err
			}
			if err := output.Output(packBit(info.secondContext(), 0)); err != nil {
				return err
			}
			if err := output.Output(packByte(info.literalContextIndex(), info.firstByte())); err != nil {
				return err
			}
			if err := input.Close(); err != nil {
				return err
			}
			logger.Debug("primary encoder stage done", zap.Int("bytes", bytesIn))
			return output.Close()
		}

		bytesIn++
		switch ctxModel.matching(current) {
		case MatchFirst:
			if err := output.Output(packBit(info.firstContext(), 0)); err != nil {
				return err
			}
		case NoMatch:
			if err := output.Output(packBit(info.firstContext(), 1)); err != nil {
				return err
			}
			if err := output.Output(packBit(info.secondContext(), 0)); err != nil {
				return err
			}
			if err := output.Output(packByte(info.literalContextIndex(), current)); err != nil {
				return err
			}
		case MatchSecond:
			if err := output.Output(packBit(info.firstContext(), 1)); err != nil {
				return err
			}
			if err := output.Output(packBit(info.secondContext(), 1)); err != nil {
				return err
			}
			if err := output.Output(packBit(info.thirdContext(), 0)); err != nil {
				return err
			}
		case MatchThird:
			if err := output.Output(packBit(info.firstContext(), 1)); err != nil {
				return err
			}
			if err := output.Output(packBit(info.secondContext(), 1)); err != nil {
				return err
			}
			if err := output.Output(packBit(info.thirdContext(), 1)); err != nil {
				return err
			}
		}
	}
}

// secondaryContextEncoder pulls packed messages and drives the secondary
// context plus range encoder in lockstep, per spec.md §4.3's discipline.
type secondaryContextEncoder struct {
	context *secondaryContext
	coder   *rangeEncoder
}

func (e *secondaryContextEncoder) bit(index int, bit int) error {
	info := e.context.getInfo(index)
	e.context.update(info, index, bit)
	return e.coder.bit(info.prediction, bit)
}

// byte codes value as two 4-bit nibbles, each walked down a depth-4 binary
// context tree: node starts at the tree root (1) and after coding bit b
// becomes 2*node+b, so by the fourth bit node holds the nibble itself
// (biased by 16, keeping it clear of the 0 sentinel). See spec.md §4.6.
func (e *secondaryContextEncoder) byte(index int, value byte) error {
	high := (int(value) >> 4) | 16
	node := 1
	for shift := 3; shift >= 0; shift-- {
		bit := (high >> uint(shift)) & 1
		if err := e.bit(index+node, bit); err != nil {
			return err
		}
		node = node*2 + bit
	}

	lowContext := index + 15*(high-15)
	low := (int(value) & 15) | 16
	node = 1
	for shift := 3; shift >= 0; shift-- {
		bit := (low >> uint(shift)) & 1
		if err := e.bit(lowContext+node, bit); err != nil {
			return err
		}
		node = node*2 + bit
	}
	return nil
}

func runSecondaryContextEncoder(_ context.Context, logger *zap.Logger, input *PipeReader[packedMessage], output *PipeWriter[byte]) error {
	enc := &secondaryContextEncoder{
		context: newSecondaryContext(),
		coder:   newRangeEncoder(output),
	}
	var messages int
	for {
		msg, ok, err := input.Produce()
		if err != nil {
			return err
		}
		if !ok {
			if err := input.Close(); err != nil {
				return err
			}
			logger.Debug("secondary encoder stage done", zap.Int("messages", messages))
			return enc.coder.close()
		}
		messages++
		kind, idx, bit, value := msg.unpack()
		switch kind {
		case messageBit:
			if err := enc.bit(idx, bit); err != nil {
				return err
			}
		case messageByte:
			if err := enc.byte(idx, value); err != nil {
				return err
			}
		}
	}
}
