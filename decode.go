// SPDX-License-Identifier: GPL-2.0-only
// Source: thanhminhmr/srx src/codec/decoder.rs

package srx

import (
	"context"
	"io"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Decode reads a compressed stream produced by Encode from r and writes the
// recovered bytes to w, stopping at the in-band end-of-stream marker. See
// spec.md §4.8 for the three-stage pipeline this spawns.
func Decode(ctx context.Context, r io.Reader, w io.Writer, opts ...Option) error {
	s := resolveSettings(opts)

	readerOutput, readerInput := NewPipe[byte](s.ioBufferSize)
	writerOutput, writerInput := NewPipe[byte](s.ioBufferSize)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return withStagePanicRecovery(func() error {
			return runFileReader(gctx, s.logger, r, readerOutput)
		})
	})
	g.Go(func() error {
		return withStagePanicRecovery(func() error {
			return runCombinedDecoder(gctx, s.logger, readerInput, writerOutput)
		})
	})
	g.Go(func() error {
		return withStagePanicRecovery(func() error {
			return runFileWriter(gctx, s.logger, writerInput, w)
		})
	})

	return g.Wait()
}

// decodeBit looks up the predictor at index, decodes one bit against it,
// then advances the predictor — the same get/use/update discipline the
// encoder follows, so both sides see identical predictions. See
// secondaryContext.update's doc comment.
func decodeBit(ctxModel *secondaryContext, dec *rangeDecoder, index int) (int, error) {
	info := ctxModel.getInfo(index)
	bit, err := dec.bit(info.prediction)
	if err != nil {
		return 0, err
	}
	ctxModel.update(info, index, bit)
	return bit, nil
}

// decodeByte is the inverse of secondaryContextEncoder.byte: it walks the
// same two depth-4 context trees, recovering a nibble as the tree node
// reaches the fourth level.
func decodeByte(ctxModel *secondaryContext, dec *rangeDecoder, index int) (byte, error) {
	node := 1
	for i := 0; i < 4; i++ {
		bit, err := decodeBit(ctxModel, dec, index+node)
		if err != nil {
			return 0, err
		}
		node = node*2 + bit
	}
	high := node

	lowContext := index + 15*(high-15)
	node = 1
	for i := 0; i < 4; i++ {
		bit, err := decodeBit(ctxModel, dec, lowContext+node)
		if err != nil {
			return 0, err
		}
		node = node*2 + bit
	}
	low := node

	return byte((high-16)<<4 | (low - 16)), nil
}

// runCombinedDecoder fuses what Encode splits across two stages: there is
// no pipe between the primary and secondary context here because decoding
// a bit requires the secondary context's verdict before the primary
// context can be advanced, which in turn determines the next bit's
// context — the two models are inherently sequential on the decode side.
func runCombinedDecoder(ctx context.Context, logger *zap.Logger, input *PipeReader[byte], output *PipeWriter[byte]) error {
	primary := newPrimaryContext()
	secondary := newSecondaryContext()

	dec, err := newRangeDecoder(input)
	if err != nil {
		return err
	}

	var bytesOut int
	for {
		if err := ctx.Err(); err != nil {
			return multierr.Combine(err, dec.close(), output.Close())
		}

		info := newBridgedContext(primary.getInfo())

		firstBit, err := decodeBit(secondary, dec, info.firstContext())
		if err != nil {
			return err
		}
		if firstBit == 0 {
			b := info.firstByte()
			primary.matched(b, MatchFirst)
			if err := output.Output(b); err != nil {
				return err
			}
			bytesOut++
			continue
		}

		secondBit, err := decodeBit(secondary, dec, info.secondContext())
		if err != nil {
			return err
		}
		if secondBit == 0 {
			value, err := decodeByte(secondary, dec, info.literalContextIndex())
			if err != nil {
				return err
			}
			if value == info.firstByte() {
				if err := dec.close(); err != nil {
					return err
				}
				logger.Debug("combined decoder stage done", zap.Int("bytes", bytesOut))
				return output.Close()
			}
			primary.matched(value, NoMatch)
			if err := output.Output(value); err != nil {
				return err
			}
			bytesOut++
			continue
		}

		thirdBit, err := decodeBit(secondary, dec, info.thirdContext())
		if err != nil {
			return err
		}
		if thirdBit == 0 {
			b := info.secondByte()
			primary.matched(b, MatchSecond)
			if err := output.Output(b); err != nil {
				return err
			}
		} else {
			b := info.thirdByte()
			primary.matched(b, MatchThird)
			if err := output.Output(b); err != nil {
				return err
			}
		}
		bytesOut++
	}
}
