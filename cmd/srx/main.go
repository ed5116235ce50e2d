// SPDX-License-Identifier: GPL-2.0-only
// Source: calvinalkan-agent-task cmd/mddb/main.go (CLI shape), srx package (codec)

// Command srx compresses and decompresses files with the srx codec.
//
// Usage:
//
//	srx encode <input> <output>
//	srx decode <input> <output>
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/srxgo/srx"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "srx: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) != 3 {
		return errors.New(usage())
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	switch args[0] {
	case "encode":
		return runCodec(logger, args[1], args[2], srx.Encode)
	case "decode":
		return runCodec(logger, args[1], args[2], srx.Decode)
	case "help", "-h", "--help":
		fmt.Println(usage())
		return nil
	default:
		return fmt.Errorf("unknown command: %s\n%s", args[0], usage())
	}
}

type codecFunc func(ctx context.Context, r io.Reader, w io.Writer, opts ...srx.Option) error

func runCodec(logger *zap.Logger, inPath, outPath string, codec codecFunc) error {
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := codec(context.Background(), in, out, srx.WithLogger(logger)); err != nil {
		return err
	}
	return out.Close()
}

func usage() string {
	return `srx: symbol-ranking compressor

Commands:
  encode <input> <output>   Compress input to output
  decode <input> <output>   Decompress input to output
`
}
