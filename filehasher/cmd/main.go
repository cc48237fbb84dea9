// Command filehasher reads one calculateHash request from
// stdin and writes progress, result and error events to
// stdout as JSON lines. Diagnostics go to stderr.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/byte4ever/file_hasher/digester"
	"github.com/byte4ever/file_hasher/filehasher"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	const errCtx = "running filehasher"

	chunkSize := flag.Int(
		"chunk_size", digester.DefaultChunkSize,
		"file read buffer size in bytes",
	)
	logLevel := flag.String(
		"log_level", "warn",
		"stderr log level: debug, info, warn or error",
	)

	flag.Parse()

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(*logLevel)); err != nil {
		return fmt.Errorf("%s: log level: %w", errCtx, err)
	}

	logger := slog.New(slog.NewTextHandler(
		os.Stderr, &slog.HandlerOptions{Level: lvl},
	))
	slog.SetDefault(logger)

	if err := filehasher.Serve(filehasher.Config{
		In:        os.Stdin,
		Out:       os.Stdout,
		ChunkSize: *chunkSize,
		Logger:    logger,
	}); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}
