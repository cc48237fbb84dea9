package digester

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
)

// DefaultChunkSize is the read buffer size used when none is
// configured.
const DefaultChunkSize = 8192

// options holds the tunables of a Calculate call.
type options struct {
	chunkSize int
	step      int
	progress  ProgressFunc
}

// Option configures Calculate.
type Option func(*options)

// WithChunkSize sets the read buffer size. Values below 1
// keep the default.
func WithChunkSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.chunkSize = n
		}
	}
}

// WithStep sets the minimum percentage advance between
// streaming progress reports. Values below 1 keep the default.
func WithStep(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.step = n
		}
	}
}

// WithProgress registers a progress callback.
func WithProgress(fn ProgressFunc) Option {
	return func(o *options) {
		o.progress = fn
	}
}

// Calculate computes the lowercase hex digest of the file at
// path using al. Progress is reported once the file is open:
// 0 first, then every step points below 100, then 100 after
// the last byte. Nothing is reported if the file cannot be
// opened.
func Calculate(
	path string,
	al Algorithm,
	opts ...Option,
) (result string, retErr error) {
	const errCtx = "calculating digest"

	op := options{
		chunkSize: DefaultChunkSize,
		step:      DefaultStep,
		progress:  func(int) {},
	}

	for _, opt := range opts {
		opt(&op)
	}

	if _, ok := algorithms[al]; !ok {
		return "", fmt.Errorf(
			"%w: %s", ErrUnsupportedAlgorithm, string(al),
		)
	}

	fi, err := os.Open(path) //nolint:gosec // path is caller-provided by design
	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	defer func() {
		if closeErr := fi.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("%s: %w", errCtx, closeErr)
		}
	}()

	var size int64
	if st, err := fi.Stat(); err == nil {
		size = st.Size()
	}

	op.progress(0)

	ha := al.New()
	pt := progressTracker{
		size:   size,
		step:   op.step,
		report: op.progress,
	}

	buf := make([]byte, op.chunkSize)

	var consumed int64

	for {
		n, err := fi.Read(buf)
		if n > 0 {
			ha.Write(buf[:n]) //nolint:errcheck // hash.Hash never fails
			consumed += int64(n)
			pt.advance(consumed)
		}

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return "", fmt.Errorf("%s: %w", errCtx, err)
		}
	}

	op.progress(100)

	return hex.EncodeToString(ha.Sum(nil)), nil
}
