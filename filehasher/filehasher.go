package filehasher

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/byte4ever/file_hasher/digester"
	"github.com/byte4ever/file_hasher/protocol"
)

// ErrUnknownMethod indicates a request for a method other
// than calculateHash.
var ErrUnknownMethod = errors.New("unknown method")

// Config holds the settings of one Serve call.
type Config struct {
	// In supplies the request line. Defaults to os.Stdin.
	In io.Reader

	// Out receives the event lines. Defaults to os.Stdout.
	Out io.Writer

	// ChunkSize is the file read buffer size in bytes.
	// Zero selects digester.DefaultChunkSize.
	ChunkSize int

	// Logger receives diagnostics. Defaults to
	// slog.Default().
	Logger *slog.Logger
}

func (cfg Config) withDefaults() Config {
	if cfg.In == nil {
		cfg.In = os.Stdin
	}

	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}

	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = digester.DefaultChunkSize
	}

	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return cfg
}

// Serve handles exactly one request. Every request failure is
// reported as an error event; the returned error is non-nil
// only when the events could not be written.
func Serve(cfg Config) error {
	const errCtx = "serving request"

	cfg = cfg.withDefaults()
	em := protocol.NewEmitter(cfg.Out)

	digest, err := handle(cfg, em)
	if err != nil {
		cfg.Logger.Warn("request failed", "error", err)
		em.Error(errorMessage(err))
	} else {
		cfg.Logger.Info("digest computed", "digest", digest)
		em.Result(digest)
	}

	if err := em.Err(); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

// handle runs the request and returns the hex digest.
func handle(cfg Config, em *protocol.Emitter) (string, error) {
	req, err := protocol.ReadRequest(cfg.In)
	if err != nil {
		return "", err //nolint:wrapcheck // already classified
	}

	cfg.Logger.Info(
		"request received",
		"method", req.Method,
		"path", req.Params.Path,
		"algorithm", req.Params.Algorithm,
	)

	if req.Method != protocol.MethodCalculateHash {
		return "", fmt.Errorf("%w: %s", ErrUnknownMethod, req.Method)
	}

	al, err := digester.ParseAlgorithm(req.Params.Algorithm)
	if err != nil {
		return "", hashError{err}
	}

	digest, err := digester.Calculate(
		req.Params.Path,
		al,
		digester.WithChunkSize(cfg.ChunkSize),
		digester.WithProgress(func(pc int) {
			em.Progress(pc, protocol.ProgressText(pc, al.String()))
		}),
	)
	if err != nil {
		return "", hashError{err}
	}

	return digest, nil
}

// hashError marks failures of the digest computation itself.
type hashError struct {
	err error
}

func (he hashError) Error() string {
	return he.err.Error()
}

func (he hashError) Unwrap() error {
	return he.err
}

// errorMessage renders err as the message of the terminal
// error event. Request-level errors already carry their wire
// text; digest failures are prefixed and reduced to the
// underlying I/O diagnostic.
func errorMessage(err error) string {
	var he hashError
	if !errors.As(err, &he) {
		return err.Error()
	}

	cause := he.err

	var pe *fs.PathError
	if errors.As(cause, &pe) {
		cause = pe
	}

	return "failed to calculate hash: " + cause.Error()
}
