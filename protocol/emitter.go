package protocol

import (
	"fmt"
	"io"
	"log/slog"

	json "github.com/goccy/go-json"
)

// Emitter writes events to an output stream, one compact JSON
// object per line. Each event is written with a single Write
// call so a reader sees it as soon as it is produced.
//
// The first write error is kept and returned by Err; later
// emits are dropped. Events emitted after a terminal event
// are dropped as well.
type Emitter struct {
	out      io.Writer
	err      error
	terminal bool
}

// NewEmitter returns an Emitter writing to out.
func NewEmitter(out io.Writer) *Emitter {
	return &Emitter{out: out}
}

// Emit writes ev as one line.
func (em *Emitter) Emit(ev Event) {
	const errCtx = "emitting event"

	if em.err != nil {
		return
	}

	if em.terminal {
		slog.Warn(
			"dropping event after terminal event",
			"type", ev.Type,
		)

		return
	}

	by, err := json.MarshalWithOption(&ev, json.DisableHTMLEscape())
	if err != nil {
		em.err = fmt.Errorf("%s: marshal: %w", errCtx, err)

		return
	}

	by = append(by, '\n')

	if _, err := em.out.Write(by); err != nil {
		em.err = fmt.Errorf("%s: write: %w", errCtx, err)

		return
	}

	em.terminal = ev.IsTerminal()
}

// Progress emits a progress event.
func (em *Emitter) Progress(percent int, message string) {
	em.Emit(ProgressEvent(percent, message))
}

// Result emits the terminal result event.
func (em *Emitter) Result(digest string) {
	em.Emit(ResultEvent(digest))
}

// Error emits the terminal error event.
func (em *Emitter) Error(message string) {
	em.Emit(ErrorEvent(message))
}

// Terminal reports whether a terminal event has been written.
func (em *Emitter) Terminal() bool {
	return em.terminal
}

// Err returns the first error encountered while writing.
func (em *Emitter) Err() error {
	return em.err
}
