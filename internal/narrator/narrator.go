// Package narrator reads the project header aloud on a best-effort basis.
//
// Narration is an optional side effect: a missing engine, a synthesiser
// error, or a user interrupt all end the narration quietly with at most a
// log line. Nothing in this package returns an error to the caller.
package narrator

import (
	"context"
	"errors"
	"log/slog"

	"github.com/larrygold18/datafun-01-utils/pkg/speech"
)

// Narrator speaks text through an optional [speech.Engine].
type Narrator struct {
	engine speech.Engine
	log    *slog.Logger
}

// New creates a Narrator. engine may be nil, in which case every readout is
// skipped with a warning. A nil log uses the slog default.
func New(engine speech.Engine, log *slog.Logger) *Narrator {
	if log == nil {
		log = slog.Default()
	}
	return &Narrator{engine: engine, log: log}
}

// ReadAloud speaks text and blocks until the narration finishes, is
// interrupted, or fails. Failures never propagate:
//   - no engine: one warning, immediate return;
//   - engine error in either phase: one warning, return;
//   - ctx cancelled (user interrupt): one info line, return.
func (n *Narrator) ReadAloud(ctx context.Context, text string) {
	if n.engine == nil {
		n.log.Warn("no speech engine available; skipping narration")
		return
	}

	if err := n.engine.Speak(ctx, text); err != nil {
		n.log.Warn("narration unavailable", "err", err)
		return
	}

	switch err := n.engine.Wait(ctx); {
	case err == nil:
		n.log.Info("narration finished")
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		n.log.Info("narration interrupted")
	default:
		n.log.Warn("narration failed", "err", err)
	}
}
