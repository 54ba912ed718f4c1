// Package speech defines the Engine interface for reading text aloud.
//
// An Engine wraps an external speech synthesiser. The core only ever needs
// two operations — start speaking and block until speech finishes — and must
// tolerate the capability being entirely absent: constructors report a
// missing synthesiser with [ErrUnavailable], and callers are expected to
// treat that as a degraded mode rather than a failure.
package speech

import (
	"context"
	"errors"
)

// ErrUnavailable indicates that no speech synthesiser exists in the current
// environment. Callers should log a warning and continue without narration.
var ErrUnavailable = errors.New("speech: no speech engine available")

// Engine is the abstraction over a speech synthesiser.
type Engine interface {
	// Speak starts reading text aloud and returns once playback has begun.
	// Cancelling ctx stops the synthesiser.
	Speak(ctx context.Context, text string) error

	// Wait blocks until the current utterance finishes. When ctx is
	// cancelled mid-utterance the synthesiser is stopped and ctx's error is
	// returned; callers treat that as normal termination of the narration.
	Wait(ctx context.Context) error
}
