// Package mock provides a test double for the speech.Engine interface.
//
// Use Engine to verify the text handed to the synthesiser and to inject
// errors into either phase of narration:
//
//	e := &mock.Engine{WaitErr: context.Canceled}
//	narrator.New(e, logger).ReadAloud(ctx, text)
package mock

import (
	"context"
	"sync"

	"github.com/larrygold18/datafun-01-utils/pkg/speech"
)

// SpeakCall records a single invocation of Speak.
type SpeakCall struct {
	// Ctx is the context passed to Speak.
	Ctx context.Context
	// Text is the text passed to Speak.
	Text string
}

// Engine is a mock implementation of speech.Engine.
type Engine struct {
	mu sync.Mutex

	// SpeakErr, if non-nil, is returned by Speak.
	SpeakErr error

	// WaitErr, if non-nil, is returned by Wait.
	WaitErr error

	// SpeakCalls records every call to Speak in order.
	SpeakCalls []SpeakCall

	// WaitCalls counts calls to Wait.
	WaitCalls int
}

// Speak records the call and returns SpeakErr.
func (e *Engine) Speak(ctx context.Context, text string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.SpeakCalls = append(e.SpeakCalls, SpeakCall{Ctx: ctx, Text: text})
	return e.SpeakErr
}

// Wait records the call and returns WaitErr.
func (e *Engine) Wait(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.WaitCalls++
	if e.WaitErr != nil {
		return e.WaitErr
	}
	return ctx.Err()
}

// Reset clears all recorded calls. Thread-safe.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.SpeakCalls = nil
	e.WaitCalls = 0
}

// Ensure Engine implements speech.Engine at compile time.
var _ speech.Engine = (*Engine)(nil)
