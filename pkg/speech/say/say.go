// Package say provides a speech.Engine backed by the local speech binary:
// espeak-ng or espeak on Linux, say on macOS. The constructor probes the PATH
// and reports speech.ErrUnavailable when none of them exists, so callers can
// degrade to silent operation.
package say

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/larrygold18/datafun-01-utils/pkg/speech"
)

// Compile-time interface assertion.
var _ speech.Engine = (*Engine)(nil)

// candidates are the binaries probed in order by [New].
var candidates = []string{"espeak-ng", "espeak", "say"}

// defaultRate is the speaking rate in words per minute. Zero means the
// binary's own default.
const defaultRate = 0

// Engine shells out to a local speech binary. One utterance at a time;
// a second Speak before Wait replaces the tracked process.
type Engine struct {
	binary string
	rate   int

	mu  sync.Mutex
	cmd *exec.Cmd
}

// Option configures an [Engine].
type Option func(*Engine)

// WithBinary forces a specific binary instead of probing the candidates.
func WithBinary(path string) Option {
	return func(e *Engine) { e.binary = path }
}

// WithRate sets the speaking rate in words per minute.
func WithRate(wpm int) Option {
	return func(e *Engine) { e.rate = wpm }
}

// New locates a speech binary and returns an [Engine] using it.
// Returns an error wrapping [speech.ErrUnavailable] when no binary is found.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{rate: defaultRate}
	for _, opt := range opts {
		opt(e)
	}

	if e.binary != "" {
		path, err := exec.LookPath(e.binary)
		if err != nil {
			return nil, fmt.Errorf("%w: %q not found in PATH", speech.ErrUnavailable, e.binary)
		}
		e.binary = path
		return e, nil
	}

	for _, name := range candidates {
		if path, err := exec.LookPath(name); err == nil {
			e.binary = path
			return e, nil
		}
	}
	return nil, fmt.Errorf("%w: tried %v", speech.ErrUnavailable, candidates)
}

// Speak launches the speech binary with text as its utterance. Playback runs
// in the background; use [Engine.Wait] to block until it finishes.
func (e *Engine) Speak(ctx context.Context, text string) error {
	cmd := exec.CommandContext(ctx, e.binary, e.args(text)...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("say: start %s: %w", filepath.Base(e.binary), err)
	}

	e.mu.Lock()
	e.cmd = cmd
	e.mu.Unlock()
	return nil
}

// Wait blocks until the utterance started by [Engine.Speak] finishes.
// When ctx is cancelled the process is killed by exec.CommandContext and
// ctx's error is returned instead of the kill signal's.
func (e *Engine) Wait(ctx context.Context) error {
	e.mu.Lock()
	cmd := e.cmd
	e.cmd = nil
	e.mu.Unlock()

	if cmd == nil {
		return errors.New("say: nothing is being spoken")
	}

	err := cmd.Wait()
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		return fmt.Errorf("say: %s: %w", filepath.Base(e.binary), err)
	}
	return nil
}

// args builds the argument list for the configured binary. espeak and
// espeak-ng take the rate as -s, macOS say takes it as -r.
func (e *Engine) args(text string) []string {
	var args []string
	if e.rate > 0 {
		flag := "-s"
		if filepath.Base(e.binary) == "say" {
			flag = "-r"
		}
		args = append(args, flag, strconv.Itoa(e.rate))
	}
	return append(args, text)
}
