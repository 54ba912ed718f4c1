package say_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/larrygold18/datafun-01-utils/pkg/speech"
	"github.com/larrygold18/datafun-01-utils/pkg/speech/say"
)

func TestNew_MissingBinary(t *testing.T) {
	t.Parallel()

	_, err := say.New(say.WithBinary("definitely-not-a-speech-binary"))
	if !errors.Is(err, speech.ErrUnavailable) {
		t.Errorf("New err = %v, want ErrUnavailable", err)
	}
}

// fakeBinary writes an executable shell script that exits successfully,
// standing in for a real speech synthesiser.
func fakeBinary(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell-script fake binary requires a unix platform")
	}
	path := filepath.Join(t.TempDir(), "fakespeak")
	script := "#!/bin/sh\nexit 0\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write fake binary: %v", err)
	}
	return path
}

func TestSpeakAndWait(t *testing.T) {
	t.Parallel()

	e, err := say.New(say.WithBinary(fakeBinary(t)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx := context.Background()
	if err := e.Speak(ctx, "hello"); err != nil {
		t.Fatalf("Speak: %v", err)
	}
	if err := e.Wait(ctx); err != nil {
		t.Errorf("Wait = %v, want nil", err)
	}
}

func TestWait_WithoutSpeak(t *testing.T) {
	t.Parallel()

	e, err := say.New(say.WithBinary(fakeBinary(t)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := e.Wait(context.Background()); err == nil {
		t.Error("Wait without Speak should fail")
	}
}

func TestWait_Cancelled(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" {
		t.Skip("shell-script fake binary requires a unix platform")
	}

	// A binary that sleeps long enough for the cancellation to land first.
	path := filepath.Join(t.TempDir(), "slowspeak")
	script := "#!/bin/sh\nsleep 10\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write fake binary: %v", err)
	}

	e, err := say.New(say.WithBinary(path))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	if err := e.Speak(ctx, "long utterance"); err != nil {
		t.Fatalf("Speak: %v", err)
	}
	cancel()

	if err := e.Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Wait = %v, want context.Canceled", err)
	}
}
