// Command datafun-utils prints the project header for the compiled-in
// profile and, when a local speech synthesiser exists, reads it aloud.
// It takes no flags or arguments and exits 0 on normal completion.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/larrygold18/datafun-01-utils/internal/header"
	"github.com/larrygold18/datafun-01-utils/internal/logging"
	"github.com/larrygold18/datafun-01-utils/internal/narrator"
	"github.com/larrygold18/datafun-01-utils/internal/profile"
	"github.com/larrygold18/datafun-01-utils/pkg/speech"
	"github.com/larrygold18/datafun-01-utils/pkg/speech/say"
)

func main() {
	os.Exit(run())
}

func run() int {
	logger := logging.Setup(logging.Options{})
	logger.Info("starting")

	p := profile.Default()

	// The self-check composes the block itself, so it also catches malformed
	// static data before the accessors are touched.
	if err := header.SelfCheck(p); err != nil {
		logger.Error("self-check failed", "err", err)
		return 1
	}
	logger.Info("self-check passed")

	block := header.Byline()
	logger.Info("byline composed", "organization", p.Organization, "author", p.Author)
	fmt.Println(block)

	// Ctrl+C during narration stops the synthesiser and is treated as a
	// normal end of the readout, not a failure.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var engine speech.Engine
	if e, err := say.New(); err != nil {
		logger.Warn("speech engine unavailable; narration skipped", "err", err)
	} else {
		engine = e
	}
	if engine != nil {
		narrator.New(engine, logger).ReadAloud(ctx, block)
	}

	logger.Info("done")
	return 0
}
