// Copyright (c) The a0 Authors. All rights reserved.
// Licensed under the MIT License.

// Command a0 reports platform facts, resolves the headless browser, and
// serves both as MCP tools.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/agentzero/a0-core/browser"
	"github.com/agentzero/a0-core/cliout"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCommand(newApp()).ExecuteContext(ctx)
	stop()

	if err != nil {
		reportError(err)
		os.Exit(1)
	}
}

// reportError prints err, splitting an installation failure into its
// message and optional hint.
func reportError(err error) {
	var installErr *browser.InstallationError
	if !errors.As(err, &installErr) {
		cliout.Error("%v", err)
		return
	}
	cliout.Error("%s", installErr.Message)
	if installErr.Hint != "" {
		cliout.Hint(installErr.Hint)
	}
}
