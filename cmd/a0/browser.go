// Copyright (c) The a0 Authors. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/agentzero/a0-core/browser"
	"github.com/agentzero/a0-core/cliout"
	"github.com/agentzero/a0-core/config"
	"github.com/agentzero/a0-core/logutil"
	"github.com/agentzero/a0-core/notify"
)

var log = logutil.NewLogger("cli")

func newBrowserCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browser",
		Short: "Locate or install the headless Chromium binary",
	}
	cmd.AddCommand(newBrowserLocateCommand(a), newBrowserEnsureCommand(a))
	return cmd
}

func newBrowserLocateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "locate",
		Short: "Print the browser binary path without installing",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			r := a.newResolver(a.cfg)
			path, ok := r.Locate()
			if !ok {
				return fmt.Errorf("no browser binary found in %s", r.CacheDir())
			}
			return cliout.Print(map[string]string{"path": path}, func() {
				fmt.Fprintln(cliout.Output(), path)
			})
		},
	}
}

func newBrowserEnsureCommand(a *app) *cobra.Command {
	var (
		installer string
		timeout   time.Duration
		notifyMe  bool
	)

	cmd := &cobra.Command{
		Use:   "ensure",
		Short: "Print the browser binary path, installing it if missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg
			if cmd.Flags().Changed("installer") {
				cfg.Browser.Installer = installer
			}
			if cmd.Flags().Changed("timeout") {
				cfg.Browser.InstallTimeout = timeout
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			r := a.newResolver(cfg)
			res, err := r.Resolve(cmd.Context())
			if notifyMe {
				a.notifyResult(cmd, res, err)
			}
			if err != nil {
				return err
			}
			return cliout.Print(res, func() {
				fmt.Fprintln(cliout.Output(), res.Path)
			})
		},
	}

	cmd.Flags().StringVar(&installer, "installer", config.InstallerCLI, "Installer: cli (playwright command) or driver (playwright-go driver)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Bound each install attempt (0 = no bound)")
	cmd.Flags().BoolVar(&notifyMe, "notify", false, "Send an OS notification when done")
	return cmd
}

// notifyResult reports the outcome of ensure. Delivery failures are logged.
func (a *app) notifyResult(cmd *cobra.Command, res browser.Result, err error) {
	n := notify.Notification{Title: "Browser ready", Message: res.Path, Severity: notify.SeverityInfo}
	if err != nil {
		n = notify.Notification{Title: "Browser install failed", Message: err.Error(), Severity: notify.SeverityCritical}
		var installErr *browser.InstallationError
		if errors.As(err, &installErr) && installErr.Hint != "" {
			n.Message = installErr.Hint
		}
	}

	nc := notify.DefaultConfig()
	nc.Constrained = a.newDetector().IsConstrained()
	if sendErr := a.newNotifier(nc).Send(cmd.Context(), n); sendErr != nil {
		log.Debug("notification not delivered", "error", sendErr)
	}
}
