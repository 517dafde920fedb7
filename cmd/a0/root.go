// Copyright (c) The a0 Authors. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentzero/a0-core/browser"
	"github.com/agentzero/a0-core/cliout"
	"github.com/agentzero/a0-core/config"
	"github.com/agentzero/a0-core/logutil"
	"github.com/agentzero/a0-core/notify"
	"github.com/agentzero/a0-core/platform"
	"github.com/agentzero/a0-core/version"
)

// app carries global flags, the loaded config, and the constructors the
// commands use. Tests replace the constructors.
type app struct {
	configPath string
	debug      bool
	logFormat  string
	output     string

	cfg config.Config

	newDetector func() *platform.Detector
	newResolver func(cfg config.Config) *browser.Resolver
	newNotifier func(cfg notify.Config) notify.Notifier
}

func newApp() *app {
	return &app{
		newDetector: platform.NewDetector,
		newResolver: browser.FromConfig,
		newNotifier: notify.New,
	}
}

func newRootCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "a0",
		Short:         "Platform detection and headless browser resolution for agents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Path to a YAML config file (default $"+config.EnvConfig+")")
	flags.BoolVar(&a.debug, "debug", false, "Enable debug logging")
	flags.StringVar(&a.logFormat, "log-format", "", "Log format: text or json")
	flags.StringVarP(&a.output, "output", "o", "default", "Output format: default or json")

	cmd.AddCommand(
		newPlatformCommand(a),
		newToolsCommand(a),
		newBrowserCommand(a),
		newMCPCommand(a),
		version.NewCommand(version.New("a0")),
	)
	return cmd
}

// setup loads configuration and applies flags on top of it.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.debug {
		cfg.Log.Debug = true
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Log.Format = a.logFormat
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg

	logutil.Setup(cfg.Log.Debug, cfg.StructuredLogs())
	if err := cliout.SetFormat(a.output); err != nil {
		return fmt.Errorf("invalid --output: %w", err)
	}
	if cliout.IsJSON() {
		// stdout carries only the JSON document.
		cliout.SetMessageOutput(cmd.ErrOrStderr())
	}
	return nil
}
