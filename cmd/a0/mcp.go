// Copyright (c) The a0 Authors. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/agentzero/a0-core/cliout"
	"github.com/agentzero/a0-core/logutil"
	"github.com/agentzero/a0-core/mcptools"
	"github.com/agentzero/a0-core/version"
)

func newMCPCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the a0 tools over MCP on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// stdout carries JSON-RPC only.
			cliout.SetOutput(os.Stderr)
			logutil.SetOutput(os.Stderr)

			s := mcptools.NewServer(mcptools.Options{
				Name:      "a0",
				Version:   version.Version,
				Detector:  a.newDetector(),
				Resolver:  a.newResolver(a.cfg),
				RateLimit: a.cfg.MCP.RateLimit,
				Burst:     a.cfg.MCP.Burst,
			})
			return s.ServeStdio(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}
