// Copyright (c) The a0 Authors. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentzero/a0-core/cliout"
	"github.com/agentzero/a0-core/pathutil"
)

func newPlatformCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "platform",
		Short: "Show platform facts and optional capabilities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			facts := a.newDetector().Detect(cmd.Context())
			return cliout.Print(facts, func() {
				cliout.Header("Platform")
				cliout.Label("OS", fmt.Sprintf("%s/%s", facts.OS, facts.Arch))
				if facts.Host.Platform != "" {
					cliout.Label("Distribution", facts.Host.Platform+" "+facts.Host.PlatformVersion)
				}
				cliout.Label("Constrained", cliout.YesNo(facts.Constrained))
				cliout.Label("In container", cliout.YesNo(facts.InContainer))

				cliout.Header("Capabilities")
				cliout.Label("Container runtime", cliout.YesNo(facts.ContainerRuntime))
				cliout.Label("Playwright", cliout.YesNo(facts.Playwright))
				cliout.Label("browser-use", cliout.YesNo(facts.BrowserUse))
				cliout.Label("Vector search", cliout.YesNo(facts.VectorSearch))

				if facts.Constrained && !facts.Playwright {
					cliout.Hint(pathutil.GetInstallSuggestion("chromium", true))
				}
			})
		},
	}
}

func newToolsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tools",
		Short: "Work with agent tool names",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "filter NAME...",
		Short: "Print the tool names available on this platform",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			d := a.newDetector()
			kept := d.FilterTools(args)
			data := map[string][]string{"tools": kept, "excluded": d.ExcludedTools()}
			return cliout.Print(data, func() {
				for _, name := range kept {
					fmt.Fprintln(cliout.Output(), name)
				}
			})
		},
	})
	return cmd
}
