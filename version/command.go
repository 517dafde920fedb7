// Copyright (c) The a0 Authors. All rights reserved.
// Licensed under the MIT License.

package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentzero/a0-core/cliout"
)

// NewCommand creates the version command. The global --output flag
// selects JSON through cliout.
func NewCommand(info *Info) *cobra.Command {
	var quiet bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: fmt.Sprintf("Display %s version information", info.Name),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if quiet && !cliout.IsJSON() {
				fmt.Fprintln(cliout.Output(), info.Version)
				return nil
			}
			return cliout.Print(info, func() {
				cliout.Header(fmt.Sprintf("%s Version", info.Name))
				cliout.Label("Version", info.Version)
				cliout.Label("Build Date", info.BuildDate)
				cliout.Label("Git Commit", info.GitCommit)
				cliout.Label("Go", info.GoVersion)
				cliout.Label("Platform", info.Platform)
			})
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only print version number")
	return cmd
}
