// Copyright (c) The a0 Authors. All rights reserved.
// Licensed under the MIT License.

// Package cliout provides human-readable progress, warning, and hint output
// for a0 commands, plus a JSON mode for machine consumers.
//
// Messages are prefixed with Unicode symbols and colored with ANSI escapes
// when the destination is a terminal. Results and messages go to stdout by
// default. SetOutput redirects both, which the MCP server uses to keep stdout
// reserved for the protocol stream. SetMessageOutput moves only the messages,
// which JSON mode uses so stdout carries nothing but the document.
//
// # Example Usage
//
//	cliout.Hint("Installing Playwright browser binaries...")
//	cliout.Warning("Failed to install Playwright headless shell: %v", err)
//	cliout.Success("Chromium ready at %s", path)
//
// JSON mode:
//
//	if err := cliout.SetFormat("json"); err != nil {
//	    return err
//	}
//	return cliout.Print(facts, func() { cliout.Label("Constrained", "no") })
//
// Messages are informational only. They are not a stable, parseable contract.
package cliout
