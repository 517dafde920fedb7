// Copyright (c) The a0 Authors. All rights reserved.
// Licensed under the MIT License.

// Package cmdutil runs external commands for a0: installer invocations and
// capability probes. Commands inherit the process environment plus explicit
// overrides, and their standard streams are discarded unless a line handler
// asks for them.
//
// The package-level runner can be swapped for tests:
//
//	prev := cmdutil.SetDefaultRunner(fake)
//	defer cmdutil.SetDefaultRunner(prev)
package cmdutil
