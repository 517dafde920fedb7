// Copyright (c) The a0 Authors. All rights reserved.
// Licensed under the MIT License.

// Package mcptools exposes platform detection and browser resolution to
// agents as Model Context Protocol tools:
//
//   - platform_facts: every platform fact as JSON
//   - filter_tools: the given tool names minus those excluded here
//   - locate_browser: the browser binary, without installing
//   - ensure_browser: the browser binary, installing it if needed
//
// Every call passes a token bucket rate limiter. Serve the tools on stdio
// with Server.ServeStdio.
package mcptools
