// Copyright (c) The a0 Authors. All rights reserved.
// Licensed under the MIT License.

// Package config loads a0 settings from an optional YAML file and the
// environment.
//
// Precedence, lowest to highest: built-in defaults, the YAML file named by
// --config or A0_CONFIG, then individual A0_* environment variables.
//
// # Example File
//
//	baseDir: /srv/agent-zero
//	log:
//	  debug: false
//	  format: json
//	browser:
//	  cacheDir: tmp/playwright
//	  installer: driver
//	  installTimeout: 10m
//	mcp:
//	  rateLimit: 5
//	  burst: 10
//
// # Environment Variables
//
//   - A0_CONFIG: path to the YAML file
//   - A0_BASE_DIR: application base directory
//   - A0_DEBUG: "true" enables debug logging
//   - A0_LOG_FORMAT: "text" or "json"
//   - A0_BROWSER_INSTALLER: "cli" or "driver"
//   - A0_INSTALL_TIMEOUT: Go duration such as "10m"; "0" disables the bound
package config
