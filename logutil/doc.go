// Copyright (c) The a0 Authors. All rights reserved.
// Licensed under the MIT License.

// Package logutil provides a structured logging abstraction built on top of slog.
//
// # Basic Usage
//
//	// Initialize logging (typically in main.go)
//	logutil.Setup(debug, structured)
//
//	logutil.Debug("probing capability", "probe", "docker")
//	logutil.Warn("install attempt failed", "package", "chromium-headless-shell", "error", err)
//
// Component-scoped loggers carry a "component" attribute on every record:
//
//	log := logutil.NewLogger("browser").WithOperation("ensure")
//	log.Info("binary located", "path", path)
//
// # Debug Mode
//
// Debug logging can be enabled in two ways:
//   - Pass debug=true to Setup
//   - Set A0_DEBUG=true environment variable
//
// # Structured Logging
//
// When structured=true is passed to Setup, logs are output as JSON:
//
//	{"time":"2026-01-15T10:30:00Z","level":"INFO","msg":"binary located","component":"browser"}
//
// Otherwise, logs use the human-readable slog text format.
package logutil
