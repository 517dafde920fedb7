// Copyright (c) The a0 Authors. All rights reserved.
// Licensed under the MIT License.

// Package platform answers two questions about the host: is this a
// constrained mobile terminal environment (Android/Termux), and which
// optional capabilities can a0 use here.
//
// # Constrained Platform Detection
//
// The host is constrained when any of the following holds:
//   - /data/data/com.termux exists
//   - TERMUX_VERSION is present in the environment (even if empty)
//   - PREFIX contains "com.termux"
//
// # Capability Probes
//
// Each optional dependency has a probe that returns a plain boolean:
//
//   - Container runtime: the Docker client, configured from DOCKER_HOST and
//     the DOCKER_TLS_VERIFY/DOCKER_CERT_PATH settings, pings the daemon.
//     Never probed when constrained.
//   - Playwright: the playwright CLI is installed, or the playwright-go
//     driver is installed and runs. Never probed when constrained.
//   - browser-use: the browser-use executable is on PATH or in a common bin
//     dir such as the Termux prefix. Never probed when constrained.
//   - Vector search: the FAISS shared library is on the library search
//     path. Probed on every platform.
//
// Probes never fail loudly. Errors and panics inside a probe are converted
// to false and logged at debug level.
//
// # Statelessness
//
// Nothing is cached. Every call re-reads the environment and filesystem, so
// the package-level helpers may be called at any time:
//
//	if platform.IsConstrained() {
//	    fmt.Println("running under Termux")
//	}
//	tools := platform.FilterTools([]string{"code_execution", "browser_agent"})
//
// Tests construct a Detector with fake LookupEnv, Stat, and Probes.
package platform
