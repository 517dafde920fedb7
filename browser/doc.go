// Copyright (c) The a0 Authors. All rights reserved.
// Licensed under the MIT License.

// Package browser locates, and when necessary installs, the headless
// Chromium binary used for browser automation.
//
// # Locating
//
// Locate searches the browser cache directory (tmp/playwright under the
// base directory by default) and returns the first match of:
//
//  1. chromium_headless_shell-*/chrome-*/headless_shell
//  2. chromium-*/chrome-linux/chrome
//  3. the system Chromium (/data/data/com.termux/files/usr/bin/chromium),
//     only on a constrained platform and only if it is executable
//
// # Ensuring
//
// Ensure returns the located binary or installs one with the configured
// Installer, pointing PLAYWRIGHT_BROWSERS_PATH at the cache directory:
//
//	CheckExisting  -> found: done
//	InstallMinimal -> playwright install chromium --only-shell
//	InstallFull    -> playwright install chromium, if the minimal install failed
//	SystemFallback -> system Chromium on a constrained platform, if both failed
//	ReVerify       -> Locate again after a successful install
//
// Progress and warnings are written with cliout. Installer output is
// discarded. When nothing works Ensure returns an *InstallationError that
// matches ErrInstallation:
//
//	path, err := browser.Ensure(ctx)
//	if errors.Is(err, browser.ErrInstallation) {
//	    cliout.Error("%v", err)
//	}
//
// # Installers
//
// CLIInstaller runs the playwright executable. DriverInstaller runs the
// Node.js driver bundled with playwright-go, downloading it on first use.
//
// Nothing is cached between calls and concurrent Ensure calls are not
// serialized.
package browser
