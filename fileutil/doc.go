// Copyright (c) The a0 Authors. All rights reserved.
// Licensed under the MIT License.

// Package fileutil provides small filesystem predicates used when looking
// for installed browser binaries and capability markers.
//
// # Key Features
//
//   - Existence and executable checks that never return errors
//   - First-match glob lookup under a root directory
//   - Directory creation with consistent permissions
//
// # Example Usage
//
//	if path, ok := fileutil.FirstGlobMatch(cacheDir, "chromium-*/chrome-linux/chrome"); ok {
//	    fmt.Println("found", path)
//	}
//
// Glob order is the lexical order returned by filepath.Glob; callers that
// need "first match" semantics take the first element and nothing more.
package fileutil
