// Copyright (c) The a0 Authors. All rights reserved.
// Licensed under the MIT License.

// Package pathutil resolves application paths and locates tools.
//
// The application base directory anchors every relative path a0 uses, such
// as the browser cache under tmp/playwright. It comes from A0_BASE_DIR when
// set and falls back to the working directory.
//
// # Example Usage
//
//	cache := pathutil.AbsPath(pathutil.BaseDir(), "tmp", "playwright")
//
//	if p := pathutil.FindToolInPath("playwright"); p == "" {
//	    fmt.Println(pathutil.GetInstallSuggestion("playwright", constrained))
//	}
package pathutil
