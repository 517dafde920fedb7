// Copyright (c) The a0 Authors. All rights reserved.
// Licensed under the MIT License.

package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// DirPermission is the default permission for creating directories (rwxr-x---)
const DirPermission = 0750

// EnsureDir creates a directory if it doesn't exist.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, DirPermission); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

// Exists reports whether anything exists at path.
func Exists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// DirExists reports whether path exists and is a directory.
func DirExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// IsExecutable reports whether path is a regular file that can be executed.
// On Windows any regular file qualifies since there is no executable bit.
func IsExecutable(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}

// FirstGlobMatch returns the first path under root matching pattern.
// Invalid patterns and missing roots yield no match.
func FirstGlobMatch(root, pattern string) (string, bool) {
	matches, err := filepath.Glob(filepath.Join(root, pattern))
	if err != nil || len(matches) == 0 {
		return "", false
	}
	return matches[0], true
}
