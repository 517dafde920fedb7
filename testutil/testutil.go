// Copyright (c) The a0 Authors. All rights reserved.
// Licensed under the MIT License.

package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TempDir creates a temporary directory that is removed when the test ends.
func TempDir(t *testing.T) string {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "a0-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	t.Cleanup(func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			t.Logf("Failed to clean up temp directory %s: %v", tmpDir, err)
		}
	})
	return tmpDir
}

// WriteExecutable creates an executable file at root/rel, creating parent
// directories as needed, and returns its full path.
func WriteExecutable(t *testing.T, root, rel string) string {
	t.Helper()
	return writeFile(t, filepath.Join(root, filepath.FromSlash(rel)), 0o755)
}

// WriteFile creates a non-executable file at root/rel and returns its path.
func WriteFile(t *testing.T, root, rel string) string {
	t.Helper()
	return writeFile(t, filepath.Join(root, filepath.FromSlash(rel)), 0o644)
}

func writeFile(t *testing.T, path string, perm os.FileMode) string {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("Failed to create parent of %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), perm); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}
