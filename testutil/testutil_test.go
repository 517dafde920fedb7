// Copyright (c) The a0 Authors. All rights reserved.
// Licensed under the MIT License.

package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestTempDirIsRemoved(t *testing.T) {
	var dir string
	t.Run("inner", func(t *testing.T) {
		dir = TempDir(t)
		if _, err := os.Stat(dir); err != nil {
			t.Fatalf("expected temp dir to exist: %v", err)
		}
	})
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("expected temp dir to be cleaned up, stat err = %v", err)
	}
}

func TestWriteExecutable(t *testing.T) {
	root := TempDir(t)
	path := WriteExecutable(t, root, "chromium-1200/chrome-linux/chrome")

	if path != filepath.Join(root, "chromium-1200", "chrome-linux", "chrome") {
		t.Errorf("unexpected path %q", path)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if runtime.GOOS != "windows" && info.Mode().Perm()&0o111 == 0 {
		t.Errorf("expected executable permissions, got %v", info.Mode())
	}

	plain := WriteFile(t, root, "notes/readme")
	info, err = os.Stat(plain)
	if err != nil {
		t.Fatal(err)
	}
	if runtime.GOOS != "windows" && info.Mode().Perm()&0o111 != 0 {
		t.Errorf("expected non-executable permissions, got %v", info.Mode())
	}
}
