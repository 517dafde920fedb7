// Copyright (c) The a0 Authors. All rights reserved.
// Licensed under the MIT License.

package pathutil

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestBaseDirFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvBaseDir, dir)

	if got := BaseDir(); got != dir {
		t.Errorf("BaseDir() = %q, want %q", got, dir)
	}
}

func TestBaseDirFallsBackToWorkingDir(t *testing.T) {
	t.Setenv(EnvBaseDir, "")

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if got := BaseDir(); got != wd {
		t.Errorf("BaseDir() = %q, want %q", got, wd)
	}
}

func TestAbsPath(t *testing.T) {
	base := filepath.FromSlash("/srv/a0")

	got := AbsPath(base, "tmp", "playwright")
	want := filepath.Join(base, "tmp", "playwright")
	if got != want {
		t.Errorf("AbsPath() = %q, want %q", got, want)
	}

	if runtime.GOOS != "windows" {
		if got := AbsPath(base, "/var/cache/pw"); got != "/var/cache/pw" {
			t.Errorf("absolute part should win, got %q", got)
		}
	}

	if got := AbsPath(base); got != base {
		t.Errorf("AbsPath(base) = %q, want %q", got, base)
	}
}

func TestFindToolInPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a POSIX executable fixture")
	}
	dir := t.TempDir()
	tool := filepath.Join(dir, "browser-use")
	if err := os.WriteFile(tool, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir)

	if got := FindToolInPath("browser-use"); got != tool {
		t.Errorf("FindToolInPath() = %q, want %q", got, tool)
	}
	if got := FindToolInPath("definitely-not-a-real-tool-xyz"); got != "" {
		t.Errorf("expected empty result for missing tool, got %q", got)
	}
}

func TestSearchToolInSystemPathMissing(t *testing.T) {
	if got := SearchToolInSystemPath("definitely-not-a-real-tool-xyz"); got != "" {
		t.Errorf("expected empty result, got %q", got)
	}
}

func TestGetInstallSuggestion(t *testing.T) {
	tests := []struct {
		name        string
		tool        string
		constrained bool
		contains    string
	}{
		{"chromium desktop", "chromium", false, "playwright install chromium"},
		{"chromium termux", "chromium", true, "pkg install chromium"},
		{"docker termux falls back", "docker", true, "docs.docker.com"},
		{"unknown tool", "frobnicate", false, "Please install frobnicate manually"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetInstallSuggestion(tt.tool, tt.constrained)
			if !strings.Contains(got, tt.contains) {
				t.Errorf("GetInstallSuggestion(%q, %v) = %q, want it to contain %q", tt.tool, tt.constrained, got, tt.contains)
			}
		})
	}
}
