// Copyright (c) The a0 Authors. All rights reserved.
// Licensed under the MIT License.

package pathutil

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// EnvBaseDir overrides the application base directory.
const EnvBaseDir = "A0_BASE_DIR"

// TermuxBinDir is where Termux packages install executables.
const TermuxBinDir = "/data/data/com.termux/files/usr/bin"

// BaseDir returns the application base directory: A0_BASE_DIR when set,
// otherwise the current working directory, otherwise ".".
func BaseDir() string {
	if dir := os.Getenv(EnvBaseDir); dir != "" {
		if abs, err := filepath.Abs(dir); err == nil {
			return abs
		}
		return dir
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

// AbsPath joins parts onto base. If the joined parts already form an
// absolute path, base is ignored.
func AbsPath(base string, parts ...string) string {
	rel := filepath.Join(parts...)
	if filepath.IsAbs(rel) {
		return filepath.Clean(rel)
	}
	return filepath.Join(base, rel)
}

// FindToolInPath searches for a tool executable in the system PATH.
// Returns the full path to the executable if found, empty string otherwise.
func FindToolInPath(toolName string) string {
	searchName := toolName
	if runtime.GOOS == "windows" && !strings.HasSuffix(strings.ToLower(toolName), ".exe") {
		searchName = toolName + ".exe"
	}

	path, err := exec.LookPath(searchName)
	if err != nil {
		return ""
	}
	return path
}

// SearchToolInSystemPath searches for a tool in common install directories
// that may be missing from PATH, including the Termux prefix.
func SearchToolInSystemPath(toolName string) string {
	exeName := toolName
	if runtime.GOOS == "windows" && !strings.HasSuffix(strings.ToLower(toolName), ".exe") {
		exeName = toolName + ".exe"
	}

	var searchPaths []string
	if runtime.GOOS == "windows" {
		searchPaths = []string{
			filepath.Join(os.Getenv("APPDATA"), "npm"),
			filepath.Join(os.Getenv("LOCALAPPDATA"), "Programs", "Python"),
		}
	} else {
		homeDir, _ := os.UserHomeDir()
		searchPaths = []string{
			"/usr/local/bin",
			"/usr/bin",
			"/bin",
			"/opt/homebrew/bin",
			TermuxBinDir,
			filepath.Join(homeDir, ".local", "bin"),
			filepath.Join(homeDir, "go", "bin"),
		}
	}

	for _, dir := range searchPaths {
		fullPath := filepath.Join(dir, exeName)
		if _, err := os.Stat(fullPath); err == nil {
			return fullPath
		}
	}
	return ""
}

// GetInstallSuggestion returns a suggestion for how to install a missing
// tool. On a constrained (Termux) platform the package manager hint wins.
func GetInstallSuggestion(toolName string, constrained bool) string {
	termux := map[string]string{
		"chromium":   "On Android, try: pkg install chromium",
		"playwright": "On Android, try: pkg install chromium (Playwright browsers are not published for Android)",
		"node":       "On Android, try: pkg install nodejs",
		"python":     "On Android, try: pkg install python",
	}
	suggestions := map[string]string{
		"chromium":    "Install it manually with: playwright install chromium",
		"playwright":  "Install from https://playwright.dev/docs/intro",
		"node":        "Install from https://nodejs.org/",
		"python":      "Install from https://www.python.org/downloads/",
		"docker":      "Install Docker from https://docs.docker.com/get-docker/",
		"browser-use": "Install with: pip install browser-use",
		"faiss":       "Install with: conda install -c pytorch faiss-cpu",
	}

	if constrained {
		if suggestion, ok := termux[toolName]; ok {
			return suggestion
		}
	}
	if suggestion, ok := suggestions[toolName]; ok {
		return suggestion
	}
	return fmt.Sprintf("Please install %s manually", toolName)
}
