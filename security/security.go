// Copyright (c) The a0 Authors. All rights reserved.
// Licensed under the MIT License.

package security

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"
)

// ErrInsecureFilePermissions indicates a file is writable by group or others.
var ErrInsecureFilePermissions = errors.New("insecure file permissions")

// ErrUnsafeCommand indicates a command name containing shell metacharacters.
var ErrUnsafeCommand = errors.New("unsafe command name")

// ValidateFilePermissions returns ErrInsecureFilePermissions if path is
// group- or world-writable. Skipped on Windows, which uses ACLs.
func ValidateFilePermissions(path string) error {
	if runtime.GOOS == "windows" {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat file: %w", err)
	}
	if info.Mode().Perm()&0o022 != 0 {
		return fmt.Errorf("%w: %s is writable by other users (mode %04o)", ErrInsecureFilePermissions, path, info.Mode().Perm())
	}
	return nil
}

// ValidateCommandName rejects empty names and names with shell
// metacharacters. Backslashes are allowed on Windows for paths.
func ValidateCommandName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty", ErrUnsafeCommand)
	}

	dangerous := []string{";", "&", "|", ">", "<", "`", "$", "(", ")", "{", "}", "[", "]", "\n", "\r", "\"", "'", "#"}
	if runtime.GOOS != "windows" {
		dangerous = append(dangerous, "\\")
	}
	for _, char := range dangerous {
		if strings.Contains(name, char) {
			return fmt.Errorf("%w: contains %q", ErrUnsafeCommand, char)
		}
	}
	return nil
}
