// Copyright (c) The a0 Authors. All rights reserved.
// Licensed under the MIT License.

package security

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFilePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not used on Windows")
	}
	dir := t.TempDir()

	private := filepath.Join(dir, "private.yaml")
	require.NoError(t, os.WriteFile(private, []byte("x"), 0o600))
	assert.NoError(t, ValidateFilePermissions(private))

	shared := filepath.Join(dir, "shared.yaml")
	require.NoError(t, os.WriteFile(shared, []byte("x"), 0o600))
	require.NoError(t, os.Chmod(shared, 0o666))
	assert.ErrorIs(t, ValidateFilePermissions(shared), ErrInsecureFilePermissions)

	group := filepath.Join(dir, "group.yaml")
	require.NoError(t, os.WriteFile(group, []byte("x"), 0o600))
	require.NoError(t, os.Chmod(group, 0o660))
	assert.ErrorIs(t, ValidateFilePermissions(group), ErrInsecureFilePermissions)

	err := ValidateFilePermissions(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInsecureFilePermissions)
}

func TestValidateCommandName(t *testing.T) {
	for _, name := range []string{"playwright", "/opt/venv/bin/playwright", "./node_modules/.bin/playwright"} {
		assert.NoError(t, ValidateCommandName(name), name)
	}
	for _, name := range []string{"", "  ", "playwright; rm -rf /", "$(curl x)", "a|b", "pw\ninstall"} {
		assert.ErrorIs(t, ValidateCommandName(name), ErrUnsafeCommand, name)
	}
}
