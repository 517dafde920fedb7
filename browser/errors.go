// Copyright (c) The a0 Authors. All rights reserved.
// Licensed under the MIT License.

package browser

import (
	"errors"
	"strings"
)

// ErrInstallation matches every InstallationError via errors.Is.
var ErrInstallation = errors.New("browser installation failed")

// Fatal messages returned by Ensure.
const (
	MsgUnavailable    = "Playwright browser not available."
	MsgNotFoundAfter  = "Playwright binary not found after installation. Please install manually or use a system browser."
	HintConstrained   = "On Android, try: pkg install chromium"
	HintUnconstrained = "Install it manually with: playwright install chromium"
)

// InstallationError reports that no browser binary could be provided.
type InstallationError struct {
	Message string
	// Hint is a platform-specific remediation, possibly empty.
	Hint string
	// Attempts holds the errors of the failed install attempts in order.
	Attempts []error
}

func (e *InstallationError) Error() string {
	if e.Hint == "" {
		return e.Message
	}
	return e.Message + " " + e.Hint
}

// Is reports whether target is ErrInstallation.
func (e *InstallationError) Is(target error) bool {
	return target == ErrInstallation
}

// Unwrap returns the install attempt errors.
func (e *InstallationError) Unwrap() []error {
	return e.Attempts
}

// Details renders the message followed by each attempt error, one per line.
func (e *InstallationError) Details() string {
	var b strings.Builder
	b.WriteString(e.Error())
	for _, err := range e.Attempts {
		b.WriteString("\n  - ")
		b.WriteString(err.Error())
	}
	return b.String()
}
