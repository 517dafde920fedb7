// Copyright (c) The a0 Authors. All rights reserved.
// Licensed under the MIT License.

// Package notify sends OS notifications when long operations, such as a
// browser install, finish. Desktops use beeep and Termux uses the
// termux-notification command from Termux:API.
package notify

import (
	"context"
	"errors"
	"time"
)

// Severity of a notification.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Notification is a message for the OS notification area.
type Notification struct {
	Title    string
	Message  string
	Severity Severity
}

// Notifier delivers notifications.
type Notifier interface {
	// Send delivers n, blocking until the OS accepts it or ctx is done.
	Send(ctx context.Context, n Notification) error
	// IsAvailable reports whether Send can work on this host.
	IsAvailable() bool
}

// Config contains notification settings.
type Config struct {
	// AppName prefixes notification titles.
	AppName string
	// Timeout bounds each Send.
	Timeout time.Duration
	// Constrained selects the Termux notifier.
	Constrained bool
}

// DefaultConfig returns the default configuration for a desktop host.
func DefaultConfig() Config {
	return Config{
		AppName: "a0",
		Timeout: 5 * time.Second,
	}
}

// New returns the notifier for config.
func New(config Config) Notifier {
	if config.Constrained {
		return &termuxNotifier{config: config}
	}
	return &beeepNotifier{config: config}
}

var (
	ErrNotAvailable       = errors.New("OS notifications not available")
	ErrNotificationFailed = errors.New("failed to send notification")
)

func title(config Config, n Notification) string {
	if config.AppName == "" {
		return n.Title
	}
	if n.Title == "" {
		return config.AppName
	}
	return config.AppName + ": " + n.Title
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
