// Copyright (c) The a0 Authors. All rights reserved.
// Licensed under the MIT License.

package notify

import (
	"context"
	"fmt"

	"github.com/gen2brain/beeep"
)

// beeepNotifier sends desktop notifications through beeep.
type beeepNotifier struct {
	config Config
	// send replaces beeep.Notify in tests.
	send func(title, message string, icon any) error
}

func (n *beeepNotifier) Send(ctx context.Context, notification Notification) error {
	send := n.send
	if send == nil {
		send = func(title, message string, _ any) error {
			return beeep.Notify(title, message, "")
		}
	}

	ctx, cancel := withTimeout(ctx, n.config.Timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- send(title(n.config, notification), notification.Message, "")
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("%w: %v", ErrNotificationFailed, err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", ErrNotificationFailed, ctx.Err())
	}
}

// IsAvailable is true since beeep handles platform detection internally.
func (n *beeepNotifier) IsAvailable() bool {
	return true
}
