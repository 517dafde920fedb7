// Copyright (c) The a0 Authors. All rights reserved.
// Licensed under the MIT License.

package notify

import (
	"context"
	"fmt"

	"github.com/agentzero/a0-core/cmdutil"
	"github.com/agentzero/a0-core/pathutil"
)

const termuxNotificationTool = "termux-notification"

// termuxNotifier posts Android notifications through Termux:API.
type termuxNotifier struct {
	config Config
	runner cmdutil.Runner
}

func (n *termuxNotifier) Send(ctx context.Context, notification Notification) error {
	if !n.IsAvailable() {
		return fmt.Errorf("%w: %s is not installed (pkg install termux-api)", ErrNotAvailable, termuxNotificationTool)
	}

	args := []string{"--title", title(n.config, notification), "--content", notification.Message}
	if notification.Severity == SeverityCritical {
		args = append(args, "--priority", "high")
	}

	runner := n.runner
	if runner == nil {
		runner = cmdutil.DefaultRunner()
	}
	cmd := cmdutil.Command{Name: termuxNotificationTool, Args: args}
	if err := cmdutil.RunWithTimeout(ctx, runner, cmd, n.config.Timeout); err != nil {
		return fmt.Errorf("%w: %v", ErrNotificationFailed, err)
	}
	return nil
}

// IsAvailable reports whether termux-notification is on PATH. A test runner
// is always available.
func (n *termuxNotifier) IsAvailable() bool {
	return n.runner != nil || pathutil.FindToolInPath(termuxNotificationTool) != ""
}
