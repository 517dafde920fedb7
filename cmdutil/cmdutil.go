// Copyright (c) The a0 Authors. All rights reserved.
// Licensed under the MIT License.

package cmdutil

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"
)

// OutputLineHandler is a callback for processing output lines in real-time.
type OutputLineHandler func(line string)

// Command describes one external process invocation.
type Command struct {
	Name string
	Args []string
	// Env holds KEY=VALUE overrides applied on top of os.Environ().
	Env []string
	Dir string
	// OnLine, when set, receives each stdout/stderr line. Otherwise both
	// streams are discarded.
	OnLine OutputLineHandler
}

// String returns the command line for logs and error messages.
func (c Command) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// Runner runs commands. It exists so tests can substitute fakes.
type Runner interface {
	Run(ctx context.Context, cmd Command) error
}

// RunnerFunc adapts a function to the Runner interface.
type RunnerFunc func(ctx context.Context, cmd Command) error

// Run calls f(ctx, cmd).
func (f RunnerFunc) Run(ctx context.Context, cmd Command) error {
	return f(ctx, cmd)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Run starts the command, blocks until it exits, and returns a non-nil
// error for start failures and non-zero exit codes.
func (ExecRunner) Run(ctx context.Context, c Command) error {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	cmd.Env = MergeEnv(os.Environ(), c.Env)

	if c.OnLine != nil {
		stdout := newLineWriter(c.OnLine)
		stderr := newLineWriter(c.OnLine)
		cmd.Stdout = stdout
		cmd.Stderr = stderr
		defer stdout.Flush()
		defer stderr.Flush()
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("command %q failed: %w", c.String(), err)
	}
	return nil
}

var (
	runnerMu      sync.RWMutex
	defaultRunner Runner = ExecRunner{}
)

// SetDefaultRunner sets the package runner and returns the previous one so
// it can be restored.
func SetDefaultRunner(r Runner) Runner {
	runnerMu.Lock()
	defer runnerMu.Unlock()
	prev := defaultRunner
	defaultRunner = r
	return prev
}

// DefaultRunner returns the package runner.
func DefaultRunner() Runner {
	runnerMu.RLock()
	defer runnerMu.RUnlock()
	return defaultRunner
}

// Run runs cmd with the package runner.
func Run(ctx context.Context, cmd Command) error {
	return DefaultRunner().Run(ctx, cmd)
}

// RunWithTimeout runs cmd with r, bounded by timeout. A zero timeout means
// no bound beyond ctx.
func RunWithTimeout(ctx context.Context, r Runner, cmd Command, timeout time.Duration) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return r.Run(ctx, cmd)
}

// MergeEnv returns base with overrides applied. Later entries win and
// replaced keys keep their original position.
func MergeEnv(base, overrides []string) []string {
	merged := make([]string, 0, len(base)+len(overrides))
	index := make(map[string]int, len(base)+len(overrides))

	for _, kv := range append(append([]string{}, base...), overrides...) {
		key, _, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		if i, seen := index[key]; seen {
			merged[i] = kv
			continue
		}
		index[key] = len(merged)
		merged = append(merged, kv)
	}
	return merged
}
