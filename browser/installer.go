// Copyright (c) The a0 Authors. All rights reserved.
// Licensed under the MIT License.

package browser

import (
	"context"
	"fmt"
	"io"

	"github.com/playwright-community/playwright-go"

	"github.com/agentzero/a0-core/cmdutil"
)

// EnvBrowsersPath tells Playwright where to install and look up browsers.
const EnvBrowsersPath = "PLAYWRIGHT_BROWSERS_PATH"

// BrowserChromium is the only browser a0 installs.
const BrowserChromium = "chromium"

// InstallRequest describes one browser install.
type InstallRequest struct {
	Browser string
	// OnlyShell requests the headless shell instead of the full browser.
	OnlyShell bool
	// BrowsersPath is the directory the browser is installed into.
	BrowsersPath string
	// OnOutput receives each line the installer prints. Nil discards output.
	OnOutput cmdutil.OutputLineHandler
}

// Args returns the Playwright CLI arguments for the request.
func (r InstallRequest) Args() []string {
	args := []string{"install", r.Browser}
	if r.OnlyShell {
		args = append(args, "--only-shell")
	}
	return args
}

// Env returns the environment overrides for the request.
func (r InstallRequest) Env() []string {
	if r.BrowsersPath == "" {
		return nil
	}
	return []string{EnvBrowsersPath + "=" + r.BrowsersPath}
}

func (r InstallRequest) packageName() string {
	if r.OnlyShell {
		return "headless_shell"
	}
	return r.Browser
}

// Installer installs a browser. Install blocks until the install finishes
// and returns an error on any failure.
type Installer interface {
	Install(ctx context.Context, req InstallRequest) error
}

// InstallerFunc adapts a function to the Installer interface.
type InstallerFunc func(ctx context.Context, req InstallRequest) error

// Install calls f(ctx, req).
func (f InstallerFunc) Install(ctx context.Context, req InstallRequest) error {
	return f(ctx, req)
}

// CLIInstaller runs the playwright command line tool.
type CLIInstaller struct {
	// Command is the executable name or path. Defaults to "playwright".
	Command string
	// Runner defaults to cmdutil.DefaultRunner().
	Runner cmdutil.Runner
}

// Install runs "<command> install <browser> [--only-shell]".
func (i *CLIInstaller) Install(ctx context.Context, req InstallRequest) error {
	name := i.Command
	if name == "" {
		name = "playwright"
	}
	return runner(i.Runner).Run(ctx, cmdutil.Command{
		Name:   name,
		Args:   req.Args(),
		Env:    req.Env(),
		OnLine: req.OnOutput,
	})
}

// DriverInstaller installs browsers through the driver bundled with
// playwright-go, downloading the driver first when it is missing.
type DriverInstaller struct {
	// DriverDirectory overrides the playwright-go driver location.
	DriverDirectory string
	Runner          cmdutil.Runner

	// driverCommand returns the driver CLI invocation prefix. Tests replace it.
	driverCommand func(dir string) (cmdutil.Command, error)
}

// Install runs the driver CLI with the same arguments as CLIInstaller.
func (i *DriverInstaller) Install(ctx context.Context, req InstallRequest) error {
	resolve := i.driverCommand
	if resolve == nil {
		resolve = playwrightDriverCommand
	}
	cmd, err := resolve(i.DriverDirectory)
	if err != nil {
		return err
	}
	cmd.Args = append(cmd.Args, req.Args()...)
	cmd.Env = append(cmd.Env, req.Env()...)
	cmd.OnLine = req.OnOutput
	return runner(i.Runner).Run(ctx, cmd)
}

func playwrightDriverCommand(dir string) (cmdutil.Command, error) {
	driver, err := playwright.NewDriver(&playwright.RunOptions{
		DriverDirectory:     dir,
		SkipInstallBrowsers: true,
		Verbose:             false,
		Stdout:              io.Discard,
		Stderr:              io.Discard,
	})
	if err != nil {
		return cmdutil.Command{}, fmt.Errorf("failed to initialize playwright driver: %w", err)
	}
	if err := driver.Install(); err != nil {
		return cmdutil.Command{}, fmt.Errorf("failed to install playwright driver: %w", err)
	}

	c := driver.Command()
	return cmdutil.Command{Name: c.Path, Args: append([]string{}, c.Args[1:]...)}, nil
}

func runner(r cmdutil.Runner) cmdutil.Runner {
	if r == nil {
		return cmdutil.DefaultRunner()
	}
	return r
}
