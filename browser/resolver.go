// Copyright (c) The a0 Authors. All rights reserved.
// Licensed under the MIT License.

package browser

import (
	"context"
	"time"

	"github.com/agentzero/a0-core/cliout"
	"github.com/agentzero/a0-core/cmdutil"
	"github.com/agentzero/a0-core/config"
	"github.com/agentzero/a0-core/fileutil"
	"github.com/agentzero/a0-core/logutil"
	"github.com/agentzero/a0-core/pathutil"
	"github.com/agentzero/a0-core/platform"
)

// Cache layout searched by Locate, in priority order.
const (
	HeadlessShellPattern = "chromium_headless_shell-*/chrome-*/headless_shell"
	ChromiumPattern      = "chromium-*/chrome-linux/chrome"
)

// Source records where a resolved binary came from.
type Source string

const (
	SourceCache     Source = "cache"
	SourceSystem    Source = "system"
	SourceInstalled Source = "installed"
)

// Platform reports whether the host is a constrained platform.
type Platform interface {
	IsConstrained() bool
}

// Options configures a Resolver. Zero fields take defaults.
type Options struct {
	// CacheDir defaults to tmp/playwright under the base directory.
	CacheDir string
	// SystemChromium is the fallback binary on constrained platforms.
	SystemChromium string
	// Installer defaults to a CLIInstaller.
	Installer Installer
	// Platform defaults to platform.NewDetector().
	Platform Platform
	// InstallTimeout bounds each install attempt. Zero means no bound.
	InstallTimeout time.Duration
	// InstallOutput receives installer output lines. Nil discards them.
	InstallOutput cmdutil.OutputLineHandler
}

// Result is a resolved browser binary.
type Result struct {
	Path   string `json:"path"`
	Source Source `json:"source"`
}

// Resolver finds or installs the headless Chromium binary. Calls are
// synchronous. Concurrent Ensure calls on the same cache directory are not
// coordinated and may install twice.
type Resolver struct {
	cacheDir       string
	systemChromium string
	installer      Installer
	platform       Platform
	installTimeout time.Duration
	installOutput  cmdutil.OutputLineHandler
}

var log = logutil.NewLogger("browser")

// New returns a Resolver for opts.
func New(opts Options) *Resolver {
	r := &Resolver{
		cacheDir:       opts.CacheDir,
		systemChromium: opts.SystemChromium,
		installer:      opts.Installer,
		platform:       opts.Platform,
		installTimeout: opts.InstallTimeout,
		installOutput:  opts.InstallOutput,
	}
	if r.cacheDir == "" {
		r.cacheDir = config.DefaultCacheDir
	}
	r.cacheDir = pathutil.AbsPath(pathutil.BaseDir(), r.cacheDir)
	if r.systemChromium == "" {
		r.systemChromium = config.DefaultSystemChromium
	}
	if r.installer == nil {
		r.installer = &CLIInstaller{Command: config.DefaultInstallCommand}
	}
	if r.platform == nil {
		r.platform = platform.NewDetector()
	}
	return r
}

// FromConfig returns a Resolver configured by cfg.
func FromConfig(cfg config.Config) *Resolver {
	var installer Installer
	switch cfg.Browser.Installer {
	case config.InstallerDriver:
		installer = &DriverInstaller{}
	default:
		installer = &CLIInstaller{Command: cfg.Browser.InstallCommand}
	}
	opts := Options{
		CacheDir:       cfg.ResolvedCacheDir(),
		SystemChromium: cfg.Browser.SystemChromium,
		Installer:      installer,
		InstallTimeout: cfg.Browser.InstallTimeout,
	}
	if cfg.Log.Debug {
		opts.InstallOutput = logInstallerLine
	}
	return New(opts)
}

func logInstallerLine(line string) {
	log.Debug("installer output", "line", line)
}

// CacheDir returns the absolute browser cache directory.
func (r *Resolver) CacheDir() string {
	return r.cacheDir
}

// Locate returns the first browser binary available without installing:
// the headless shell in the cache, then full Chromium in the cache, then
// the system Chromium on constrained platforms.
func (r *Resolver) Locate() (string, bool) {
	res, ok := r.locate()
	if ok {
		recordResolution(res.Source)
	}
	return res.Path, ok
}

func (r *Resolver) locate() (Result, bool) {
	for _, pattern := range []string{HeadlessShellPattern, ChromiumPattern} {
		if path, ok := fileutil.FirstGlobMatch(r.cacheDir, pattern); ok {
			return Result{Path: path, Source: SourceCache}, true
		}
	}
	if path, ok := r.systemFallback(); ok {
		return Result{Path: path, Source: SourceSystem}, true
	}
	return Result{}, false
}

// systemFallback returns the system Chromium when the platform is
// constrained and the binary is executable.
func (r *Resolver) systemFallback() (string, bool) {
	if !r.platform.IsConstrained() {
		return "", false
	}
	if !fileutil.IsExecutable(r.systemChromium) {
		log.Debug("system chromium not usable", "path", r.systemChromium)
		return "", false
	}
	return r.systemChromium, true
}

// Ensure returns a browser binary, installing one into the cache directory
// when none is present. It fails with an *InstallationError once both
// install attempts and the system fallback are exhausted.
func (r *Resolver) Ensure(ctx context.Context) (string, error) {
	res, err := r.Resolve(ctx)
	return res.Path, err
}

// Resolve is Ensure but also reports the source of the binary.
func (r *Resolver) Resolve(ctx context.Context) (Result, error) {
	if res, ok := r.locate(); ok {
		recordResolution(res.Source)
		return res, nil
	}

	cliout.Hint("Installing Playwright browser binaries...")
	log.Info("installing browser", "cacheDir", r.cacheDir)

	if minimalErr := r.install(ctx, true); minimalErr != nil {
		cliout.Warning("Failed to install Playwright headless shell: %v", minimalErr)

		if fullErr := r.install(ctx, false); fullErr != nil {
			cliout.Warning("Failed to install Chromium: %v", fullErr)

			if path, ok := r.systemFallback(); ok {
				cliout.Hint("Using system Chromium: " + path)
				recordResolution(SourceSystem)
				return Result{Path: path, Source: SourceSystem}, nil
			}
			return Result{}, r.exhausted(minimalErr, fullErr)
		}
		cliout.Hint("Installed full Chromium instead of headless shell")
	}

	res, ok := r.locate()
	if !ok {
		log.Warn("browser missing after install", "cacheDir", r.cacheDir)
		return Result{}, &InstallationError{Message: MsgNotFoundAfter}
	}
	if res.Source == SourceCache {
		res.Source = SourceInstalled
	}
	recordResolution(res.Source)
	return res, nil
}

func (r *Resolver) install(ctx context.Context, onlyShell bool) error {
	req := InstallRequest{
		Browser:      BrowserChromium,
		OnlyShell:    onlyShell,
		BrowsersPath: r.cacheDir,
		OnOutput:     r.installOutput,
	}
	if err := fileutil.EnsureDir(r.cacheDir); err != nil {
		recordInstall(req.packageName(), err)
		return err
	}
	if r.installTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.installTimeout)
		defer cancel()
	}

	err := r.installer.Install(ctx, req)
	recordInstall(req.packageName(), err)
	log.Debug("install attempt finished", "package", req.packageName(), "error", err)
	return err
}

func (r *Resolver) exhausted(attempts ...error) *InstallationError {
	return &InstallationError{
		Message:  MsgUnavailable,
		Hint:     pathutil.GetInstallSuggestion(BrowserChromium, r.platform.IsConstrained()),
		Attempts: attempts,
	}
}

// Locate finds a browser binary using the default configuration.
func Locate() (string, bool) {
	return New(Options{}).Locate()
}

// Ensure finds or installs a browser binary using the default configuration.
func Ensure(ctx context.Context) (string, error) {
	return New(Options{}).Ensure(ctx)
}
