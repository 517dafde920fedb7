// Copyright (c) The a0 Authors. All rights reserved.
// Licensed under the MIT License.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/agentzero/a0-core/pathutil"
	"github.com/agentzero/a0-core/security"
)

// Environment variable names.
const (
	EnvConfig           = "A0_CONFIG"
	EnvDebug            = "A0_DEBUG"
	EnvLogFormat        = "A0_LOG_FORMAT"
	EnvBrowserInstaller = "A0_BROWSER_INSTALLER"
	EnvInstallTimeout   = "A0_INSTALL_TIMEOUT"
)

// Installer kinds.
const (
	InstallerCLI    = "cli"
	InstallerDriver = "driver"
)

// Defaults.
const (
	DefaultCacheDir       = "tmp/playwright"
	DefaultInstallCommand = "playwright"
	DefaultSystemChromium = "/data/data/com.termux/files/usr/bin/chromium"
	DefaultMCPRateLimit   = 5.0
	DefaultMCPBurst       = 10
)

// ErrInvalidConfig is returned for configuration that fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the complete a0 configuration.
type Config struct {
	BaseDir string        `yaml:"baseDir"`
	Log     LogConfig     `yaml:"log"`
	Browser BrowserConfig `yaml:"browser"`
	MCP     MCPConfig     `yaml:"mcp"`
}

// LogConfig controls logutil setup.
type LogConfig struct {
	Debug  bool   `yaml:"debug"`
	Format string `yaml:"format"` // "text" or "json"
}

// BrowserConfig controls browser binary resolution and installation.
type BrowserConfig struct {
	// CacheDir is where browsers are installed and discovered. Relative
	// paths resolve against the base directory.
	CacheDir       string        `yaml:"cacheDir"`
	Installer      string        `yaml:"installer"`
	InstallCommand string        `yaml:"installCommand"`
	InstallTimeout time.Duration `yaml:"installTimeout"`
	SystemChromium string        `yaml:"systemChromium"`
}

// MCPConfig controls the MCP tool server.
type MCPConfig struct {
	RateLimit float64 `yaml:"rateLimit"` // calls per second
	Burst     int     `yaml:"burst"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log: LogConfig{Format: "text"},
		Browser: BrowserConfig{
			CacheDir:       DefaultCacheDir,
			Installer:      InstallerCLI,
			InstallCommand: DefaultInstallCommand,
			SystemChromium: DefaultSystemChromium,
		},
		MCP: MCPConfig{
			RateLimit: DefaultMCPRateLimit,
			Burst:     DefaultMCPBurst,
		},
	}
}

// Load builds the configuration from defaults, the YAML file at path (or
// A0_CONFIG when path is empty), and the environment. A file that was
// explicitly named but cannot be read is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		// The file names a command that gets executed.
		if err := security.ValidateFilePermissions(path); err != nil {
			return Config{}, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: failed to parse %s: %v", ErrInvalidConfig, path, err)
		}
		if cfg.BaseDir != "" && !filepath.IsAbs(cfg.BaseDir) {
			cfg.BaseDir = filepath.Join(filepath.Dir(path), cfg.BaseDir)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(pathutil.EnvBaseDir); v != "" {
		c.BaseDir = v
	}
	if os.Getenv(EnvDebug) == "true" {
		c.Log.Debug = true
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Log.Format = strings.ToLower(v)
	}
	if v := os.Getenv(EnvBrowserInstaller); v != "" {
		c.Browser.Installer = strings.ToLower(v)
	}
	if v := os.Getenv(EnvInstallTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvInstallTimeout, v, err)
		}
		c.Browser.InstallTimeout = d
	}
	return nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch c.Browser.Installer {
	case InstallerCLI, InstallerDriver:
	default:
		return fmt.Errorf("%w: browser.installer must be %q or %q, got %q", ErrInvalidConfig, InstallerCLI, InstallerDriver, c.Browser.Installer)
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: log.format must be \"text\" or \"json\", got %q", ErrInvalidConfig, c.Log.Format)
	}
	if c.Browser.InstallTimeout < 0 {
		return fmt.Errorf("%w: browser.installTimeout must not be negative", ErrInvalidConfig)
	}
	if c.Browser.CacheDir == "" {
		return fmt.Errorf("%w: browser.cacheDir must not be empty", ErrInvalidConfig)
	}
	if c.Browser.Installer == InstallerCLI {
		if err := security.ValidateCommandName(c.Browser.InstallCommand); err != nil {
			return fmt.Errorf("%w: browser.installCommand: %v", ErrInvalidConfig, err)
		}
	}
	if c.MCP.RateLimit <= 0 || c.MCP.Burst <= 0 {
		return fmt.Errorf("%w: mcp.rateLimit and mcp.burst must be positive", ErrInvalidConfig)
	}
	return nil
}

// ResolvedBaseDir returns the configured base directory or the process
// default from pathutil.
func (c Config) ResolvedBaseDir() string {
	if c.BaseDir != "" {
		if abs, err := filepath.Abs(c.BaseDir); err == nil {
			return abs
		}
		return c.BaseDir
	}
	return pathutil.BaseDir()
}

// ResolvedCacheDir returns the absolute browser cache directory.
func (c Config) ResolvedCacheDir() string {
	return pathutil.AbsPath(c.ResolvedBaseDir(), c.Browser.CacheDir)
}

// StructuredLogs reports whether logs should be JSON.
func (c Config) StructuredLogs() bool {
	return c.Log.Format == "json"
}
