// Copyright (c) The a0 Authors. All rights reserved.
// Licensed under the MIT License.

package platform

import (
	"context"
	"os"
	"strings"

	"github.com/shirou/gopsutil/v4/host"

	"github.com/agentzero/a0-core/logutil"
)

// Termux markers.
const (
	// TermuxMarkerDir is the private data directory of the Termux app.
	TermuxMarkerDir = "/data/data/com.termux"
	// EnvTermuxVersion is exported by every Termux session.
	EnvTermuxVersion = "TERMUX_VERSION"
	// EnvPrefix holds the Termux install prefix, e.g. /data/data/com.termux/files/usr.
	EnvPrefix = "PREFIX"

	termuxPackage = "com.termux"
)

// Backend names a browser automation library.
type Backend string

const (
	// BackendPlaywright is the Playwright driver.
	BackendPlaywright Backend = "playwright"
	// BackendBrowserUse is the browser-use agent.
	BackendBrowserUse Backend = "browser-use"
)

// Detector evaluates platform facts against an environment. The zero value
// uses the real process environment and filesystem but has no probes; use
// NewDetector for the default probes.
type Detector struct {
	LookupEnv func(key string) (string, bool)
	Stat      func(name string) (os.FileInfo, error)
	Host      func(ctx context.Context) (*host.InfoStat, error)
	Probes    Probes
}

// NewDetector returns a Detector bound to the process environment with the
// default capability probes.
func NewDetector() *Detector {
	d := &Detector{
		LookupEnv: os.LookupEnv,
		Stat:      os.Stat,
		Host:      host.InfoWithContext,
	}
	d.Probes = DefaultProbes(d.LookupEnv)
	return d
}

var log = logutil.NewLogger("platform")

func (d *Detector) lookupEnv(key string) (string, bool) {
	if d.LookupEnv == nil {
		return os.LookupEnv(key)
	}
	return d.LookupEnv(key)
}

func (d *Detector) getenv(key string) string {
	v, _ := d.lookupEnv(key)
	return v
}

func (d *Detector) exists(path string) bool {
	stat := d.Stat
	if stat == nil {
		stat = os.Stat
	}
	_, err := stat(path)
	return err == nil
}

// IsConstrained reports whether the host is a Termux environment.
func (d *Detector) IsConstrained() bool {
	_, hasVersion := d.lookupEnv(EnvTermuxVersion)
	return d.exists(TermuxMarkerDir) ||
		hasVersion ||
		strings.Contains(d.getenv(EnvPrefix), termuxPackage)
}

// IsContainerRuntimeAvailable reports whether a container engine accepts
// connections. Always false on a constrained platform.
func (d *Detector) IsContainerRuntimeAvailable(ctx context.Context) bool {
	if d.IsConstrained() {
		return false
	}
	return d.Probes.ContainerRuntime.check(ctx, "container_runtime")
}

// IsBrowserAutomationAvailable reports whether the named browser automation
// backend can be loaded. Always false on a constrained platform and for
// unknown backends.
func (d *Detector) IsBrowserAutomationAvailable(ctx context.Context, backend Backend) bool {
	if d.IsConstrained() {
		return false
	}
	switch backend {
	case BackendPlaywright:
		return d.Probes.Playwright.check(ctx, string(BackendPlaywright))
	case BackendBrowserUse:
		return d.Probes.BrowserUse.check(ctx, string(BackendBrowserUse))
	default:
		log.Debug("unknown browser automation backend", "backend", backend)
		return false
	}
}

// IsVectorSearchAvailable reports whether the vector search library can be
// loaded. Checked on every platform.
func (d *Detector) IsVectorSearchAvailable(ctx context.Context) bool {
	return d.Probes.VectorSearch.check(ctx, "vector_search")
}

// IsConstrained reports whether the process runs under Termux.
func IsConstrained() bool {
	return NewDetector().IsConstrained()
}

// IsContainerRuntimeAvailable probes the default container engine.
func IsContainerRuntimeAvailable(ctx context.Context) bool {
	return NewDetector().IsContainerRuntimeAvailable(ctx)
}

// IsBrowserAutomationAvailable probes the named backend.
func IsBrowserAutomationAvailable(ctx context.Context, backend Backend) bool {
	return NewDetector().IsBrowserAutomationAvailable(ctx, backend)
}

// IsVectorSearchAvailable probes for the FAISS library.
func IsVectorSearchAvailable(ctx context.Context) bool {
	return NewDetector().IsVectorSearchAvailable(ctx)
}
