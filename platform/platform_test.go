// Copyright (c) The a0 Authors. All rights reserved.
// Licensed under the MIT License.

package platform

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"sync/atomic"
	"testing"

	"github.com/shirou/gopsutil/v4/host"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEnv builds a Detector over a fixed environment and set of existing paths.
func fakeEnv(env map[string]string, paths ...string) *Detector {
	existing := make(map[string]bool, len(paths))
	for _, p := range paths {
		existing[p] = true
	}
	return &Detector{
		LookupEnv: func(key string) (string, bool) {
			v, ok := env[key]
			return v, ok
		},
		Stat: func(name string) (os.FileInfo, error) {
			if existing[name] {
				return nil, nil
			}
			return nil, fs.ErrNotExist
		},
	}
}

// countingProbe returns a probe reporting result and a counter of its calls.
func countingProbe(result bool) (Probe, *int32) {
	var calls int32
	return func(context.Context) bool {
		atomic.AddInt32(&calls, 1)
		return result
	}, &calls
}

func TestIsConstrained(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		paths []string
		want  bool
	}{
		{name: "plain linux", env: map[string]string{"PREFIX": "/usr"}, want: false},
		{name: "nothing set", env: map[string]string{}, want: false},
		{name: "marker directory", paths: []string{TermuxMarkerDir}, want: true},
		{name: "termux version set", env: map[string]string{"TERMUX_VERSION": "0.118.0"}, want: true},
		{name: "termux version empty", env: map[string]string{"TERMUX_VERSION": ""}, want: true},
		{name: "prefix contains package", env: map[string]string{"PREFIX": "/data/data/com.termux/files/usr"}, want: true},
		{name: "all signals", env: map[string]string{"TERMUX_VERSION": "1", "PREFIX": "/data/data/com.termux/files/usr"}, paths: []string{TermuxMarkerDir}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := fakeEnv(tt.env, tt.paths...)
			assert.Equal(t, tt.want, d.IsConstrained())
		})
	}
}

func TestIsConstrainedRereadsEnvironment(t *testing.T) {
	env := map[string]string{}
	d := fakeEnv(env)
	assert.False(t, d.IsConstrained())

	env["TERMUX_VERSION"] = ""
	assert.True(t, d.IsConstrained())
}

func TestIsConstrainedPackageLevel(t *testing.T) {
	t.Setenv("TERMUX_VERSION", "0.118.0")
	assert.True(t, IsConstrained())
}

func TestConstrainedSkipsProbes(t *testing.T) {
	d := fakeEnv(map[string]string{"TERMUX_VERSION": "1"})
	container, containerCalls := countingProbe(true)
	playwright, playwrightCalls := countingProbe(true)
	browserUse, browserUseCalls := countingProbe(true)
	d.Probes = Probes{ContainerRuntime: container, Playwright: playwright, BrowserUse: browserUse}

	ctx := context.Background()
	assert.False(t, d.IsContainerRuntimeAvailable(ctx))
	assert.False(t, d.IsBrowserAutomationAvailable(ctx, BackendPlaywright))
	assert.False(t, d.IsBrowserAutomationAvailable(ctx, BackendBrowserUse))

	assert.Zero(t, atomic.LoadInt32(containerCalls))
	assert.Zero(t, atomic.LoadInt32(playwrightCalls))
	assert.Zero(t, atomic.LoadInt32(browserUseCalls))
}

func TestUnconstrainedDelegatesToProbes(t *testing.T) {
	ctx := context.Background()

	for _, result := range []bool{true, false} {
		d := fakeEnv(map[string]string{})
		container, _ := countingProbe(result)
		playwright, _ := countingProbe(result)
		browserUse, _ := countingProbe(result)
		d.Probes = Probes{ContainerRuntime: container, Playwright: playwright, BrowserUse: browserUse}

		assert.Equal(t, result, d.IsContainerRuntimeAvailable(ctx))
		assert.Equal(t, result, d.IsBrowserAutomationAvailable(ctx, BackendPlaywright))
		assert.Equal(t, result, d.IsBrowserAutomationAvailable(ctx, BackendBrowserUse))
	}
}

func TestUnknownBackend(t *testing.T) {
	d := fakeEnv(map[string]string{})
	probe, calls := countingProbe(true)
	d.Probes = Probes{Playwright: probe, BrowserUse: probe}

	assert.False(t, d.IsBrowserAutomationAvailable(context.Background(), Backend("selenium")))
	assert.Zero(t, atomic.LoadInt32(calls))
}

func TestVectorSearchIgnoresConstraint(t *testing.T) {
	ctx := context.Background()

	for _, constrained := range []bool{true, false} {
		env := map[string]string{}
		if constrained {
			env["TERMUX_VERSION"] = "1"
		}
		d := fakeEnv(env)
		probe, calls := countingProbe(true)
		d.Probes = Probes{VectorSearch: probe}

		assert.True(t, d.IsVectorSearchAvailable(ctx))
		assert.Equal(t, int32(1), atomic.LoadInt32(calls))
	}
}

func TestProbePanicAndNilBecomeFalse(t *testing.T) {
	d := fakeEnv(map[string]string{})
	d.Probes = Probes{
		ContainerRuntime: func(context.Context) bool { panic("docker client exploded") },
		Playwright:       func(context.Context) bool { panic(errors.New("import failed")) },
	}

	ctx := context.Background()
	assert.NotPanics(t, func() {
		assert.False(t, d.IsContainerRuntimeAvailable(ctx))
		assert.False(t, d.IsBrowserAutomationAvailable(ctx, BackendPlaywright))
		assert.False(t, d.IsBrowserAutomationAvailable(ctx, BackendBrowserUse))
		assert.False(t, d.IsVectorSearchAvailable(ctx))
	})
}

func TestDetect(t *testing.T) {
	d := fakeEnv(map[string]string{"KUBERNETES_SERVICE_HOST": "10.0.0.1"})
	yes := func(context.Context) bool { return true }
	no := func(context.Context) bool { return false }
	d.Probes = Probes{ContainerRuntime: yes, Playwright: no, BrowserUse: yes, VectorSearch: no}
	d.Host = func(context.Context) (*host.InfoStat, error) {
		return &host.InfoStat{Hostname: "box", Platform: "ubuntu", KernelVersion: "6.1.0"}, nil
	}

	facts := d.Detect(context.Background())
	assert.False(t, facts.Constrained)
	assert.True(t, facts.ContainerRuntime)
	assert.False(t, facts.Playwright)
	assert.True(t, facts.BrowserUse)
	assert.False(t, facts.VectorSearch)
	assert.True(t, facts.InContainer)
	assert.NotEmpty(t, facts.OS)
	assert.NotEmpty(t, facts.Arch)
	assert.Equal(t, "box", facts.Host.Hostname)
	assert.Equal(t, "ubuntu", facts.Host.Platform)
}

func TestDetectConstrained(t *testing.T) {
	d := fakeEnv(map[string]string{"PREFIX": "/data/data/com.termux/files/usr"})
	yes := func(context.Context) bool { return true }
	d.Probes = Probes{ContainerRuntime: yes, Playwright: yes, BrowserUse: yes, VectorSearch: yes}
	d.Host = func(context.Context) (*host.InfoStat, error) { return nil, errors.New("no /proc") }

	facts := d.Detect(context.Background())
	assert.True(t, facts.Constrained)
	assert.False(t, facts.ContainerRuntime)
	assert.False(t, facts.Playwright)
	assert.False(t, facts.BrowserUse)
	assert.True(t, facts.VectorSearch)
	assert.Equal(t, HostInfo{}, facts.Host)
}

func TestInContainer(t *testing.T) {
	assert.False(t, fakeEnv(map[string]string{}).inContainer())
	assert.True(t, fakeEnv(map[string]string{"CODESPACES": "true"}).inContainer())
	assert.True(t, fakeEnv(map[string]string{"REMOTE_CONTAINERS": "true"}).inContainer())
	assert.True(t, fakeEnv(map[string]string{}, "/.dockerenv").inContainer())
	assert.True(t, fakeEnv(map[string]string{}, "/run/.containerenv").inContainer())
	assert.False(t, fakeEnv(map[string]string{"CODESPACES": "false"}).inContainer())
}

func TestZeroDetectorUsesProcessEnvironment(t *testing.T) {
	t.Setenv("TERMUX_VERSION", "")
	var d Detector
	require.True(t, d.IsConstrained())
	assert.False(t, d.IsVectorSearchAvailable(context.Background()), "zero detector has no probes")
}
