// Copyright (c) The a0 Authors. All rights reserved.
// Licensed under the MIT License.

package platform

import (
	"context"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	a0testutil "github.com/agentzero/a0-core/testutil"
)

func dockerDaemon(t *testing.T, tls bool) *httptest.Server {
	t.Helper()
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/_ping" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Api-Version", "1.47")
		_, _ = w.Write([]byte("OK"))
	})
	var server *httptest.Server
	if tls {
		server = httptest.NewTLSServer(handler)
	} else {
		server = httptest.NewServer(handler)
	}
	t.Cleanup(server.Close)
	return server
}

// tcpHost converts a test server URL into a DOCKER_HOST value.
func tcpHost(server *httptest.Server) string {
	return "tcp://" + server.Listener.Addr().String()
}

// envFunc adapts a map to the getenv signature.
func envFunc(env map[string]string) func(string) string {
	return func(key string) string { return env[key] }
}

// writeDockerCerts stores the server certificate as ca.pem and cert.pem with
// its key as key.pem, in the layout DOCKER_CERT_PATH expects.
func writeDockerCerts(t *testing.T, server *httptest.Server) string {
	t.Helper()
	dir := a0testutil.TempDir(t)
	cert := server.TLS.Certificates[0]
	key, err := x509.MarshalPKCS8PrivateKey(cert.PrivateKey)
	require.NoError(t, err)

	certPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: server.Certificate().Raw})
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ca.pem"), certPEM, 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cert.pem"), certPEM, 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "key.pem"),
		pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: key}), 0o600))
	return dir
}

func TestPingDocker(t *testing.T) {
	server := dockerDaemon(t, false)
	require.NoError(t, PingDocker(context.Background(), envFunc(map[string]string{EnvDockerHost: tcpHost(server)})))
}

func TestPingDockerTLS(t *testing.T) {
	server := dockerDaemon(t, true)
	env := map[string]string{
		EnvDockerHost:      tcpHost(server),
		EnvDockerTLSVerify: "1",
		EnvDockerCertPath:  writeDockerCerts(t, server),
	}
	require.NoError(t, PingDocker(context.Background(), envFunc(env)))

	delete(env, EnvDockerCertPath)
	delete(env, EnvDockerTLSVerify)
	assert.Error(t, PingDocker(context.Background(), envFunc(env)), "plain HTTP against a TLS daemon")
}

func TestPingDockerFailures(t *testing.T) {
	unhealthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer unhealthy.Close()

	ctx := context.Background()
	assert.Error(t, PingDocker(ctx, envFunc(map[string]string{EnvDockerHost: tcpHost(unhealthy)})))
	assert.Error(t, PingDocker(ctx, envFunc(map[string]string{
		EnvDockerHost: "unix://" + filepath.Join(t.TempDir(), "missing.sock"),
	})))
	assert.Error(t, PingDocker(ctx, envFunc(map[string]string{EnvDockerHost: "bogus"})))
}

func TestContainerRuntimeProbeUsesDockerHost(t *testing.T) {
	server := dockerDaemon(t, false)

	env := map[string]string{EnvDockerHost: tcpHost(server)}
	d := fakeEnv(env)
	d.Probes = DefaultProbes(d.LookupEnv)
	assert.True(t, d.IsContainerRuntimeAvailable(context.Background()))

	env[EnvDockerHost] = "unix://" + filepath.Join(t.TempDir(), "docker.sock")
	d.Probes = DefaultProbes(d.LookupEnv)
	assert.False(t, d.IsContainerRuntimeAvailable(context.Background()))
}

func TestFindFAISSLibrary(t *testing.T) {
	empty := a0testutil.TempDir(t)
	withLib := a0testutil.TempDir(t)
	a0testutil.WriteFile(t, withLib, "libfaiss_c.so.1")

	path, ok := FindFAISSLibrary([]string{filepath.Join(empty, "missing"), empty, withLib})
	require.True(t, ok)
	assert.Equal(t, filepath.Join(withLib, "libfaiss_c.so.1"), path)

	_, ok = FindFAISSLibrary([]string{empty})
	assert.False(t, ok)
}

func TestVectorSearchProbeReadsPrefix(t *testing.T) {
	prefix := a0testutil.TempDir(t)
	a0testutil.WriteFile(t, prefix, "lib/libfaiss.so")

	d := fakeEnv(map[string]string{EnvPrefix: prefix})
	d.Probes = DefaultProbes(d.LookupEnv)
	assert.True(t, d.IsVectorSearchAvailable(context.Background()))
}

func TestLibrarySearchDirsOrder(t *testing.T) {
	env := map[string]string{
		"LD_LIBRARY_PATH": "/opt/a" + string(filepath.ListSeparator) + "/opt/b",
		EnvPrefix:         "/data/data/com.termux/files/usr",
	}
	dirs := librarySearchDirs(func(k string) string { return env[k] })
	require.GreaterOrEqual(t, len(dirs), 2)
	assert.Equal(t, "/opt/a", dirs[0])
	assert.Equal(t, "/opt/b", dirs[1])
}

func TestBrowserUseProbe(t *testing.T) {
	bin := a0testutil.TempDir(t)
	t.Setenv("PATH", bin)
	t.Setenv("HOME", a0testutil.TempDir(t))

	probes := DefaultProbes(func(string) (string, bool) { return "", false })
	assert.False(t, probes.BrowserUse(context.Background()))

	a0testutil.WriteExecutable(t, bin, "browser-use")
	assert.True(t, probes.BrowserUse(context.Background()))
}

func TestBrowserUseProbeSearchesOutsidePath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("home bin directories are unix only")
	}
	home := a0testutil.TempDir(t)
	t.Setenv("PATH", a0testutil.TempDir(t))
	t.Setenv("HOME", home)
	a0testutil.WriteExecutable(t, home, ".local/bin/browser-use")

	probes := DefaultProbes(func(string) (string, bool) { return "", false })
	assert.True(t, probes.BrowserUse(context.Background()))
}

func TestPlaywrightProbeAcceptsCLI(t *testing.T) {
	bin := a0testutil.TempDir(t)
	t.Setenv("PATH", bin)
	a0testutil.WriteExecutable(t, bin, "playwright")

	probes := DefaultProbes(func(string) (string, bool) { return "", false })
	assert.True(t, probes.Playwright(context.Background()))
}

func TestProbeMetrics(t *testing.T) {
	available := probeTotal.WithLabelValues("test_probe", "available")
	unavailable := probeTotal.WithLabelValues("test_probe", "unavailable")
	beforeOK := testutil.ToFloat64(available)
	beforeFail := testutil.ToFloat64(unavailable)

	ctx := context.Background()
	Probe(func(context.Context) bool { return true }).check(ctx, "test_probe")
	Probe(func(context.Context) bool { panic("boom") }).check(ctx, "test_probe")
	Probe(nil).check(ctx, "test_probe")

	assert.Equal(t, beforeOK+1, testutil.ToFloat64(available))
	assert.Equal(t, beforeFail+2, testutil.ToFloat64(unavailable))
}
