// Copyright (c) The a0 Authors. All rights reserved.
// Licensed under the MIT License.

package platform

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/docker/docker/client"
	"github.com/playwright-community/playwright-go"

	"github.com/agentzero/a0-core/cmdutil"
	"github.com/agentzero/a0-core/fileutil"
	"github.com/agentzero/a0-core/pathutil"
)

// Docker connection settings read from the environment.
const (
	EnvDockerHost       = "DOCKER_HOST"
	EnvDockerAPIVersion = "DOCKER_API_VERSION"
	EnvDockerCertPath   = "DOCKER_CERT_PATH"
	EnvDockerTLSVerify  = "DOCKER_TLS_VERIFY"

	// dockerPingTimeout bounds the ping when ctx has no deadline.
	dockerPingTimeout = 3 * time.Second
)

// Probe checks whether one optional capability is usable.
type Probe func(ctx context.Context) bool

// Probes groups the capability checks consulted by a Detector.
// A nil probe reports false.
type Probes struct {
	ContainerRuntime Probe
	Playwright       Probe
	BrowserUse       Probe
	VectorSearch     Probe
}

// check runs p, converting a nil probe or a panic into false.
func (p Probe) check(ctx context.Context, name string) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Debug("capability probe panicked", "probe", name, "panic", r)
			ok = false
		}
		recordProbe(name, ok)
	}()

	if p == nil {
		return false
	}
	return p(ctx)
}

// DefaultProbes returns the production probes reading the environment
// through lookupEnv.
func DefaultProbes(lookupEnv func(string) (string, bool)) Probes {
	getenv := func(key string) string {
		v, _ := lookupEnv(key)
		return v
	}
	return Probes{
		ContainerRuntime: func(ctx context.Context) bool {
			if err := PingDocker(ctx, getenv); err != nil {
				log.Debug("container runtime unavailable", "host", getenv(EnvDockerHost), "error", err)
				return false
			}
			return true
		},
		Playwright: func(ctx context.Context) bool {
			if path := findTool("playwright"); path != "" {
				log.Debug("playwright cli found", "path", path)
				return true
			}
			return playwrightDriverProbe(ctx)
		},
		BrowserUse: func(context.Context) bool {
			return findTool("browser-use") != ""
		},
		VectorSearch: func(context.Context) bool {
			path, ok := FindFAISSLibrary(librarySearchDirs(getenv))
			if ok {
				log.Debug("vector search library found", "path", path)
			}
			return ok
		},
	}
}

// PingDocker connects to the Docker Engine API the way the docker CLI's
// environment configures it and pings the daemon. getenv supplies
// DOCKER_HOST, DOCKER_API_VERSION, DOCKER_CERT_PATH and DOCKER_TLS_VERIFY.
func PingDocker(ctx context.Context, getenv func(string) string) error {
	cli, err := client.NewClientWithOpts(dockerClientOptions(getenv)...)
	if err != nil {
		return fmt.Errorf("failed to create docker client: %w", err)
	}
	defer cli.Close()

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, dockerPingTimeout)
		defer cancel()
	}

	if _, err := cli.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping docker: %w", err)
	}
	return nil
}

// dockerClientOptions mirrors client.FromEnv over getenv. TLS is enabled
// when DOCKER_CERT_PATH is set, or when DOCKER_TLS_VERIFY is set, in which
// case certificates default to ~/.docker.
func dockerClientOptions(getenv func(string) string) []client.Opt {
	host := getenv(EnvDockerHost)
	if host == "" {
		host = client.DefaultDockerHost
	}
	opts := []client.Opt{client.WithHost(host)}

	if v := getenv(EnvDockerAPIVersion); v != "" {
		opts = append(opts, client.WithVersion(v))
	} else {
		opts = append(opts, client.WithAPIVersionNegotiation())
	}

	certPath := getenv(EnvDockerCertPath)
	if certPath == "" && getenv(EnvDockerTLSVerify) != "" {
		if home, err := os.UserHomeDir(); err == nil {
			certPath = filepath.Join(home, ".docker")
		}
	}
	if certPath != "" {
		opts = append(opts, client.WithTLSClientConfig(
			filepath.Join(certPath, "ca.pem"),
			filepath.Join(certPath, "cert.pem"),
			filepath.Join(certPath, "key.pem"),
		))
	}
	return opts
}

// findTool looks for name on PATH, then in common install directories
// such as the Termux bin dir that PATH may omit.
func findTool(name string) string {
	if path := pathutil.FindToolInPath(name); path != "" {
		return path
	}
	return pathutil.SearchToolInSystemPath(name)
}

// playwrightDriverProbe reports whether the playwright-go driver is
// installed and starts.
func playwrightDriverProbe(ctx context.Context) bool {
	driver, err := playwright.NewDriver(&playwright.RunOptions{
		SkipInstallBrowsers: true,
		Verbose:             false,
		Stdout:              io.Discard,
		Stderr:              io.Discard,
	})
	if err != nil {
		log.Debug("playwright driver unavailable", "error", err)
		return false
	}

	// The driver CLI fails to start when the driver is missing.
	version := driver.Command("--version")
	err = cmdutil.Run(ctx, cmdutil.Command{Name: version.Path, Args: version.Args[1:]})
	if err != nil {
		log.Debug("playwright driver did not start", "error", err)
		return false
	}
	return true
}

// faissPatterns match the FAISS C API and core shared objects.
var faissPatterns = []string{
	"libfaiss_c.so*",
	"libfaiss.so*",
	"libfaiss_c.dylib",
	"libfaiss.dylib",
	"faiss_c.dll",
	"faiss.dll",
}

// FindFAISSLibrary returns the first FAISS shared library found in dirs.
func FindFAISSLibrary(dirs []string) (string, bool) {
	for _, dir := range dirs {
		if !fileutil.DirExists(dir) {
			continue
		}
		for _, pattern := range faissPatterns {
			if path, ok := fileutil.FirstGlobMatch(dir, pattern); ok {
				return path, true
			}
		}
	}
	return "", false
}

// librarySearchDirs lists directories the dynamic loader would consult,
// environment-provided entries first.
func librarySearchDirs(getenv func(string) string) []string {
	var dirs []string
	for _, key := range []string{"LD_LIBRARY_PATH", "DYLD_LIBRARY_PATH"} {
		for _, dir := range filepath.SplitList(getenv(key)) {
			if dir != "" {
				dirs = append(dirs, dir)
			}
		}
	}
	if runtime.GOOS == "windows" {
		return append(dirs, filepath.SplitList(getenv("PATH"))...)
	}
	for _, key := range []string{EnvPrefix, "CONDA_PREFIX", "VIRTUAL_ENV"} {
		if prefix := getenv(key); prefix != "" {
			dirs = append(dirs, filepath.Join(prefix, "lib"))
		}
	}
	dirs = append(dirs,
		"/usr/local/lib",
		"/usr/lib",
		"/usr/lib64",
		"/opt/homebrew/lib",
		filepath.Join("/usr/lib", archTriplet()),
	)
	return dirs
}

func archTriplet() string {
	switch runtime.GOARCH {
	case "arm64":
		return "aarch64-linux-gnu"
	case "arm":
		return "arm-linux-gnueabihf"
	default:
		return "x86_64-linux-gnu"
	}
}

// containerMarkers are files created by container runtimes inside guests.
var containerMarkers = []string{"/.dockerenv", "/run/.containerenv"}

// inContainer reports whether this process itself runs inside a container.
func (d *Detector) inContainer() bool {
	if d.getenv("CODESPACES") == "true" || d.getenv("REMOTE_CONTAINERS") == "true" {
		return true
	}
	if d.getenv("KUBERNETES_SERVICE_HOST") != "" {
		return true
	}
	for _, marker := range containerMarkers {
		if d.exists(marker) {
			return true
		}
	}
	return false
}
