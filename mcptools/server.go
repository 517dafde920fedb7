// Copyright (c) The a0 Authors. All rights reserved.
// Licensed under the MIT License.

package mcptools

import (
	"context"
	"errors"
	"fmt"
	"io"
	stdlog "log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/agentzero/a0-core/browser"
	"github.com/agentzero/a0-core/config"
	"github.com/agentzero/a0-core/logutil"
	"github.com/agentzero/a0-core/platform"
)

// Tool names.
const (
	ToolPlatformFacts = "platform_facts"
	ToolFilterTools   = "filter_tools"
	ToolLocateBrowser = "locate_browser"
	ToolEnsureBrowser = "ensure_browser"
)

// Detector is the platform detection used by the tools.
type Detector interface {
	Detect(ctx context.Context) platform.Facts
	ExcludedTools() []string
	FilterTools(names []string) []string
}

// Resolver is the browser resolution used by the tools.
type Resolver interface {
	Locate() (string, bool)
	Resolve(ctx context.Context) (browser.Result, error)
	CacheDir() string
}

// Options configures a Server.
type Options struct {
	Name     string
	Version  string
	Detector Detector
	Resolver Resolver
	// RateLimit is calls per second and Burst the bucket size. Zero values
	// take the config defaults.
	RateLimit float64
	Burst     int
}

// Server serves the a0 tools over MCP.
type Server struct {
	detector Detector
	resolver Resolver
	limiter  *RateLimiter
	mcp      *server.MCPServer
}

var log = logutil.NewLogger("mcp")

// NewServer builds a Server with every tool registered.
func NewServer(opts Options) *Server {
	if opts.Name == "" {
		opts.Name = "a0"
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = config.DefaultMCPRateLimit
	}
	if opts.Burst <= 0 {
		opts.Burst = config.DefaultMCPBurst
	}
	if opts.Detector == nil {
		opts.Detector = platform.NewDetector()
	}
	if opts.Resolver == nil {
		opts.Resolver = browser.New(browser.Options{})
	}

	s := &Server{
		detector: opts.Detector,
		resolver: opts.Resolver,
		limiter:  NewRateLimiter(opts.Burst, opts.RateLimit),
		mcp: server.NewMCPServer(opts.Name, opts.Version,
			server.WithToolCapabilities(false),
			server.WithRecovery(),
		),
	}

	s.mcp.AddTool(
		mcp.NewTool(ToolPlatformFacts,
			mcp.WithDescription("Report whether the host is a constrained mobile terminal (Android/Termux) and which optional capabilities are available."),
			mcp.WithReadOnlyHintAnnotation(true),
		),
		s.limited(ToolPlatformFacts, s.handlePlatformFacts),
	)
	s.mcp.AddTool(
		mcp.NewTool(ToolFilterTools,
			mcp.WithDescription("Drop the tool names that are unavailable on this platform, preserving order."),
			mcp.WithArray("names",
				mcp.Required(),
				mcp.Description("Tool names to filter"),
				mcp.Items(map[string]any{"type": "string"}),
			),
			mcp.WithReadOnlyHintAnnotation(true),
		),
		s.limited(ToolFilterTools, s.handleFilterTools),
	)
	s.mcp.AddTool(
		mcp.NewTool(ToolLocateBrowser,
			mcp.WithDescription("Find the headless Chromium binary without installing anything."),
			mcp.WithReadOnlyHintAnnotation(true),
		),
		s.limited(ToolLocateBrowser, s.handleLocateBrowser),
	)
	s.mcp.AddTool(
		mcp.NewTool(ToolEnsureBrowser,
			mcp.WithDescription("Find the headless Chromium binary, installing it with Playwright if missing."),
			mcp.WithReadOnlyHintAnnotation(false),
			mcp.WithOpenWorldHintAnnotation(true),
		),
		s.limited(ToolEnsureBrowser, s.handleEnsureBrowser),
	)
	return s
}

// MCPServer returns the underlying MCP server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// ServeStdio serves JSON-RPC on in and out until ctx is done or in closes.
func (s *Server) ServeStdio(ctx context.Context, in io.Reader, out io.Writer, errOut io.Writer) error {
	stdio := server.NewStdioServer(s.mcp)
	stdio.SetErrorLogger(stdlog.New(errOut, "", 0))
	log.Info("serving MCP on stdio")
	return stdio.Listen(ctx, in, out)
}

func (s *Server) limited(name string, next server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if err := s.limiter.CheckRateLimit(name); err != nil {
			log.Warn("tool call rejected", "tool", name, "error", err)
			return mcp.NewToolResultError(err.Error()), nil
		}
		log.Debug("tool call", "tool", name)
		return next(ctx, request)
	}
}

func (s *Server) handlePlatformFacts(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return MarshalToolResult(s.detector.Detect(ctx))
}

// FilterResult is the filter_tools response.
type FilterResult struct {
	Tools    []string `json:"tools"`
	Excluded []string `json:"excluded"`
}

func (s *Server) handleFilterTools(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	names, err := GetStringSliceParam(GetArgsMap(request), "names")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return MarshalToolResult(FilterResult{
		Tools:    s.detector.FilterTools(names),
		Excluded: s.detector.ExcludedTools(),
	})
}

// LocateResult is the locate_browser response.
type LocateResult struct {
	Found    bool   `json:"found"`
	Path     string `json:"path,omitempty"`
	CacheDir string `json:"cacheDir"`
}

func (s *Server) handleLocateBrowser(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, ok := s.resolver.Locate()
	return MarshalToolResult(LocateResult{Found: ok, Path: path, CacheDir: s.resolver.CacheDir()})
}

func (s *Server) handleEnsureBrowser(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	res, err := s.resolver.Resolve(ctx)
	if err != nil {
		var installErr *browser.InstallationError
		if errors.As(err, &installErr) {
			return mcp.NewToolResultError(installErr.Details()), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("failed to ensure browser: %v", err)), nil
	}
	return MarshalToolResult(res)
}
