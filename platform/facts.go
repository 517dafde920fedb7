// Copyright (c) The a0 Authors. All rights reserved.
// Licensed under the MIT License.

package platform

import (
	"context"
	"runtime"
)

// Facts is a snapshot of every platform fact. It is recomputed on each call
// to Detect and never cached.
type Facts struct {
	Constrained      bool     `json:"constrained"`
	ContainerRuntime bool     `json:"containerRuntime"`
	Playwright       bool     `json:"playwright"`
	BrowserUse       bool     `json:"browserUse"`
	VectorSearch     bool     `json:"vectorSearch"`
	InContainer      bool     `json:"inContainer"`
	OS               string   `json:"os"`
	Arch             string   `json:"arch"`
	Host             HostInfo `json:"host"`
}

// HostInfo describes the operating system as reported by the kernel.
// Fields are empty when host information is unavailable.
type HostInfo struct {
	Hostname        string `json:"hostname,omitempty"`
	Platform        string `json:"platform,omitempty"`
	PlatformVersion string `json:"platformVersion,omitempty"`
	KernelVersion   string `json:"kernelVersion,omitempty"`
	Virtualization  string `json:"virtualization,omitempty"`
}

// Detect evaluates every fact.
func (d *Detector) Detect(ctx context.Context) Facts {
	return Facts{
		Constrained:      d.IsConstrained(),
		ContainerRuntime: d.IsContainerRuntimeAvailable(ctx),
		Playwright:       d.IsBrowserAutomationAvailable(ctx, BackendPlaywright),
		BrowserUse:       d.IsBrowserAutomationAvailable(ctx, BackendBrowserUse),
		VectorSearch:     d.IsVectorSearchAvailable(ctx),
		InContainer:      d.inContainer(),
		OS:               runtime.GOOS,
		Arch:             runtime.GOARCH,
		Host:             d.hostInfo(ctx),
	}
}

func (d *Detector) hostInfo(ctx context.Context) (info HostInfo) {
	if d.Host == nil {
		return info
	}
	defer func() {
		if r := recover(); r != nil {
			log.Debug("host info panicked", "panic", r)
			info = HostInfo{}
		}
	}()

	stat, err := d.Host(ctx)
	if err != nil || stat == nil {
		log.Debug("host info unavailable", "error", err)
		return info
	}
	return HostInfo{
		Hostname:        stat.Hostname,
		Platform:        stat.Platform,
		PlatformVersion: stat.PlatformVersion,
		KernelVersion:   stat.KernelVersion,
		Virtualization:  stat.VirtualizationSystem,
	}
}

// Detect evaluates every fact for the current process.
func Detect(ctx context.Context) Facts {
	return NewDetector().Detect(ctx)
}
