// Copyright (c) The a0 Authors. All rights reserved.
// Licensed under the MIT License.

package platform

// ExcludedTools returns the names of agent tools that must not be offered on
// this platform. The list is currently always empty.
//
// TODO: exclude the browser agent tools once neither browser automation
// backend is available.
func (d *Detector) ExcludedTools() []string {
	return []string{}
}

// FilterTools returns the names not excluded on this platform, in their
// original order.
func (d *Detector) FilterTools(names []string) []string {
	return filterNames(names, d.ExcludedTools())
}

func filterNames(names, excluded []string) []string {
	skip := make(map[string]struct{}, len(excluded))
	for _, name := range excluded {
		skip[name] = struct{}{}
	}

	kept := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := skip[name]; ok {
			continue
		}
		kept = append(kept, name)
	}
	return kept
}

// ExcludedTools returns the tools excluded on the current platform.
func ExcludedTools() []string {
	return NewDetector().ExcludedTools()
}

// FilterTools drops the tools excluded on the current platform.
func FilterTools(names []string) []string {
	return NewDetector().FilterTools(names)
}
