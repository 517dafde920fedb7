// Copyright (c) The a0 Authors. All rights reserved.
// Licensed under the MIT License.

package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExcludedToolsEmpty(t *testing.T) {
	for _, env := range []map[string]string{{}, {"TERMUX_VERSION": "1"}} {
		excluded := fakeEnv(env).ExcludedTools()
		assert.NotNil(t, excluded)
		assert.Empty(t, excluded)
	}
}

func TestFilterToolsIdentity(t *testing.T) {
	d := fakeEnv(map[string]string{"TERMUX_VERSION": "1"})

	names := []string{"code_execution", "browser_agent", "memory_save", "browser_agent"}
	assert.Equal(t, names, d.FilterTools(names))
	assert.Empty(t, d.FilterTools(nil))
}

func TestFilterNames(t *testing.T) {
	tests := []struct {
		name     string
		names    []string
		excluded []string
		want     []string
	}{
		{name: "nothing excluded", names: []string{"a", "b"}, want: []string{"a", "b"}},
		{name: "preserves order", names: []string{"c", "a", "b", "a"}, excluded: []string{"a"}, want: []string{"c", "b"}},
		{name: "unknown exclusions ignored", names: []string{"a"}, excluded: []string{"z"}, want: []string{"a"}},
		{name: "all excluded", names: []string{"a"}, excluded: []string{"a"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, filterNames(tt.names, tt.excluded))
		})
	}
}

func TestFilterToolsPackageLevel(t *testing.T) {
	assert.Equal(t, []string{"x"}, FilterTools([]string{"x"}))
	assert.Empty(t, ExcludedTools())
}
