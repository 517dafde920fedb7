// Copyright (c) The a0 Authors. All rights reserved.
// Licensed under the MIT License.

package mcptools

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// GetArgsMap extracts the arguments map from an MCP tool call request.
// Returns an empty map if arguments are nil or not a map.
func GetArgsMap(request mcp.CallToolRequest) map[string]any {
	if m, ok := request.Params.Arguments.(map[string]any); ok && m != nil {
		return m
	}
	return map[string]any{}
}

// GetStringSliceParam extracts a list of strings from the arguments map.
// It fails if the value is missing, not a list, or holds a non-string.
func GetStringSliceParam(args map[string]any, key string) ([]string, error) {
	val, ok := args[key]
	if !ok {
		return nil, fmt.Errorf("missing required parameter %q", key)
	}

	switch v := val.(type) {
	case []string:
		return v, nil
	case []any:
		out := make([]string, 0, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("parameter %q: element %d is %T, not a string", key, i, item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("parameter %q must be an array of strings", key)
	}
}

// MarshalToolResult marshals any value to JSON and returns it as an MCP tool result.
func MarshalToolResult(data any) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return mcp.NewToolResultError("failed to marshal result: " + err.Error()), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}
