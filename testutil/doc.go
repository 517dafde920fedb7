// Copyright (c) The a0 Authors. All rights reserved.
// Licensed under the MIT License.

// Package testutil provides common testing utilities for a0 packages:
// temporary directories, fake executables, and stdout capture.
package testutil
