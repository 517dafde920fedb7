// Copyright (c) The a0 Authors. All rights reserved.
// Licensed under the MIT License.

// Package security validates inputs that end up executed or trusted:
// configuration files must not be writable by other users, and command
// names taken from configuration must not carry shell metacharacters.
package security
