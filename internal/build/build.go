// Copyright 2024 the rlox authors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

// Package build holds version metadata stamped into release binaries.
package build

// Variables in this file are set via ldflags.
var (
	Version    = "0.0.0-dev"
	Commit     = "none"
	CommitDate = "unknown"
)
