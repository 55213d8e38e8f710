// Copyright 2024 the rlox authors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

// Package envir names the environment variables rlox reads.
package envir

const (
	RloxDebug   = "RLOX_DEBUG"
	RloxNoColor = "RLOX_NO_COLOR"
)
