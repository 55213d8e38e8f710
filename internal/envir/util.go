// Copyright 2024 the rlox authors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package envir

import (
	"os"
	"strconv"
)

func IsDebugEnabled() bool {
	return isEnvEnabled(RloxDebug)
}

func IsColorDisabled() bool {
	return isEnvEnabled(RloxNoColor)
}

func isEnvEnabled(key string) bool {
	enabled, _ := strconv.ParseBool(os.Getenv(key))
	return enabled
}
