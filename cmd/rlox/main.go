// Copyright 2024 the rlox authors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package main

import (
	"github.com/rlox-lang/rlox/internal/loxcli"
)

func main() {
	loxcli.Main()
}
