// Copyright 2024 the rlox authors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package midcobra

import (
	"errors"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/rlox-lang/rlox/internal/debug"
	"github.com/rlox-lang/rlox/internal/loxcli/usererr"
	"github.com/rlox-lang/rlox/internal/ux"
)

type DebugMiddleware struct {
	flag *pflag.Flag
}

var _ Middleware = (*DebugMiddleware)(nil)

func (d *DebugMiddleware) AttachToFlag(flags *pflag.FlagSet, flagName string) {
	flags.Bool(
		flagName,
		false,
		"Show full stack traces on errors",
	)
	d.flag = flags.Lookup(flagName)
	d.flag.Hidden = true
}

func (d *DebugMiddleware) preRun(cmd *cobra.Command, args []string) {
	if d == nil {
		return
	}

	if d.flag.Changed {
		strVal := d.flag.Value.String()
		if enabled, _ := strconv.ParseBool(strVal); enabled {
			debug.Enable()
		}
	}
}

func (d *DebugMiddleware) postRun(cmd *cobra.Command, args []string, runErr error) {
	if runErr == nil {
		return
	}

	// Script errors were already reported line by line while the script
	// ran; repeating them here would just be noise.
	var exitErr *usererr.ExitError
	if errors.As(runErr, &exitErr) {
		debug.Log("exiting with code %d: %+v", exitErr.ExitCode(), runErr)
		return
	}

	if userErr, hasUserErr := usererr.Extract(runErr); hasUserErr {
		ux.Ferror(cmd.ErrOrStderr(), "%s\n", userErr.Error())
	} else {
		ux.Ferror(cmd.ErrOrStderr(), "%v\n", runErr)
	}
	debug.Log("%+v", runErr)
}
