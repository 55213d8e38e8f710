// Copyright 2024 the rlox authors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package loxcli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/rlox-lang/rlox/internal/debug"
	"github.com/rlox-lang/rlox/internal/fileutil"
	"github.com/rlox-lang/rlox/internal/lox"
	"github.com/rlox-lang/rlox/internal/lox/interp"
	"github.com/rlox-lang/rlox/internal/loxcli/usererr"
	"github.com/rlox-lang/rlox/internal/project"
	"github.com/rlox-lang/rlox/internal/ux"
)

type runCmdFlags struct {
	envFile string
	watch   bool
	list    bool
}

func runCmd() *cobra.Command {
	flags := runCmdFlags{}
	command := &cobra.Command{
		Use:   "run [<script.lox> | <name>]",
		Short: "Run a Lox script",
		Long: "Runs a Lox script to completion.\n\n" +
			"The argument is either a path to a .lox file or the name of a script " +
			"defined in rlox.json. With no argument, the project's entry script runs.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(cmd, args, flags)
		},
	}

	command.Flags().StringVar(
		&flags.envFile, "env-file", "", "load environment variables from a dotenv file before running")
	command.Flags().BoolVarP(
		&flags.watch, "watch", "w", false, "re-run the script whenever it changes")
	command.Flags().BoolVar(
		&flags.list, "list", false, "list the scripts defined in rlox.json")

	return command
}

func runScript(cmd *cobra.Command, args []string, flags runCmdFlags) error {
	if flags.list {
		return listScripts(cmd)
	}

	if flags.envFile != "" {
		if err := godotenv.Load(flags.envFile); err != nil {
			return usererr.WithUserMessage(err, "could not load env file %s", flags.envFile)
		}
	}

	path, err := resolveScript(args)
	if err != nil {
		return err
	}
	debug.Log("running script: %s", path)

	if flags.watch {
		return watchScript(cmd, path)
	}
	return runScriptFile(cmd, path)
}

// runScriptFile runs one script with a fresh interpreter and translates
// the outcome into the conventional interpreter exit codes.
func runScriptFile(cmd *cobra.Command, path string) error {
	runner := lox.NewRunner(cmd.OutOrStdout(), cmd.ErrOrStderr())
	return exitCodeError(runner.RunFile(path))
}

// exitCodeError wraps script failures with their sysexits-style code: 65
// for scan/parse errors, 70 for runtime errors.
func exitCodeError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, lox.ErrSyntax) {
		return usererr.NewExitError(usererr.CodeData, err)
	}
	var runtimeErr *interp.RuntimeError
	if errors.As(err, &runtimeErr) {
		return usererr.NewExitError(usererr.CodeSoftware, err)
	}
	return err
}

// resolveScript turns the argument into a script path: an existing file
// wins, then a script name from rlox.json, then the project entry when no
// argument was given.
func resolveScript(args []string) (string, error) {
	if len(args) == 0 {
		cfg, err := project.Open(".")
		if err != nil {
			return "", err
		}
		return cfg.EntryPath(), nil
	}

	arg := args[0]
	if fileutil.IsFile(arg) {
		return arg, nil
	}

	cfg, err := project.Open(".")
	if err != nil {
		return "", usererr.New("no such file %q and no rlox.json defining a script by that name", arg)
	}
	return cfg.Script(arg)
}

func listScripts(cmd *cobra.Command) error {
	cfg, err := project.Open(".")
	if err != nil {
		return err
	}
	names := cfg.ScriptNames()
	if len(names) == 0 {
		ux.Finfo(cmd.ErrOrStderr(), "no scripts defined in %s\n", project.DefaultName)
		return nil
	}
	for _, name := range names {
		path, _ := cfg.Scripts.Get(name)
		fmt.Fprintf(cmd.OutOrStdout(), "%-20s%s\n", name, path)
	}
	return nil
}

// watchScript runs the script, then re-runs it every time it is written.
// Script failures are reported but don't stop the watch; only watcher
// failures or context cancellation do.
func watchScript(cmd *cobra.Command, path string) error {
	reportRun := func() {
		if err := runScriptFile(cmd, path); err != nil {
			debug.Log("watched run failed: %v", err)
			ux.Fwarning(cmd.ErrOrStderr(), "run failed, waiting for the next change\n")
		}
	}
	reportRun()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return usererr.WithUserMessage(err, "could not start the file watcher")
	}
	defer watcher.Close()

	// Watch the directory rather than the file: editors that save by
	// rename would otherwise drop the watch after the first change.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return usererr.WithUserMessage(err, "could not watch %s", path)
	}
	ux.Finfo(cmd.ErrOrStderr(), "watching %s, press ctrl-c to stop\n", path)

	target, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			changed, err := filepath.Abs(event.Name)
			if err != nil || changed != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				reportRun()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return usererr.WithUserMessage(err, "file watcher failed")
		}
	}
}
