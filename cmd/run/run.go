// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package run

import (
	"context"
	"errors"
	"fmt"

	"github.com/matt-FFFFFF/remac/internal/ctxlog"
	"github.com/matt-FFFFFF/remac/internal/getfile"
	"github.com/matt-FFFFFF/remac/internal/macros"
	"github.com/matt-FFFFFF/remac/internal/osenv"
	"github.com/matt-FFFFFF/remac/internal/report"
	"github.com/matt-FFFFFF/remac/internal/runner"
	"github.com/matt-FFFFFF/remac/internal/shell"
	"github.com/urfave/cli/v3"
)

const (
	macroArg        = "macro"
	fileFlag        = "file"
	dryRunFlag      = "dry-run"
	verboseFlag     = "verbose"
	continueFlag    = "continue"
	logFileFlag     = "log-file"
	usageErrorCode  = 2
	genericExitCode = 1
)

// RunCmd is the command that executes a named macro.
var RunCmd = &cli.Command{
	Name:        "run",
	Description: "Execute a named macro from the definition file.",
	Usage:       "run a macro",
	Arguments: []cli.Argument{
		&cli.StringArg{
			Name:      macroArg,
			UsageText: "MACRO",
			Config: cli.StringConfig{
				TrimSpace: true,
			},
		},
	},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    fileFlag,
			Aliases: []string{"f"},
			Usage: "Path or go-getter URL of the macro definition file. " +
				"See https://github.com/hashicorp/go-getter for the URL syntax.",
			Value:    macros.DefaultFileName,
			OnlyOnce: true,
		},
		&cli.BoolFlag{
			Name:        dryRunFlag,
			Usage:       "Print commands without executing them",
			Value:       false,
			DefaultText: "false",
			OnlyOnce:    true,
		},
		&cli.BoolFlag{
			Name:        verboseFlag,
			Aliases:     []string{"v"},
			Usage:       "Echo command stdout and stderr to the console",
			Value:       false,
			DefaultText: "false",
			OnlyOnce:    true,
		},
		&cli.BoolFlag{
			Name:        continueFlag,
			Usage:       "Continue the run when a command or macro call fails",
			Value:       false,
			DefaultText: "false",
			OnlyOnce:    true,
		},
		&cli.StringFlag{
			Name:      logFileFlag,
			Usage:     "Append structured execution records to this file",
			TakesFile: true,
			OnlyOnce:  true,
		},
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	name := cmd.StringArg(macroArg)
	if name == "" {
		return cli.Exit("macro name is required for the run command", usageErrorCode)
	}

	set, err := loadDefinitions(ctx, cmd.String(fileFlag))
	if err != nil {
		return cli.Exit(err.Error(), genericExitCode)
	}

	rep := buildReporter(ctx, cmd)
	defer rep.Close()

	r := &runner.Runner{
		Source:          set,
		Executor:        &shell.OSExecutor{},
		Reporter:        rep,
		ContinueOnError: cmd.Bool(continueFlag),
		DryRun:          cmd.Bool(dryRunFlag),
		BaseEnv:         osenv.Environ(),
	}

	if err := r.Run(ctx, name); err != nil {
		// The reporter has already rendered the error in context.
		return cli.Exit("", exitCode(err))
	}

	return nil
}

// loadDefinitions retrieves and parses the definition file.
func loadDefinitions(ctx context.Context, src string) (macros.Set, error) {
	data, err := getfile.Get(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("%w: create a %s file in the current directory or pass --file", err, macros.DefaultFileName)
	}

	return macros.Parse(data)
}

// buildReporter assembles the console reporter and, when requested, the
// execution log. A log file that cannot be opened degrades to console-only
// reporting, it does not abort the run.
func buildReporter(ctx context.Context, cmd *cli.Command) report.Reporter {
	console := report.NewConsole(cmd.Writer, cmd.ErrWriter, cmd.Bool(verboseFlag))

	logFile := cmd.String(logFileFlag)
	if logFile == "" {
		return console
	}

	fr, err := report.NewFile(logFile)
	if err != nil {
		ctxlog.Error(ctx, "could not open log file, continuing without it", "path", logFile, "error", err)

		return console
	}

	return report.NewMulti(console, fr)
}

// exitCode maps a fatal run error to the process exit code.
// A failing command's own exit code is propagated when it carries one;
// every other fatal condition exits 1.
func exitCode(err error) int {
	var cmdErr *runner.CommandError
	if errors.As(err, &cmdErr) && cmdErr.ExitCode > 0 {
		return cmdErr.ExitCode
	}

	return genericExitCode
}
