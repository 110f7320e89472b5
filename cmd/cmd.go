// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for the module.
package cmd

import (
	"fmt"
	"os"

	"github.com/matt-FFFFFF/remac"
	"github.com/matt-FFFFFF/remac/cmd/list"
	"github.com/matt-FFFFFF/remac/cmd/run"
	"github.com/urfave/cli/v3"
)

// RootCmd is the root command for the CLI.
var RootCmd = &cli.Command{
	Commands: []*cli.Command{
		run.RunCmd,
		list.ListCmd,
	},
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Name:      "remac",
	Description: `Remac runs your repetitive dev workflows with a single command.
Macros are named, reusable sequences of shell commands defined in a YAML file,
and a macro can call other macros to compose larger workflows. Each macro can
declare its own environment variable overrides, layered over the ambient
process environment.`,
	Usage:     "remac run mymacro",
	Version:   fmt.Sprintf("%s (commit: %s)", remac.Version, remac.Commit),
	Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
	Authors: []any{
		"Matt White (matt-FFFFFF)",
	},
	EnableShellCompletion: true,
}
