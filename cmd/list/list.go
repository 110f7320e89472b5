// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package list

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/remac/internal/getfile"
	"github.com/matt-FFFFFF/remac/internal/macros"
	"github.com/urfave/cli/v3"
)

const fileFlag = "file"

// ListCmd is the command that prints all macro names from the definition file.
var ListCmd = &cli.Command{
	Name:        "list",
	Description: "List the macros defined in the definition file.",
	Usage:       "list available macros",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     fileFlag,
			Aliases:  []string{"f"},
			Usage:    "Path or go-getter URL of the macro definition file",
			Value:    macros.DefaultFileName,
			OnlyOnce: true,
		},
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	data, err := getfile.Get(ctx, cmd.String(fileFlag))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	set, err := macros.Parse(data)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if len(set) == 0 {
		fmt.Fprintln(cmd.Writer, "No macros found in the definition file.")

		return nil
	}

	fmt.Fprintln(cmd.Writer, "Available macros:")

	for _, name := range set.Names() {
		fmt.Fprintf(cmd.Writer, "  - %s\n", name)
	}

	return nil
}
