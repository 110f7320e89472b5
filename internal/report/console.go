// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"

	"github.com/matt-FFFFFF/remac/internal/color"
)

var _ Reporter = (*ConsoleReporter)(nil)

// ConsoleReporter renders execution events as progress lines.
// Informational lines go to w, warnings and errors to errW.
type ConsoleReporter struct {
	w       io.Writer
	errW    io.Writer
	verbose bool
}

// NewConsole creates a ConsoleReporter.
// When verbose is set, captured command output is echoed after each command.
func NewConsole(w, errW io.Writer, verbose bool) *ConsoleReporter {
	return &ConsoleReporter{w: w, errW: errW, verbose: verbose}
}

// Report implements the Reporter interface.
func (c *ConsoleReporter) Report(e Event) {
	switch e.Type {
	case EventMacroStarted:
		fmt.Fprintf(c.w, "%s %s\n", color.Colorize("Executing macro:", color.Bold), e.Macro)
	case EventMacroCompleted:
		fmt.Fprintf(c.w, "Macro %q completed successfully\n", e.Macro)
	case EventMacroCall:
		fmt.Fprintf(c.w, "Calling macro: %s\n", e.Macro)
	case EventCommandStarted:
		fmt.Fprintf(c.w, "Running command [%d/%d]: %s\n", e.Index, e.Total, e.Command)
	case EventDryRun:
		fmt.Fprintf(c.w, "%s Would execute: %s\n", color.Colorize("[DRY RUN]", color.FgCyan), e.Command)
	case EventCommandResult:
		c.commandResult(e)
	case EventWarning:
		fmt.Fprintf(c.w, "%s %s\n", color.Colorize("[WARNING]", color.FgYellow), e.Message)
	case EventError:
		fmt.Fprintf(c.errW, "%s %s\n", color.Colorize("[ERROR]", color.FgRed), e.Message)
	}
}

// Close implements the Reporter interface.
func (c *ConsoleReporter) Close() {}

func (c *ConsoleReporter) commandResult(e Event) {
	if c.verbose {
		if len(e.StdOut) > 0 {
			fmt.Fprintf(c.w, "Command output:\n%s", normalizeTrailingNewline(e.StdOut))
		}

		if len(e.StdErr) > 0 {
			fmt.Fprintf(c.errW, "Command errors:\n%s", normalizeTrailingNewline(e.StdErr))
		}
	}

	switch {
	case e.Err != nil:
		fmt.Fprintf(c.errW, "%s Error executing command %q: %v\n",
			color.Colorize("[ERROR]", color.FgRed), e.Command, e.Err)
	case e.ExitCode != 0:
		fmt.Fprintf(c.errW, "%s Command failed with exit code %d: %s\n",
			color.Colorize("[ERROR]", color.FgRed), e.ExitCode, e.Command)
	default:
		fmt.Fprintf(c.w, "Command completed successfully: %s\n", e.Command)
	}
}

func normalizeTrailingNewline(b []byte) string {
	s := string(b)
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}

	return s
}
