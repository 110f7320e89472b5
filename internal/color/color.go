// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color provides ANSI colorization for console output.
// The NO_COLOR and FORCE_COLOR environment variables override terminal
// detection, which is done with the golang.org/x/term package.
package color

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Code represents an ANSI control code for text formatting.
type Code int

// Control codes for text formatting.
const (
	Reset Code = iota
	Bold
	Faint
)

// Foreground text colors.
const (
	FgBlack Code = iota + 30
	FgRed
	FgGreen
	FgYellow
	FgBlue
	FgMagenta
	FgCyan
	FgWhite
)

// Foreground Hi-Intensity text colors.
const (
	FgHiBlack Code = iota + 90
	FgHiRed
	FgHiGreen
	FgHiYellow
	FgHiBlue
	FgHiMagenta
	FgHiCyan
	FgHiWhite
)

const (
	// NoColor is the environment variable that disables color output.
	NoColor = "NO_COLOR"
	// ForceColor is the environment variable that forces color output.
	ForceColor = "FORCE_COLOR"
	prefix     = "\033["
	suffix     = "m"
	reset      = "\033[0m"
)

var enabled bool

func init() {
	enabled = isColorEnabled()
}

// Enabled reports whether color output is enabled.
// It is initialized in package init().
func Enabled() bool {
	return enabled
}

// Colorize returns a string with ANSI color codes applied.
// It appends the reset code at the end of the string to reset the color.
func Colorize(str string, colorCodes ...Code) string {
	if !enabled {
		return str
	}

	sb := strings.Builder{}
	sb.WriteString(prefix)

	for i, code := range colorCodes {
		if i > 0 {
			sb.WriteString(";")
		}

		sb.WriteString(strconv.Itoa(int(code)))
	}

	sb.WriteString(suffix)
	sb.WriteString(str)
	sb.WriteString(reset)

	return sb.String()
}

func isColorEnabled() bool {
	if nc := os.Getenv(NoColor); nc != "" {
		return false
	}

	if fc := os.Getenv(ForceColor); fc != "" {
		return true
	}

	return term.IsTerminal(int(os.Stdout.Fd()))
}
