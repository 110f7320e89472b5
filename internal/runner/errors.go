// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runner

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMacroNotFound is returned when a macro name has no definition.
	ErrMacroNotFound = errors.New("macro not found")
	// ErrCircularCall is returned when a macro transitively calls itself.
	// It is always fatal, never subject to continue-on-error.
	ErrCircularCall = errors.New("circular macro call detected")
	// ErrCommandFailed is returned when a command exits non-zero.
	ErrCommandFailed = errors.New("command failed")
	// ErrExecution is returned when the command executor could not run the
	// command at all.
	ErrExecution = errors.New("error executing command")
)

// CycleError reports a circular macro call. Chain holds every macro name on
// the cycle in call order, ending with the repeated name.
type CycleError struct {
	Chain []string
}

// Error implements the error interface.
func (e *CycleError) Error() string {
	return fmt.Sprintf("circular macro call detected in macro %q; call stack: %s",
		e.Chain[len(e.Chain)-1], strings.Join(e.Chain, " -> "))
}

// Unwrap allows errors.Is(err, ErrCircularCall).
func (e *CycleError) Unwrap() error {
	return ErrCircularCall
}

// NotFoundError reports a call to an undefined macro.
type NotFoundError struct {
	Name string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("macro %q not found", e.Name)
}

// Unwrap allows errors.Is(err, ErrMacroNotFound).
func (e *NotFoundError) Unwrap() error {
	return ErrMacroNotFound
}

// CommandError reports a command that exited non-zero.
type CommandError struct {
	Command  string
	ExitCode int
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	return fmt.Sprintf("command failed with exit code %d: %s", e.ExitCode, e.Command)
}

// Unwrap allows errors.Is(err, ErrCommandFailed).
func (e *CommandError) Unwrap() error {
	return ErrCommandFailed
}

// ExecutionError reports a command that could not be run at all, e.g. the
// shell could not be spawned. The fatal-vs-continue branching treats it
// identically to CommandError.
type ExecutionError struct {
	Command string
	Err     error
}

// Error implements the error interface.
func (e *ExecutionError) Error() string {
	return fmt.Sprintf("error executing command %q: %v", e.Command, e.Err)
}

// Unwrap returns the underlying executor error joined with ErrExecution.
func (e *ExecutionError) Unwrap() []error {
	return []error{ErrExecution, e.Err}
}
