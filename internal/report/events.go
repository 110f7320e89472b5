// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package report

import "time"

// EventType represents the type of execution event.
type EventType int

const (
	// EventMacroStarted indicates a macro expansion has begun.
	EventMacroStarted EventType = iota
	// EventMacroCompleted indicates a macro and all of its steps completed.
	EventMacroCompleted
	// EventMacroCall indicates a nested macro is about to be expanded.
	EventMacroCall
	// EventCommandStarted indicates a literal command is about to run.
	EventCommandStarted
	// EventCommandResult carries the record of one command execution.
	EventCommandResult
	// EventDryRun indicates a command was reported but not executed.
	EventDryRun
	// EventWarning indicates a step-local failure skipped under continue-on-error.
	EventWarning
	// EventError indicates a fatal condition.
	EventError
)

// String implements the Stringer interface for EventType.
func (et EventType) String() string {
	switch et {
	case EventMacroStarted:
		return "macro-started"
	case EventMacroCompleted:
		return "macro-completed"
	case EventMacroCall:
		return "macro-call"
	case EventCommandStarted:
		return "command-started"
	case EventCommandResult:
		return "command-result"
	case EventDryRun:
		return "dry-run"
	case EventWarning:
		return "warning"
	case EventError:
		return "error"
	default:
		return "unknown"
	}
}

// Event is one execution update from the resolution engine.
// Fields beyond Type and Timestamp are type-specific.
type Event struct {
	Type      EventType
	Timestamp time.Time

	// Macro is the macro name for macro lifecycle events, or the called
	// macro name for EventMacroCall.
	Macro string

	// Command is the literal command text for command events.
	Command string

	// Index and Total describe progress over the literal commands of the
	// current macro. Macro calls are not counted.
	Index int
	Total int

	// ExitCode and Err describe the outcome of EventCommandResult.
	ExitCode int
	Err      error

	// StdOut and StdErr hold captured output for EventCommandResult.
	StdOut []byte
	StdErr []byte

	// Message is the rendered text for warnings and errors.
	Message string
}

// Reporter receives execution events.
// Implementations must tolerate events arriving in any order and must not
// assume a particular rendering or persistence.
type Reporter interface {
	Report(e Event)
	Close()
}

// NullReporter is a no-op Reporter.
type NullReporter struct{}

// Report implements Reporter by doing nothing.
func (NullReporter) Report(Event) {}

// Close implements Reporter by doing nothing.
func (NullReporter) Close() {}

// MultiReporter fans every event out to a set of reporters.
type MultiReporter struct {
	reporters []Reporter
}

// NewMulti creates a MultiReporter over the given reporters.
func NewMulti(reporters ...Reporter) *MultiReporter {
	return &MultiReporter{reporters: reporters}
}

// Report implements the Reporter interface.
func (m *MultiReporter) Report(e Event) {
	for _, r := range m.reporters {
		r.Report(e)
	}
}

// Close implements the Reporter interface.
func (m *MultiReporter) Close() {
	for _, r := range m.reporters {
		r.Close()
	}
}
