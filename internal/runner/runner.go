// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/remac/internal/ctxlog"
	"github.com/matt-FFFFFF/remac/internal/macros"
	"github.com/matt-FFFFFF/remac/internal/osenv"
	"github.com/matt-FFFFFF/remac/internal/report"
	"github.com/matt-FFFFFF/remac/internal/shell"
)

// Runner is the macro resolution engine. It expands a macro into its
// effective command sequence depth-first, strictly sequentially, and applies
// the failure policy per step.
type Runner struct {
	// Source supplies macro definitions by name.
	Source macros.Set
	// Executor runs literal commands. Never invoked in dry-run mode.
	Executor shell.Executor
	// Reporter receives progress, warnings, errors and command records.
	Reporter report.Reporter
	// ContinueOnError converts step-local failures into skip-and-warn.
	// Validation and cycle errors are structural and always fatal.
	ContinueOnError bool
	// DryRun reports commands without executing them.
	DryRun bool
	// BaseEnv is the ambient environment for the top-level scope.
	// When nil the process environment is used.
	BaseEnv map[string]string
}

// runState is the per-invocation execution context. The call stack is shared
// by reference across the whole recursive expansion; skipped collects the
// step-local failures tolerated under continue-on-error.
type runState struct {
	stack   *CallStack
	skipped *multierror.Error
}

// Run executes the named macro with a fresh call stack.
// The returned error, if any, is fatal to the run; failures tolerated under
// continue-on-error are reported as warnings and do not surface here.
func (r *Runner) Run(ctx context.Context, name string) error {
	raw, ok := r.Source[name]
	if !ok {
		err := &NotFoundError{Name: name}
		r.errorf("%s", err.Error())

		return err
	}

	base := r.BaseEnv
	if base == nil {
		base = osenv.Environ()
	}

	st := &runState{stack: &CallStack{}}

	if err := r.execute(ctx, name, raw, st, base); err != nil {
		return err
	}

	if skipped := st.skipped.ErrorOrNil(); skipped != nil {
		r.warnf("run completed with %d skipped failure(s)", st.skipped.Len())
		ctxlog.Warn(ctx, "skipped failures", "error", skipped)
	}

	return nil
}

// execute expands one macro. env is the effective environment of the calling
// scope; the macro's own overrides are layered on top for its commands and
// for every macro it calls. Push and pop are balanced on every exit path.
func (r *Runner) execute(ctx context.Context, name string, raw any, st *runState, env map[string]string) error {
	if st.stack.Contains(name) {
		err := &CycleError{Chain: append(st.stack.Names(), name)}
		r.errorf("%s", err.Error())

		return err
	}

	st.stack.Push(name)
	defer st.stack.Pop()

	ctxlog.Debug(ctx, "expanding macro", "macro", name, "stack", st.stack.Chain())
	r.report(report.Event{Type: report.EventMacroStarted, Macro: name})

	def, err := macros.Normalize(name, raw)
	if err != nil {
		r.errorf("%s", err.Error())

		return err
	}

	env = osenv.Merge(env, def.Env)
	total := def.CommandCount()
	index := 0

	for _, step := range def.Steps {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		switch step.Kind {
		case macros.StepCall:
			if err := r.expandCall(ctx, step.Call, st, env); err != nil {
				return err
			}
		case macros.StepCommand:
			index++

			if err := r.runCommand(ctx, step.Command, index, total, st, env); err != nil {
				return err
			}
		}
	}

	r.report(report.Event{Type: report.EventMacroCompleted, Macro: name})

	return nil
}

// expandCall resolves and recursively executes a called macro. The recursion
// shares the run's call stack, so cycles spanning multiple levels are caught;
// the child environment starts from the current scope's effective environment.
func (r *Runner) expandCall(ctx context.Context, call string, st *runState, env map[string]string) error {
	r.report(report.Event{Type: report.EventMacroCall, Macro: call})

	raw, ok := r.Source[call]
	if !ok {
		err := &NotFoundError{Name: call}
		r.errorf("%s", err.Error())

		if !r.ContinueOnError {
			return err
		}

		r.warnf("skipping missing macro call: %s", call)
		st.skipped = multierror.Append(st.skipped, err)

		return nil
	}

	return r.execute(ctx, call, raw, st, env)
}

// runCommand executes one literal command and applies the failure policy.
func (r *Runner) runCommand(ctx context.Context, command string, index, total int, st *runState, env map[string]string) error {
	r.report(report.Event{
		Type:    report.EventCommandStarted,
		Command: command,
		Index:   index,
		Total:   total,
	})

	if r.DryRun {
		r.report(report.Event{Type: report.EventDryRun, Command: command})

		return nil
	}

	res, err := r.Executor.Run(ctx, command, env)
	if err != nil {
		execErr := &ExecutionError{Command: command, Err: err}
		r.report(report.Event{
			Type:     report.EventCommandResult,
			Command:  command,
			ExitCode: -1,
			Err:      execErr,
		})

		return r.stepFailure(st, execErr, command)
	}

	r.report(report.Event{
		Type:     report.EventCommandResult,
		Command:  command,
		ExitCode: res.ExitCode,
		StdOut:   res.StdOut,
		StdErr:   res.StdErr,
	})

	if res.ExitCode != 0 {
		return r.stepFailure(st, &CommandError{Command: command, ExitCode: res.ExitCode}, command)
	}

	return nil
}

// stepFailure applies the continue-on-error policy to a step-local failure.
// It returns the error when the run must stop, or nil after recording a
// skipped failure.
func (r *Runner) stepFailure(st *runState, err error, command string) error {
	if !r.ContinueOnError {
		r.errorf("stopping execution due to command failure: %s", command)

		return err
	}

	r.warnf("continuing after command failure: %s", command)
	st.skipped = multierror.Append(st.skipped, err)

	return nil
}

func (r *Runner) report(e report.Event) {
	if r.Reporter == nil {
		return
	}

	e.Timestamp = time.Now()
	r.Reporter.Report(e)
}

func (r *Runner) warnf(format string, args ...any) {
	r.report(report.Event{Type: report.EventWarning, Message: fmt.Sprintf(format, args...)})
}

func (r *Runner) errorf(format string, args ...any) {
	r.report(report.Event{Type: report.EventError, Message: fmt.Sprintf(format, args...)})
}
