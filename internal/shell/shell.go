// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package shell runs a single opaque command string through the user's
// shell, capturing stdout, stderr and the exit status. Execution is
// synchronous: Run blocks until the spawned process terminates.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/matt-FFFFFF/remac/internal/ctxlog"
	"github.com/matt-FFFFFF/remac/internal/osenv"
)

const (
	maxBufferSize = 8 * 1024 * 1024 // 8MB cap on captured output per stream

	goosWindows          = "windows"
	commandSwitchWindows = "/C" // Command switch for Windows cmd.exe
	commandSwitchUnix    = "-c" // Command switch for Unix-like shells
	winSystem32          = "System32"
	cmdExe               = "cmd.exe"
	binSh                = "/bin/sh"
	winSystemRootEnv     = "SystemRoot"
)

var (
	// ErrEmptyCommand is returned when the command string is empty.
	ErrEmptyCommand = errors.New("empty command")
	// ErrCouldNotStartProcess is returned when the shell process could not be started.
	ErrCouldNotStartProcess = errors.New("could not start process")
	// ErrFailedToCreatePipe is returned when the operating system pipe could not be created.
	ErrFailedToCreatePipe = errors.New("failed to create pipe")
	// ErrFailedToReadBuffer is returned when the buffer from the operating system pipe could not be read.
	ErrFailedToReadBuffer = errors.New("failed to read buffer")
	// ErrBufferOverflow is returned when the output exceeds the max size.
	ErrBufferOverflow = fmt.Errorf("output exceeds max size of %d bytes", maxBufferSize)
)

// Result is the outcome of one command execution.
type Result struct {
	ExitCode int
	StdOut   []byte
	StdErr   []byte
}

// Executor runs one command string with the given environment mapping.
// A non-nil error means the command could not be run at all; a non-zero
// exit status is reported through Result, not through the error.
type Executor interface {
	Run(ctx context.Context, command string, env map[string]string) (*Result, error)
}

var _ Executor = (*OSExecutor)(nil)

// OSExecutor is the Executor backed by the operating system shell.
type OSExecutor struct {
	// Shell overrides shell resolution. When empty the SHELL environment
	// variable is consulted, falling back to /bin/sh (cmd.exe on Windows).
	Shell string
}

// Run implements the Executor interface.
func (e *OSExecutor) Run(ctx context.Context, command string, env map[string]string) (*Result, error) {
	logger := ctxlog.Logger(ctx).With("runnableType", "OSExecutor")

	if command == "" {
		return nil, ErrEmptyCommand
	}

	sh := e.Shell
	if sh == "" {
		sh = defaultShell(ctx)
	}

	commandSwitch := commandSwitchUnix
	if runtime.GOOS == goosWindows {
		commandSwitch = commandSwitchWindows
	}

	logger.Debug("command info", "shell", sh, "command", command)

	rOut, wOut, err := os.Pipe()
	if err != nil {
		return nil, errors.Join(ErrFailedToCreatePipe, err)
	}

	rErr, wErr, err := os.Pipe()
	if err != nil {
		closePipe(rOut, wOut)
		return nil, errors.Join(ErrFailedToCreatePipe, err)
	}

	ps, err := os.StartProcess(sh, []string{sh, commandSwitch, command}, &os.ProcAttr{
		Env:   osenv.Slice(env),
		Files: []*os.File{os.Stdin, wOut, wErr},
	})
	if err != nil {
		closePipe(rOut, wOut)
		closePipe(rErr, wErr)

		return nil, errors.Join(ErrCouldNotStartProcess, err)
	}

	logger.Debug("process started", "pid", ps.Pid)

	// Drain both pipes while the child runs. Waiting first would deadlock
	// once the child fills the OS pipe buffer.
	outCh := readAsync(ctx, rOut)
	errCh := readAsync(ctx, rErr)

	state, psErr := ps.Wait()

	_ = wOut.Close()
	_ = wErr.Close()

	res := &Result{}

	out := <-outCh
	res.StdOut = out.data
	psErr = errors.Join(psErr, out.err)

	errOut := <-errCh
	res.StdErr = errOut.data
	psErr = errors.Join(psErr, errOut.err)

	_ = rOut.Close()
	_ = rErr.Close()

	if psErr != nil {
		return nil, psErr
	}

	res.ExitCode = state.ExitCode()

	logger.Debug("process finished", "exitCode", res.ExitCode,
		"stdoutBytes", len(res.StdOut), "stderrBytes", len(res.StdErr))

	return res, nil
}

func defaultShell(ctx context.Context) string {
	if runtime.GOOS == goosWindows {
		systemRoot := os.Getenv(winSystemRootEnv)
		if systemRoot == "" {
			systemRoot = `C:\Windows`
		}

		return fmt.Sprintf(`%s\%s\%s`, systemRoot, winSystem32, cmdExe)
	}

	if sh := os.Getenv("SHELL"); sh != "" {
		ctxlog.Debug(ctx, "using SHELL environment variable", "shell", sh)
		return sh
	}

	return binSh
}

type readResult struct {
	data []byte
	err  error
}

// readAsync drains r in a goroutine and delivers the capped contents once the
// write end is closed. The channel is buffered so the reader never leaks.
func readAsync(ctx context.Context, r io.Reader) <-chan readResult {
	ch := make(chan readResult, 1)

	go func() {
		data, err := readAllUpToMax(ctx, r, maxBufferSize)
		ch <- readResult{data: data, err: err}
	}()

	return ch
}

func readAllUpToMax(ctx context.Context, r io.Reader, maxBufferSize int64) ([]byte, error) {
	var buf bytes.Buffer

	n, err := io.CopyN(&buf, r, maxBufferSize+1)
	if err != nil && err != io.EOF {
		return nil, errors.Join(ErrFailedToReadBuffer, err)
	}

	if n > maxBufferSize {
		ctxlog.Debug(ctx, "buffer overflow while reading pipe", "bytesRead", n, "maxBytes", maxBufferSize)

		// Keep draining so the writer is never blocked on a full pipe.
		_, _ = io.Copy(io.Discard, r)

		return buf.Bytes()[:maxBufferSize], ErrBufferOverflow
	}

	return buf.Bytes(), nil
}

func closePipe(r, w *os.File) {
	_ = r.Close()
	_ = w.Close()
}
