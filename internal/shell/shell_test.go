// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package shell

import (
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func skipOnWindows(t *testing.T) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("test uses a POSIX shell")
	}
}

func TestRunSuccess(t *testing.T) {
	defer goleak.VerifyNone(t)
	skipOnWindows(t)

	e := &OSExecutor{Shell: "/bin/sh"}

	res, err := e.Run(context.Background(), "echo hello", map[string]string{"PATH": "/usr/bin:/bin"})
	require.NoError(t, err)
	assert.Equal(t, 0, res.ExitCode)
	assert.Contains(t, string(res.StdOut), "hello")
	assert.Empty(t, res.StdErr)
}

func TestRunUsesGivenEnvironment(t *testing.T) {
	defer goleak.VerifyNone(t)
	skipOnWindows(t)

	e := &OSExecutor{Shell: "/bin/sh"}

	res, err := e.Run(context.Background(), "echo $GREETING", map[string]string{"GREETING": "hi there"})
	require.NoError(t, err)
	assert.Contains(t, string(res.StdOut), "hi there")
}

func TestRunNonZeroExit(t *testing.T) {
	defer goleak.VerifyNone(t)
	skipOnWindows(t)

	e := &OSExecutor{Shell: "/bin/sh"}

	res, err := e.Run(context.Background(), "echo oops >&2; exit 3", nil)
	require.NoError(t, err, "a non-zero exit is not an execution error")
	assert.Equal(t, 3, res.ExitCode)
	assert.Contains(t, string(res.StdErr), "oops")
}

func TestRunOutputLargerThanPipeBuffer(t *testing.T) {
	defer goleak.VerifyNone(t)
	skipOnWindows(t)

	e := &OSExecutor{Shell: "/bin/sh"}

	// 200KB is well past the OS pipe buffer. The run must complete with the
	// full output captured rather than blocking on a full pipe.
	res, err := e.Run(context.Background(), "head -c 200000 /dev/zero | tr '\\0' a", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, res.ExitCode)
	assert.Len(t, res.StdOut, 200000)
}

func TestRunOutputExceedsCaptureCap(t *testing.T) {
	defer goleak.VerifyNone(t)
	skipOnWindows(t)

	e := &OSExecutor{Shell: "/bin/sh"}

	// One byte past the 8MB capture cap.
	_, err := e.Run(context.Background(), "head -c 8388609 /dev/zero", nil)
	require.ErrorIs(t, err, ErrBufferOverflow)
}

func TestRunEmptyCommand(t *testing.T) {
	e := &OSExecutor{}

	_, err := e.Run(context.Background(), "", nil)
	require.ErrorIs(t, err, ErrEmptyCommand)
}

func TestRunShellNotFound(t *testing.T) {
	defer goleak.VerifyNone(t)

	e := &OSExecutor{Shell: "/not/a/real/shell"}

	_, err := e.Run(context.Background(), "echo hello", nil)
	require.ErrorIs(t, err, ErrCouldNotStartProcess)
}
