// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package report

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
)

// TimestampFormat is the format used for log record timestamps.
const TimestampFormat = "2006-01-02 15:04:05"

const logFilePerm = 0o644

// FsFactory returns the filesystem used for the execution log.
// It is a package variable so tests can substitute an in-memory filesystem.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// ErrOpenLogFile is returned when the log file cannot be opened or its parent
// directories cannot be created.
var ErrOpenLogFile = errors.New("could not open log file")

var _ Reporter = (*FileReporter)(nil)

// FileReporter appends structured command execution records to a file.
// Each record is a timestamped block: an EXECUTED: line with the command
// text, an OUTPUT: line when stdout was non-empty and an ERROR: line when
// stderr was non-empty. Write failures degrade to a stderr notice; they do
// not abort the run.
type FileReporter struct {
	f   afero.File
	now func() time.Time
}

// NewFile opens path in append mode, creating parent directories as needed,
// and writes a session header.
func NewFile(path string) (*FileReporter, error) {
	fsys := FsFactory()

	if dir := filepath.Dir(path); dir != "." {
		if err := fsys.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Join(ErrOpenLogFile, err)
		}
	}

	f, err := fsys.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, logFilePerm)
	if err != nil {
		return nil, errors.Join(ErrOpenLogFile, err)
	}

	fr := &FileReporter{f: f, now: time.Now}
	fr.write(fmt.Sprintf("\n--- Logging started at %s ---\n", fr.now().Format(TimestampFormat)))

	return fr, nil
}

// Report implements the Reporter interface.
// Only command execution records are persisted.
func (fr *FileReporter) Report(e Event) {
	if e.Type != EventCommandResult {
		return
	}

	ts := fr.now().Format(TimestampFormat)

	var b bytes.Buffer

	fmt.Fprintf(&b, "[%s] EXECUTED: %s\n", ts, e.Command)

	if out := strings.TrimSpace(string(e.StdOut)); out != "" {
		fmt.Fprintf(&b, "[%s] OUTPUT: %s\n", ts, out)
	}

	if errOut := strings.TrimSpace(string(e.StdErr)); errOut != "" {
		fmt.Fprintf(&b, "[%s] ERROR: %s\n", ts, errOut)
	}

	if e.Err != nil {
		fmt.Fprintf(&b, "[%s] ERROR: %v\n", ts, e.Err)
	}

	fr.write(b.String())
}

// Close implements the Reporter interface.
func (fr *FileReporter) Close() {
	if fr.f == nil {
		return
	}

	_ = fr.f.Close()
	fr.f = nil
}

func (fr *FileReporter) write(s string) {
	if fr.f == nil {
		return
	}

	if _, err := fr.f.WriteString(s); err != nil {
		fmt.Fprintf(os.Stderr, "could not write to log file: %v\n", err)
	}
}
