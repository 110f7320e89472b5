// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	custom := slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), nil))

	tests := []struct {
		name   string
		logger *slog.Logger
		want   *slog.Logger
	}{
		{
			name:   "with custom logger",
			logger: custom,
			want:   custom,
		},
		{
			name:   "with nil logger should use default",
			logger: nil,
			want:   DefaultLogger,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := New(context.Background(), tt.logger)
			assert.Same(t, tt.want, Logger(ctx))
		})
	}
}

func TestLoggerWithoutContextValue(t *testing.T) {
	assert.Same(t, DefaultLogger, Logger(context.Background()))
}

func TestPrettyHandlerOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	lv := &slog.LevelVar{}
	lv.Set(slog.LevelDebug)

	logger := slog.New(NewPrettyHandler(&slog.HandlerOptions{Level: lv}, buf))
	logger.Info("hello", "key", "value")

	out := buf.String()
	assert.Contains(t, out, "INFO:")
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "key")
	assert.Contains(t, out, "value")
}
