// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/TylerBrock/colorjson"
	"github.com/matt-FFFFFF/remac/internal/color"
)

var (
	// ErrMarshalAttribute is returned when an error occurs while marshaling an attribute.
	ErrMarshalAttribute = errors.New("error when marshaling attribute")
	// ErrIoWrite is returned when an error occurs while writing to the output.
	ErrIoWrite = errors.New("error when writing to output")
)

// TimeFormat is the format used for timestamps in log messages.
const TimeFormat = "[15:04:05.000]"

var jsonFormatter = colorjson.NewFormatter()

func init() {
	jsonFormatter.Indent = 2
	jsonFormatter.DisabledColor = !color.Enabled()
}

// PrettyHandler is a slog handler that formats log messages for the console.
// Attributes are rendered as colorized JSON after the level and message.
type PrettyHandler struct {
	h      slog.Handler
	b      *bytes.Buffer
	m      *sync.Mutex
	writer io.Writer
}

// NewPrettyHandler creates a new PrettyHandler writing to w.
func NewPrettyHandler(handlerOptions *slog.HandlerOptions, w io.Writer) *PrettyHandler {
	if handlerOptions == nil {
		handlerOptions = &slog.HandlerOptions{}
	}

	buf := &bytes.Buffer{}

	return &PrettyHandler{
		b: buf,
		h: slog.NewJSONHandler(buf, &slog.HandlerOptions{
			Level:       handlerOptions.Level,
			AddSource:   handlerOptions.AddSource,
			ReplaceAttr: suppressDefaults(handlerOptions.ReplaceAttr),
		}),
		m:      &sync.Mutex{},
		writer: w,
	}
}

// Enabled checks if the handler is enabled for the given level.
func (h *PrettyHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.h.Enabled(ctx, level)
}

// WithAttrs creates a new handler with the given attributes.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &PrettyHandler{h: h.h.WithAttrs(attrs), b: h.b, m: h.m, writer: h.writer}
}

// WithGroup creates a new handler with the given group name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	return &PrettyHandler{h: h.h.WithGroup(name), b: h.b, m: h.m, writer: h.writer}
}

// Handle implements the slog.Handler interface for PrettyHandler.
func (h *PrettyHandler) Handle(ctx context.Context, r slog.Record) error {
	level := r.Level.String() + ":"

	switch {
	case r.Level <= slog.LevelDebug:
		level = color.Colorize(level, color.FgWhite)
	case r.Level <= slog.LevelInfo:
		level = color.Colorize(level, color.FgCyan)
	case r.Level < slog.LevelError:
		level = color.Colorize(level, color.FgYellow)
	default:
		level = color.Colorize(level, color.FgRed)
	}

	timestamp := color.Colorize(r.Time.Format(TimeFormat), color.FgWhite)
	msg := color.Colorize(r.Message, color.FgHiWhite)

	attrs, err := h.computeAttrs(ctx, r)
	if err != nil {
		return err
	}

	var attrsAsBytes []byte

	if len(attrs) > 0 {
		attrsAsBytes, err = jsonFormatter.Marshal(attrs)
		if err != nil {
			return errors.Join(ErrMarshalAttribute, err)
		}
	}

	out := strings.Builder{}
	out.WriteString(timestamp)
	out.WriteString(" ")
	out.WriteString(level)
	out.WriteString(" ")
	out.WriteString(msg)

	if len(attrsAsBytes) > 0 {
		out.WriteString(" ")
		out.WriteString(color.Colorize(string(attrsAsBytes), color.FgHiWhite))
	}

	out.WriteString("\n")

	if _, err := io.WriteString(h.writer, out.String()); err != nil {
		return errors.Join(ErrIoWrite, err)
	}

	return nil
}

// computeAttrs runs the record through the inner JSON handler and decodes
// the attributes from the shared buffer.
func (h *PrettyHandler) computeAttrs(ctx context.Context, r slog.Record) (map[string]any, error) {
	h.m.Lock()
	defer func() {
		h.b.Reset()
		h.m.Unlock()
	}()

	if err := h.h.Handle(ctx, r); err != nil {
		return nil, err
	}

	var attrs map[string]any
	if err := json.Unmarshal(h.b.Bytes(), &attrs); err != nil {
		return nil, errors.Join(ErrMarshalAttribute, err)
	}

	return attrs, nil
}

func suppressDefaults(next func([]string, slog.Attr) slog.Attr) func([]string, slog.Attr) slog.Attr {
	return func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey ||
			a.Key == slog.LevelKey ||
			a.Key == slog.MessageKey {
			return slog.Attr{}
		}

		if next == nil {
			return a
		}

		return next(groups, a)
	}
}
