// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package signalbroker listens for OS signals that should terminate the
// process. A running command is left to receive the signal itself; the
// broker cancels the run context so the engine stops before the next step.
package signalbroker

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/matt-FFFFFF/remac/internal/ctxlog"
)

var termSignals = []os.Signal{
	syscall.SIGINT,
	syscall.SIGTERM,
	syscall.SIGQUIT,
	os.Interrupt,
}

// New creates a channel notified on termination signals.
func New(ctx context.Context, sigs ...os.Signal) chan os.Signal {
	ch := make(chan os.Signal, 1)

	if len(sigs) == 0 {
		sigs = termSignals
	}

	ctxlog.Debug(ctx, "creating signal broker", "signals", sigs)
	signal.Notify(ch, sigs...)

	return ch
}

// Watch monitors the signal channel and cancels the context on the first
// signal received.
func Watch(ctx context.Context, sigCh chan os.Signal, cancel context.CancelFunc) {
	for sig := range sigCh {
		ctxlog.Logger(ctx).Info("received signal, stopping after the current step", "signal", sig.String())
		cancel()

		return
	}
}
