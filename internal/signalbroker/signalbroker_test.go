// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWatchCancelsOnSignal(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	done := make(chan struct{})

	go func() {
		Watch(ctx, sigCh, cancel)
		close(done)
	}()

	sigCh <- syscall.SIGINT

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context was not cancelled")
	}

	<-done
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}

func TestWatchReturnsOnChannelClose(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal)
	done := make(chan struct{})

	go func() {
		Watch(ctx, sigCh, cancel)
		close(done)
	}()

	close(sigCh)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Watch did not return")
	}
}
