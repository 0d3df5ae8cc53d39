//go:build !windows

package utils

import (
	"context"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterruptHandlerCancelsOnSignal(t *testing.T) {
	ctx, cancel := context.WithCancelCause(context.Background())
	defer cancel(nil)

	InterruptHandler(ctx, cancel)
	require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGTERM))

	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("context was not cancelled")
	}

	assert.ErrorIs(t, context.Cause(ctx), ErrInterrupted)
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}

func TestInterruptHandlerStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancelCause(context.Background())

	InterruptHandler(ctx, cancel)
	cancel(context.Canceled)

	<-ctx.Done()
	assert.ErrorIs(t, context.Cause(ctx), context.Canceled)
	assert.NotErrorIs(t, context.Cause(ctx), ErrInterrupted)
}
