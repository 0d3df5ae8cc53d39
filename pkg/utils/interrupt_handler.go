package utils

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spechtlabs/go-otel-utils/otelzap"
	"go.uber.org/zap"
)

// ErrInterrupted is the cancellation cause set when a termination signal arrives.
var ErrInterrupted = fmt.Errorf("interrupted: %w", context.Canceled)

// InterruptHandler cancels ctx with ErrInterrupted on SIGINT, SIGTERM or SIGQUIT.
// The handler stops listening once ctx is done.
func InterruptHandler(ctx context.Context, cancelCtx context.CancelCauseFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)

		select {
		case <-ctx.Done():
			return

		case sig := <-sigs:
			otelzap.L().InfoContext(ctx, "Received signal, aborting", zap.String("signal", sig.String()))
			cancelCtx(ErrInterrupted)
		}
	}()
}
