package async_operation

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sierrasoftworks/humane-errors-go"

	"github.com/spechtlabs/nba/internal/cli/pretty_print"
)

// CheckFunc reports whether the awaited condition holds. An error aborts the wait.
type CheckFunc func(ctx context.Context) (bool, humane.Error)

// Wait calls check until it reports done, it fails, or ctx ends.
func Wait(ctx context.Context, check CheckFunc, opts ...Option) humane.Error {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	if f, ok := options.out.(*os.File); ok && !options.quiet && pretty_print.IsTerminal(f) {
		return runTea(ctx, check, options)
	}
	return runText(ctx, check, options)
}

func runText(ctx context.Context, check CheckFunc, opts *waitOptions) humane.Error {
	if !opts.quiet {
		_, _ = fmt.Fprint(opts.out, pretty_print.FormatInfo(opts.inProgressMessage))
	}

	ticker := time.NewTicker(opts.interval)
	defer ticker.Stop()

	for {
		done, err := check(ctx)
		if err != nil {
			return err
		}
		if done {
			if !opts.quiet {
				_, _ = fmt.Fprint(opts.out, pretty_print.FormatOk(opts.doneMessage))
			}
			return nil
		}

		select {
		case <-ctx.Done():
			return timeoutError(ctx, opts)
		case <-ticker.C:
		}
	}
}

func timeoutError(ctx context.Context, opts *waitOptions) humane.Error {
	advice := "increase --timeout or inspect the objects with kubectl describe"
	if cause := context.Cause(ctx); cause != nil {
		return humane.Wrap(cause, opts.timeoutMessage, advice)
	}
	return humane.New(opts.timeoutMessage, advice)
}
