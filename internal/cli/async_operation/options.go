// Package async_operation shows progress while the CLI waits for a cluster
// to converge.
package async_operation

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
)

type waitOptions struct {
	inProgressMessage string
	doneMessage       string
	timeoutMessage    string
	interval          time.Duration
	style             spinner.Spinner
	out               io.Writer
	quiet             bool
}

// Option configures Wait.
type Option func(*waitOptions)

func defaultOptions() *waitOptions {
	return &waitOptions{
		inProgressMessage: "Waiting...",
		doneMessage:       "Done.",
		timeoutMessage:    "Timed out waiting",
		interval:          2 * time.Second,
		style:             spinner.Dot,
		out:               os.Stdout,
		quiet:             false,
	}
}

// WithInProgressMessage sets the message displayed next to the spinner.
func WithInProgressMessage(msg string) Option {
	return func(o *waitOptions) {
		o.inProgressMessage = msg
	}
}

// WithDoneMessage sets the message displayed once the check succeeds.
func WithDoneMessage(msg string) Option {
	return func(o *waitOptions) {
		o.doneMessage = msg
	}
}

// WithTimeoutMessage sets the error message used when the context expires.
func WithTimeoutMessage(msg string) Option {
	return func(o *waitOptions) {
		o.timeoutMessage = msg
	}
}

// WithInterval sets the pause between two checks.
func WithInterval(d time.Duration) Option {
	return func(o *waitOptions) {
		o.interval = d
	}
}

func WithSpinner(style spinner.Spinner) Option {
	return func(o *waitOptions) {
		o.style = style
	}
}

// WithOutput sets where progress is written. The animated spinner is only
// used when w is a terminal.
func WithOutput(w io.Writer) Option {
	return func(o *waitOptions) {
		o.out = w
	}
}

func WithQuiet(quiet bool) Option {
	return func(o *waitOptions) {
		o.quiet = quiet
	}
}
