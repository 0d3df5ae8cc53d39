package utils

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spechtlabs/go-otel-utils/otelprovider"
	"github.com/spechtlabs/go-otel-utils/otelzap"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// InitObservability installs the global zap and otelzap loggers and the OTLP
// providers, and returns a function flushing and restoring them.
func InitObservability() func() {
	loggerOptions, tracerOptions := providerOptions(viper.GetString("otel.endpoint"), viper.GetBool("otel.insecure"))

	logProvider := otelprovider.NewLogger(loggerOptions...)
	traceProvider := otelprovider.NewTracer(tracerOptions...)

	// Initialize Logging
	debug := viper.GetBool("debug")
	var zapLogger *zap.Logger
	var err error
	if debug {
		zapLogger, err = zap.NewDevelopment()
	} else {
		zapLogger, err = zap.NewProduction()
	}
	if err != nil {
		// stdout carries the rendered manifests
		_, _ = fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err) //nolint:golint-sl // Pre-logger init output
		os.Exit(1)
	}

	// Replace zap global
	undoZapGlobals := zap.ReplaceGlobals(zapLogger)

	// Redirect stdlib log to zap
	undoStdLogRedirect := zap.RedirectStdLog(zapLogger)

	// Create otelLogger
	otelZapLogger := otelzap.New(zapLogger,
		otelzap.WithCaller(true),
		otelzap.WithMinLevel(zap.InfoLevel),
		otelzap.WithAnnotateLevel(zap.WarnLevel),
		otelzap.WithErrorStatusLevel(zap.ErrorLevel),
		otelzap.WithStackTrace(false),
		otelzap.WithLoggerProvider(logProvider),
	)

	// Replace global otelZap logger
	undoOtelZapGlobals := otelzap.ReplaceGlobals(otelZapLogger)

	return func() {
		// Capture errors for wide event
		var (
			traceFlushErr    error
			logFlushErr      error
			traceShutdownErr error
			logShutdownErr   error
		)

		traceFlushErr = traceProvider.ForceFlush(context.Background())
		logFlushErr = logProvider.ForceFlush(context.Background())
		traceShutdownErr = traceProvider.Shutdown(context.Background())
		logShutdownErr = logProvider.Shutdown(context.Background())

		// Emit single wide event for observability shutdown with all error details
		otelzap.L().Debug("observability shutdown",
			zap.Bool("trace_flush_ok", traceFlushErr == nil),
			zap.Bool("log_flush_ok", logFlushErr == nil),
			zap.Bool("trace_shutdown_ok", traceShutdownErr == nil),
			zap.Bool("log_shutdown_ok", logShutdownErr == nil),
			zap.NamedError("trace_flush_err", traceFlushErr),
			zap.NamedError("log_flush_err", logFlushErr),
			zap.NamedError("trace_shutdown_err", traceShutdownErr),
			zap.NamedError("log_shutdown_err", logShutdownErr),
		)

		undoStdLogRedirect()
		undoOtelZapGlobals()
		undoZapGlobals()
	}
}

// providerOptions selects the OTLP transport from the endpoint's port: 4317 is
// gRPC, 4318 is HTTP. Any other endpoint leaves the exporters unconfigured.
func providerOptions(endpoint string, insecure bool) ([]otelprovider.LoggerOption, []otelprovider.TracerOption) {
	var loggerOptions []otelprovider.LoggerOption
	var tracerOptions []otelprovider.TracerOption

	if insecure {
		loggerOptions = append(loggerOptions, otelprovider.WithLogInsecure())
		tracerOptions = append(tracerOptions, otelprovider.WithTraceInsecure())
	}

	switch {
	case strings.Contains(endpoint, "4317"):
		loggerOptions = append(loggerOptions, otelprovider.WithGrpcLogEndpoint(endpoint))
		tracerOptions = append(tracerOptions, otelprovider.WithGrpcTraceEndpoint(endpoint))
	case strings.Contains(endpoint, "4318"):
		loggerOptions = append(loggerOptions, otelprovider.WithHttpLogEndpoint(endpoint))
		tracerOptions = append(tracerOptions, otelprovider.WithHttpTraceEndpoint(endpoint))
	}

	return loggerOptions, tracerOptions
}
