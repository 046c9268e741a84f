package main

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// newLogger builds the diagnostic logger. Diagnostics go to stderr so that
// stdout carries only the result line.
func newLogger(w io.Writer, verbose, quiet bool) zerolog.Logger {
	level := zerolog.WarnLevel
	switch {
	case quiet:
		level = zerolog.Disabled
	case verbose:
		level = zerolog.DebugLevel
	}

	console := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	return zerolog.New(console).Level(level).With().Timestamp().Logger()
}

// withLogger attaches a logger built from the loaded settings to ctx.
func withLogger(ctx context.Context, settings rewriteSettings) context.Context {
	logger := newLogger(os.Stderr, settings.Verbose, settings.Quiet)
	return logger.WithContext(ctx)
}
