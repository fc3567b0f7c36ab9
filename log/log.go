// Package log wraps zerolog behind package-level helpers. Diagnostics go to
// stderr; user-facing progress lines stay on stdout via fmt in the caller.
package log

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

var (
	diagLog  zerolog.Logger
	logReady bool
)

// Init configures the console logger. With verbose false only warnings and
// errors are emitted.
func Init(verbose bool) {
	w := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	}
	diagLog = zerolog.New(w).With().Timestamp().Logger()
	if !verbose {
		diagLog = diagLog.Level(zerolog.WarnLevel)
	}
	logReady = true
}

func Info(msg string) {
	if logReady {
		diagLog.Info().Msg(msg)
	}
}

func Infof(format string, args ...any) {
	if logReady {
		diagLog.Info().Msg(fmt.Sprintf(format, args...))
	}
}

func Warn(msg string) {
	if logReady {
		diagLog.Warn().Msg(msg)
	}
}

func Warnf(format string, args ...any) {
	if logReady {
		diagLog.Warn().Msg(fmt.Sprintf(format, args...))
	}
}

func Errorf(format string, args ...any) {
	if logReady {
		diagLog.Error().Msg(fmt.Sprintf(format, args...))
	}
}

// IconWritten records one generated file with its verification outcome.
func IconWritten(path string, size int, ms float64, ok bool) {
	if !logReady {
		return
	}
	diagLog.Info().
		Str("path", path).
		Int("size", size).
		Float64("total_ms", ms).
		Bool("verified", ok).
		Msg("icon_written")
}

// SourceLoaded records the decoded source dimensions and format.
func SourceLoaded(name, format string, w, h int) {
	if !logReady {
		return
	}
	diagLog.Info().
		Str("source", name).
		Str("format", format).
		Int("width", w).
		Int("height", h).
		Msg("source_loaded")
}

// BatchDone records the final counts for a run.
func BatchDone(generated, failed int) {
	if !logReady {
		return
	}
	diagLog.Info().
		Int("generated", generated).
		Int("failed", failed).
		Msg("batch_done")
}
