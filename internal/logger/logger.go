// Package logger configures the process-wide zerolog logger.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options holds logger configuration.
type Options struct {
	Level  string    // debug, info, warn, error; unknown values fall back to info
	Format string    // json or console
	Output io.Writer // defaults to stderr
}

// Setup configures the global logger used through github.com/rs/zerolog/log.
func Setup(opts Options) zerolog.Logger {
	zerolog.SetGlobalLevel(parseLevel(opts.Level))

	output := opts.Output
	if output == nil {
		output = os.Stderr
	}

	var logger zerolog.Logger
	if strings.EqualFold(opts.Format, "console") {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: output, TimeFormat: time.RFC3339})
	} else {
		logger = zerolog.New(output)
	}
	logger = logger.With().Timestamp().Str("service", "geoquery").Logger()

	log.Logger = logger
	return logger
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
