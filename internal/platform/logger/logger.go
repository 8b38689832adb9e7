package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures the global zerolog logger. Loggers pulled from a context
// without one attached fall back to it.
func Setup(serviceName, env, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	var base zerolog.Logger
	if env == "dev" {
		base = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		base = zerolog.New(os.Stderr)
	}

	log.Logger = base.With().Timestamp().Str("service", serviceName).Logger()
	zerolog.DefaultContextLogger = &log.Logger

	return log.Logger
}
