package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	default:
		return FormatText
	}
}

func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "info", "":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

type Options struct {
	Level  zerolog.Level
	Format Format
	App    string
}

// New crea el logger del servicio (zerolog). Formato text usa ConsoleWriter
// (dev); json escribe el evento crudo (deploy).
func New(opts Options) zerolog.Logger {
	var out = zerolog.New(os.Stdout)
	if opts.Format != FormatJSON {
		out = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	ctx := out.Level(opts.Level).With().Timestamp()
	if strings.TrimSpace(opts.App) != "" {
		ctx = ctx.Str("app", strings.TrimSpace(opts.App))
	}
	return ctx.Logger()
}
