package logging

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New constructs the application logger. JSON to stdout by default;
// LOG_FORMAT=console switches to the human-readable writer.
func New(level, format string) zerolog.Logger {
	lvl := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level))); err == nil && level != "" {
		lvl = parsed
	}

	var out = zerolog.New(os.Stdout)
	if strings.EqualFold(strings.TrimSpace(format), "console") {
		out = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	return out.
		Level(lvl).
		With().
		Timestamp().
		Str("app", "salon-booking").
		Logger()
}
