package logx

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ParseLevel maps a level name to a zerolog level. Unknown names fall back
// to info and report ok=false so the caller can warn about it.
func ParseLevel(value string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return zerolog.DebugLevel, true
	case "", "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "off", "disabled":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}

// New builds a human readable console logger writing to w.
func New(w io.Writer, level string) zerolog.Logger {
	lvl, ok := ParseLevel(level)
	out := zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.Kitchen}
	log := zerolog.New(out).Level(lvl).With().Timestamp().Logger()
	if !ok {
		log.Warn().Str("level", level).Msg("unknown log level, defaulting to info")
	}
	return log
}
