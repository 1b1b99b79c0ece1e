package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var Log = zerolog.New(os.Stdout).With().Timestamp().Logger()

// Init configures the global logger. Unknown levels fall back to info; format
// "pretty" switches to the console writer for local development.
func Init(level, format string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = time.RFC3339

	var out io.Writer = os.Stdout
	if format == "pretty" {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	Log = zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}
