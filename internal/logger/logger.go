// Package logger builds the application logger: a JSON zerolog writing to
// a file beside the executable, falling back to stdout.
package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

func New() zerolog.Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	var out io.Writer = os.Stdout
	if exe, err := os.Executable(); err == nil {
		path := filepath.Join(filepath.Dir(exe), "bf2saveswitcher.log")
		if f, ferr := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); ferr == nil {
			out = f
		}
	}

	return zerolog.New(out).With().
		Str("role", "gui").
		Timestamp().
		Logger()
}
