// Package logging configures the zerolog logger used by docbuildr.
package logging

import (
	"io"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Canonical log field names.
const (
	KeyFile     = "file"
	KeyModule   = "module"
	KeyTokens   = "tokens"
	KeyNodes    = "nodes"
	KeyFormat   = "format"
	KeyOutput   = "output"
	KeyDuration = "duration"
)

// New creates a human-readable logger writing to w.
// The level is one of zerolog's level names, e.g. "debug" or "info".
func New(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), errors.Wrapf(err, "invalid log level %q", level)
	}
	writer := zerolog.ConsoleWriter{Out: w, NoColor: true}
	return zerolog.New(writer).Level(lvl).With().Timestamp().Logger(), nil
}
