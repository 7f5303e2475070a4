// Package output builds the termenv output that log lines are written through.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"go.trai.ch/rscript/internal/adapters/detector"
)

// ColorProfile returns the color profile for stderr output.
// NO_COLOR disables colour whenever it is set, even to an empty value.
func ColorProfile() termenv.Profile {
	if _, ok := os.LookupEnv(detector.EnvNoColor); ok {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// New creates a termenv.Output on w, defaulting to stderr.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(ColorProfile()),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}
