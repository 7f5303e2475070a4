// Package detector provides environment detection for colour forwarding.
package detector

import (
	"os"

	"golang.org/x/term"
)

// EnvNoColor disables colour output when set to any value.
const EnvNoColor = "NO_COLOR"

// DetectColor reports whether the build tool should be told to force colour.
// It checks if stderr is a TTY and if NO_COLOR is unset.
func DetectColor() bool {
	_, noColor := os.LookupEnv(EnvNoColor)
	return ForceColor(term.IsTerminal(int(os.Stderr.Fd())), noColor)
}

// ForceColor applies the colour policy to already detected facts.
func ForceColor(stderrIsTTY, noColorSet bool) bool {
	return stderrIsTTY && !noColorSet
}
