// Package style provides the colours, icons and table styles shared by log
// lines and cache listings.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons prefixed to log lines by level.
const (
	Cross   = "✗"
	Warning = "!"
	Tilde   = "~"
)

// Table styles used by cache listings.
var (
	Header = lipgloss.NewStyle().Bold(true).Foreground(Iris)
	Muted  = lipgloss.NewStyle().Foreground(Slate)
)
