// Package style holds the palette and glyphs shared by gom's console output.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Gopher = lipgloss.Color("#00ADD8")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Glyphs.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
)
