// Package style provides shared UI styling primitives including brand colors
// and icons for consistent visual presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Teal   = lipgloss.Color("#0D9488")
	Slate  = lipgloss.Color("#667085")
	White  = lipgloss.Color("#FFFFFF")
	Ink    = lipgloss.Color("#0B0F19")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Plus    = "+"
	Minus   = "-"
	Tilde   = "~"
	Dot     = "●"
)

// Severity and diff styles shared by the CLI report printers.
var (
	ErrorText   = lipgloss.NewStyle().Foreground(Red)
	WarningText = lipgloss.NewStyle().Foreground(Yellow)
	SuccessText = lipgloss.NewStyle().Foreground(Green)
	MutedText   = lipgloss.NewStyle().Foreground(Slate)
	HeadingText = lipgloss.NewStyle().Foreground(Teal).Bold(true)
)
