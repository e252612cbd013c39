package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Output palette.
var (
	ColorHeader = lipgloss.Color("#fe8019")
	ColorLabel  = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorYellow = lipgloss.Color("#fabd2f")
)

var (
	styleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	styleLabel  = lipgloss.NewStyle().Foreground(ColorLabel)
	styleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	styleValue  = lipgloss.NewStyle().Foreground(ColorFg)
	styleWarn   = lipgloss.NewStyle().Foreground(ColorYellow)
)

const ruleWidth = 50

// Header renders a section title followed by a rule.
func Header(text string) string {
	return fmt.Sprintf("%s\n%s", styleHeader.Render(text), styleDim.Render(strings.Repeat("─", ruleWidth)))
}

func labeled(label, value string) string {
	return styleLabel.Render(label+":") + " " + styleValue.Render(value)
}
