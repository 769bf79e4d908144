package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/ritmo/internal/mission"
	"github.com/charmbracelet/lipgloss"
)

// Soft green palette.
var (
	ColorGreen  = lipgloss.Color("#7fb77e")
	ColorSage   = lipgloss.Color("#b1d7b4")
	ColorYellow = lipgloss.Color("#f2c14e")
	ColorRed    = lipgloss.Color("#e26d5a")
	ColorBlue   = lipgloss.Color("#7aa5c9")
	ColorPurple = lipgloss.Color("#b48ead")
	ColorDim    = lipgloss.Color("#8a8f98")
	ColorFg     = lipgloss.Color("#eceff4")
	ColorHeader = lipgloss.Color("#5aa469")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleSage   = lipgloss.NewStyle().Foreground(ColorSage)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// PhaseStyle colours a mission phase.
func PhaseStyle(p mission.Phase) lipgloss.Style {
	switch p {
	case mission.PhaseAwareness:
		return StyleBlue
	case mission.PhaseChoices:
		return StyleYellow
	case mission.PhaseAutonomy:
		return StyleGreen
	default:
		return StyleDim
	}
}

// Check renders a done/pending marker.
func Check(done bool) string {
	if done {
		return StyleGreen.Render("✓")
	}
	return StyleDim.Render("○")
}

// Header renders an upper-cased section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}

// Success prefixes a confirmation line with a check mark.
func Success(text string) string {
	return StyleGreen.Render("✓ ") + text
}
