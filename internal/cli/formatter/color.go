package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/reimagine/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen      = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow     = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleYellowBold = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
	StyleRed        = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue       = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple     = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim        = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg         = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader     = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold       = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// PhaseStyle colors a phase by how far along the renovation is: planning
// phases blue, construction yellow, wrap-up green.
func PhaseStyle(p domain.Phase) lipgloss.Style {
	switch {
	case p == domain.PhaseComplete:
		return StyleGreen
	case !p.Valid():
		return StyleDim
	case p.Index() <= domain.PhasePermits.Index():
		return StyleBlue
	case p.Index() <= domain.PhaseFinishes.Index():
		return StyleYellow
	default:
		return StylePurple
	}
}

// PhasePill returns a colored phase indicator such as "● Rough-in".
func PhasePill(p domain.Phase) string {
	if p == domain.PhaseComplete {
		return StyleGreen.Render("✔ " + string(p))
	}
	return PhaseStyle(p).Render("● " + string(p))
}

// PhaseStep returns "n/9" for the phase's position.
func PhaseStep(p domain.Phase) string {
	if !p.Valid() {
		return "?/" + fmt.Sprint(len(domain.Phases))
	}
	return fmt.Sprintf("%d/%d", p.Index()+1, len(domain.Phases))
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
