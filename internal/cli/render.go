package cli

import (
	"fmt"
	"strings"

	"github.com/Conceptual-Machines/magda-voicer/internal/models"
	"github.com/charmbracelet/lipgloss"
)

const (
	symbolColumnWidth  = 8
	degreeColumnWidth  = 6
	qualityColumnWidth = 18
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245"))
	symbolStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Width(symbolColumnWidth)
	degreeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Width(degreeColumnWidth)
	qualityStyle = lipgloss.NewStyle().Width(qualityColumnWidth)
	noteStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

// renderProgression prints one line per chord: degree, symbol, notes
func renderProgression(p models.Progression) string {
	lines := make([]string, 0, len(p.Chords)+1)
	lines = append(lines, titleStyle.Render("Key of "+p.Key))

	for _, c := range p.Chords {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			degreeStyle.Render(c.Chord),
			symbolStyle.Render(c.Symbol),
			noteStyle.Render(strings.Join(c.Notes, " ")),
		))
	}
	return strings.Join(lines, "\n")
}

// renderKeyOverview prints the diatonic chord table of a key
func renderKeyOverview(o models.KeyOverview) string {
	lines := make([]string, 0, len(o.Degrees)+2)
	lines = append(lines, titleStyle.Render(fmt.Sprintf("%s %s", o.Tonic, o.Mode)))
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
		headerStyle.Width(degreeColumnWidth).Render("deg"),
		headerStyle.Width(symbolColumnWidth).Render("chord"),
		headerStyle.Render("quality"),
	))

	for _, d := range o.Degrees {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			degreeStyle.Render(fmt.Sprintf("%d", d.Degree)),
			symbolStyle.Render(d.Symbol),
			qualityStyle.Render(d.Quality),
		))
	}
	return strings.Join(lines, "\n")
}
