// Package palette previews color tokens in the terminal.
package palette

import (
	"strings"

	"bennypowers.dev/tuc/internal/tokens"
	"github.com/charmbracelet/lipgloss"
)

var (
	dimFg     = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	nameStyle = lipgloss.NewStyle().Bold(true)
	dimStyle  = lipgloss.NewStyle().Foreground(dimFg)
	swatch    = strings.Repeat(" ", 4)
)

// Render draws one row per color definition: a swatch filled with the
// color, the property name padded to the longest name, and the hex value.
// Typed color aliases have no literal color; they get an empty swatch and
// show their value. Non-color definitions are skipped.
func Render(defs []tokens.Definition) string {
	var colors []tokens.Definition
	width := 0
	for _, d := range defs {
		if !d.IsColor() {
			continue
		}
		colors = append(colors, d)
		width = max(width, lipgloss.Width(d.Name))
	}

	var b strings.Builder
	for _, d := range colors {
		fill := lipgloss.NewStyle()
		value := d.Value
		if d.Hex != "" {
			// lipgloss takes #rrggbb; drop the alpha pair of #rrggbbaa
			fill = fill.Background(lipgloss.Color(d.Hex[:min(len(d.Hex), 7)]))
			value = d.Hex
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			fill.Render(swatch),
			" ",
			nameStyle.Width(width).Render(d.Name),
			" ",
			dimStyle.Render(value),
		))
		b.WriteString("\n")
	}
	return b.String()
}
