package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/sprite-tutorial/internal/core"
)

var helpBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// colorStyles holds one style per palette entry. The terminal uses the same
// RGB values as the window host so both show the same cars.
var colorStyles = buildColorStyles()

func buildColorStyles() map[core.Color]lipgloss.Style {
	styles := map[core.Color]lipgloss.Style{
		core.ColorDefault: lipgloss.NewStyle(),
	}
	for c := core.ColorRed; c <= core.ColorGray; c++ {
		r, g, b := c.RGB()
		st := lipgloss.NewStyle().Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b)))
		if c == TextColor {
			// HUD text
			st = st.Bold(true)
		}
		styles[c] = st
	}
	return styles
}

// styleFor returns the style of a palette entry, falling back to plain text.
func styleFor(c core.Color) lipgloss.Style {
	if st, ok := colorStyles[c]; ok {
		return st
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of the same colour share one escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		var run strings.Builder
		runColor := s.GetCell(0, y).Color
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != runColor {
				sb.WriteString(styleFor(runColor).Render(run.String()))
				run.Reset()
				runColor = cell.Color
			}
			run.WriteRune(cell.Rune)
		}
		if run.Len() > 0 {
			sb.WriteString(styleFor(runColor).Render(run.String()))
		}
	}
	return sb.String()
}

// renderHelpBar renders the short help clipped to one terminal row.
func renderHelpBar(h help.Model, keys help.KeyMap, width int) string {
	h.Width = width
	return helpBarStyle.MaxWidth(max(width, 1)).MaxHeight(helpRows).Render(h.View(keys))
}

// renderPlayView stacks the world above the help bar.
func renderPlayView(s *core.Screen, h help.Model, keys help.KeyMap) string {
	return RenderScreen(s) + "\n" + renderHelpBar(h, keys, s.Width())
}
