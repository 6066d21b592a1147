package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// cellStyle returns the lipgloss style for a foreground/background pair.
// ColorDefault leaves the terminal's own color in place.
func cellStyle(fg, bg core.Color) lipgloss.Style {
	style := lipgloss.NewStyle()
	if code := fg.ANSI(); code != "" {
		style = style.Foreground(lipgloss.Color(code))
	}
	if code := bg.ANSI(); code != "" {
		style = style.Background(lipgloss.Color(code))
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	styles := make(map[[2]core.Color]lipgloss.Style)

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != start.Color || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			key := [2]core.Color{start.Color, start.Bg}
			style, ok := styles[key]
			if !ok {
				style = cellStyle(start.Color, start.Bg)
				styles[key] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
