package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-crossing/internal/core"
)

// Theme maps core.Color to lipgloss styles.
type Theme map[core.Color]lipgloss.Style

// ansi holds the 256-color code of every core.Color.
var ansi = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// DefaultTheme colors every cell by its core.Color.
func DefaultTheme() Theme {
	t := Theme{core.ColorDefault: lipgloss.NewStyle()}
	for c, code := range ansi {
		t[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return t
}

// MonoTheme renders without any styling.
func MonoTheme() Theme {
	return Theme{}
}

// Render converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one escape sequence.
func (t Theme) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			var run strings.Builder
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}

			if st, ok := t[color]; ok {
				sb.WriteString(st.Render(run.String()))
			} else {
				sb.WriteString(run.String())
			}
		}
	}
	return sb.String()
}

var defaultTheme = DefaultTheme()

// RenderScreen renders s with the default theme.
func RenderScreen(s *core.Screen) string {
	return defaultTheme.Render(s)
}
