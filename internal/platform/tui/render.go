package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           fg("1"),
	core.ColorGreen:         fg("2"),
	core.ColorYellow:        fg("3"),
	core.ColorBlue:          fg("4"),
	core.ColorMagenta:       fg("5"),
	core.ColorCyan:          fg("6"),
	core.ColorWhite:         fg("7"),
	core.ColorBrightRed:     fg("9"),
	core.ColorBrightGreen:   fg("10"),
	core.ColorBrightYellow:  fg("11"),
	core.ColorBrightBlue:    fg("12"),
	core.ColorBrightMagenta: fg("13"),
	core.ColorBrightCyan:    fg("14"),
	core.ColorBrightWhite:   fg("15"),
	core.ColorOrange:        fg("208"),
	core.ColorGray:          fg("245"),
}

func fg(c string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
}

// Styles shared by the menu and scoreboard screens.
var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle      = fg("241")
	borderStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Runs of cells sharing a color are rendered with one style call.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	flush := func(c core.Color) {
		if run.Len() == 0 {
			return
		}
		style, ok := colorStyles[c]
		if !ok {
			style = colorStyles[core.ColorDefault]
		}
		sb.WriteString(style.Render(run.String()))
		run.Reset()
	}

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		current := core.ColorDefault
		for x, w := 0, s.Width(); x < w; x++ {
			cell := s.GetCell(x, y)
			if cell.Color != current {
				flush(current)
				current = cell.Color
			}
			run.WriteRune(cell.Rune)
		}
		flush(current)
	}
	return sb.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
