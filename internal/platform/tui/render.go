package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/zombie/internal/core"
)

// cellColors is the foreground/background pair of a cell.
type cellColors struct {
	fg, bg core.Color
}

// Renderer converts screens to styled strings, caching one lipgloss style
// per color pair.
type Renderer struct {
	styles map[cellColors]lipgloss.Style
}

// NewRenderer creates a renderer with an empty style cache.
func NewRenderer() *Renderer {
	return &Renderer{styles: make(map[cellColors]lipgloss.Style)}
}

// RenderScreen converts a Screen buffer to a styled string for display.
func RenderScreen(s *core.Screen) string {
	return NewRenderer().Render(s)
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (r *Renderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Cols()*s.Rows()*4 + s.Rows())

	var run strings.Builder
	for y := 0; y < s.Rows(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Cols() {
			cell := s.GetCell(x, y)
			colors := cellColors{cell.Fg, cell.Bg}

			// Collect consecutive cells with the same colors
			run.Reset()
			for x < s.Cols() {
				cell = s.GetCell(x, y)
				if (cellColors{cell.Fg, cell.Bg}) != colors {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(r.style(colors).Render(run.String()))
		}
	}
	return sb.String()
}

func (r *Renderer) style(c cellColors) lipgloss.Style {
	if st, ok := r.styles[c]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if code := c.fg.ANSI(); code != "" {
		st = st.Foreground(lipgloss.Color(code))
	}
	if code := c.bg.ANSI(); code != "" {
		st = st.Background(lipgloss.Color(code))
	}
	r.styles[c] = st
	return st
}
