package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/zombie/internal/core"
)

func TestRenderKeepsText(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.Fill(core.ColorBlack)
	s.DrawText(2, 1, "hello", core.ColorWhite)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, out, "hello")
}

func TestRendererCachesStyles(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.SetPixel(0, 0, core.ColorRed)
	s.SetPixel(1, 1, core.ColorBlue)

	r := NewRenderer()
	first := r.Render(s)
	n := len(r.styles)
	assert.Positive(t, n)

	assert.Equal(t, first, r.Render(s), "rendering is deterministic")
	assert.Len(t, r.styles, n, "second render reuses cached styles")
}
