package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/zombie/internal/scene"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// SceneTable renders the scene sequence as a static table.
func SceneTable(scenes []scene.Descriptor) string {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "ID", Width: 10},
		{Title: "Name", Width: 14},
		{Title: "Size", Width: 7},
		{Title: "Walls", Width: 5},
		{Title: "Treasure", Width: 8},
		{Title: "Exit", Width: 6},
	}

	rows := make([]table.Row, len(scenes))
	for i, d := range scenes {
		exit := d.Exit.String()
		if i == len(scenes)-1 {
			exit = "end"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			d.ID,
			d.Name,
			fmt.Sprintf("%gx%g", d.Layout.Width, d.Layout.Height),
			fmt.Sprintf("%d", len(d.Layout.Walls)),
			fmt.Sprintf("%d", len(d.Treasure)),
			exit,
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+3), // Header and its border
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// Nothing is selectable in a printed listing
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t.View()
}

// KeysHelp renders the full key binding help.
func KeysHelp(km KeyMap, width int) string {
	h := help.New()
	h.Width = width

	var b strings.Builder
	b.WriteString(titleStyle.Render("Controls"))
	b.WriteString("\n\n")
	b.WriteString(h.FullHelpView(km.FullHelp()))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("ctrl+s saves a text screenshot to ~/.zombie/screenshots"))
	return b.String()
}
