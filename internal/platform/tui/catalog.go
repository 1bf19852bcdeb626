package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

var previewStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 1)

// ShapePreview draws a shape in spawn orientation the way the NEXT box shows it.
func ShapePreview(shape *tetris.Shape, palette Palette) string {
	s := core.NewScreen(tetris.PreviewColumns*2, tetris.PreviewLines)
	area := core.NewRect(0, 0, tetris.PreviewColumns, tetris.PreviewLines)
	color := core.ColorByName(shape.Color)
	for _, c := range shape.AbsoluteCells(tetris.PreviewOriginLine, tetris.PreviewOriginColumn) {
		if !area.Contains(c.Column, c.Line) {
			continue
		}
		s.SetColored(c.Column*2, c.Line, '[', color)
		s.SetColored(c.Column*2+1, c.Line, ']', color)
	}
	return palette.Render(s)
}

// CatalogTable lists shapes with their color and pivot.
func CatalogTable(shapes []*tetris.Shape) table.Model {
	columns := []table.Column{
		{Title: "Name", Width: 6},
		{Title: "Color", Width: 10},
		{Title: "Cells", Width: 6},
		{Title: "Pivot", Width: 12},
	}

	rows := make([]table.Row, len(shapes))
	for i, s := range shapes {
		rows[i] = table.Row{
			s.Name,
			s.Color,
			strconv.Itoa(len(s.RelativeCells())),
			fmt.Sprintf("%g, %g", s.CenterLine, s.CenterColumn),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+3), // rows plus the bordered header
	)

	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	st.Selected = lipgloss.NewStyle()
	t.SetStyles(st)
	return t
}

// RenderCatalog shows every shape preview side by side above the table.
func RenderCatalog(shapes []*tetris.Shape, palette Palette) string {
	boxes := make([]string, 0, len(shapes))
	for _, s := range shapes {
		body := lipgloss.JoinVertical(lipgloss.Center, s.Name, ShapePreview(s, palette))
		boxes = append(boxes, previewStyle.Render(body))
	}
	previews := lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
	return lipgloss.JoinVertical(lipgloss.Left, previews, "", CatalogTable(shapes).View())
}
