package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/goliatone/go-dashboard-layout/components/layout"
)

const previewColumnWidth = 6

var (
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	itemStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	nestedStyle  = itemStyle.BorderForeground(lipgloss.Color("212"))
	emptyStyle   = itemStyle.BorderStyle(lipgloss.HiddenBorder()).Faint(true)
)

func renderPreview(sections []layout.RenderedSection, screen layout.ScreenSize) string {
	blocks := []string{sectionStyle.Render(fmt.Sprintf("screen %s", screen))}
	for _, section := range sections {
		title := fmt.Sprintf("section %d", section.Index)
		if section.Header != nil && section.Header.Title != "" {
			title += ": " + section.Header.Title
		}
		blocks = append(blocks, sectionStyle.Render(title))
		for _, row := range section.Rows {
			boxes := make([]string, 0, len(row))
			for _, rendered := range row {
				boxes = append(boxes, renderBox(rendered, screen))
			}
			blocks = append(blocks, lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func renderBox(rendered layout.RenderedItem, screen layout.ScreenSize) string {
	size := layout.SizeForScreen(screen, &rendered.Item.Size)
	style := itemStyle
	kind := "empty"
	switch {
	case rendered.Item.Widget == nil:
		style = emptyStyle
	case rendered.Item.Widget.IsNestedLayout():
		style = nestedStyle
		kind = string(rendered.Item.Widget.Type)
	default:
		kind = string(rendered.Item.Widget.Type)
	}
	lines := []string{rendered.Path.String(), kind, fmt.Sprintf("%d cols", size.GridWidth)}
	if size.HasGridHeight() {
		lines = append(lines, fmt.Sprintf("%d rows", size.GridHeight))
	}
	// Border takes two cells of the column budget.
	width := max(size.GridWidth*previewColumnWidth-2, 6)
	return style.Width(width).Render(strings.Join(lines, "\n"))
}
