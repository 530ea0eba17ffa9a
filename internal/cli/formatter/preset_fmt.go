package formatter

import (
	"fmt"
	"strings"

	"github.com/mselnes/forma/internal/block"
	"github.com/mselnes/forma/internal/preset"
)

// FormatPresetList renders the preset catalog as a table grouped by the
// registry's category/name ordering.
func FormatPresetList(presets []preset.Preset) string {
	if len(presets) == 0 {
		return "No presets available.\n"
	}

	headers := []string{"ID", "Category", "Name", "Description"}
	rows := make([][]string, 0, len(presets))
	for _, p := range presets {
		rows = append(rows, []string{
			StyleGreen.Render(p.ID),
			StylePurple.Render(p.Category),
			p.Name,
			Dim(p.Description),
		})
	}
	return RenderTable(headers, rows)
}

// FormatPresetDetail renders one preset with its block outline.
func FormatPresetDetail(p preset.Preset) string {
	var b strings.Builder
	b.WriteString(Header(p.Name))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  ID:       %s\n", Bold(p.ID)))
	b.WriteString(fmt.Sprintf("  Category: %s\n", p.Category))
	if p.Description != "" {
		b.WriteString(fmt.Sprintf("  %s\n", Dim(p.Description)))
	}
	b.WriteString("\n")
	b.WriteString(Header("Blocks"))
	b.WriteString("\n")
	b.WriteString(RenderTree(specTreeItems(p.Blocks)))
	return b.String()
}

func specTreeItems(specs []block.Spec) []TreeItem {
	var items []TreeItem
	var walk func(specs []block.Spec, level int)
	walk = func(specs []block.Spec, level int) {
		for i, s := range specs {
			title := s.Name
			if title == "" {
				title = string(s.Type)
			}
			items = append(items, TreeItem{
				Title:  title + " " + TypeBadge(s.Type),
				Level:  level,
				IsLast: i == len(specs)-1,
			})
			walk(s.Children, level+1)
		}
	}
	walk(specs, 1)
	return items
}
