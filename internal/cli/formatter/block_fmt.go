package formatter

import (
	"fmt"
	"strings"

	"github.com/mselnes/forma/internal/action"
	"github.com/mselnes/forma/internal/domain"
	"github.com/mselnes/forma/internal/style"
)

// DocumentTreeData carries everything needed to render a document's block
// tree: the roots, the current selection, and the active language.
type DocumentTreeData struct {
	Document   *domain.Document
	SelectedID string
}

// FormatDocumentTree renders a document header followed by its block tree.
// Each block line shows the name, a dimmed short id badge, and markers for
// selection and shared-style membership.
func FormatDocumentTree(data DocumentTreeData) string {
	doc := data.Document

	var b strings.Builder
	b.WriteString(Header(doc.Name))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  ID:       %s\n", Dim(doc.ID)))
	b.WriteString(fmt.Sprintf("  Language: %s\n", doc.Language))
	b.WriteString(fmt.Sprintf("  Blocks:   %d\n", len(domain.Flatten(doc.Blocks))))
	b.WriteString("\n")

	items := blockTreeItems(doc.Blocks, data.SelectedID)
	if len(items) == 0 {
		b.WriteString(Dim("  (empty document)") + "\n")
		return b.String()
	}
	b.WriteString(RenderTree(items))
	return b.String()
}

func blockTreeItems(roots []*domain.Block, selectedID string) []TreeItem {
	var items []TreeItem
	var walk func(blocks []*domain.Block, level int)
	walk = func(blocks []*domain.Block, level int) {
		for i, blk := range blocks {
			title := blk.Name + " " + TypeBadge(blk.Type)
			items = append(items, TreeItem{
				Title:    title,
				Level:    level,
				IsLast:   i == len(blocks)-1,
				Badge:    shortID(blk.ID),
				Selected: blk.ID == selectedID,
				Shared:   blk.SharedStyleID != "",
			})
			walk(blk.Children, level+1)
		}
	}
	walk(roots, 1)
	return items
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// FormatResults renders one line per executed action with a pass/fail
// indicator, the action label, and the executor's message.
func FormatResults(actions []action.Action, results []action.Result) string {
	var b strings.Builder
	b.WriteString(Header("Results"))
	b.WriteString("\n")
	for i, res := range results {
		label := "?"
		if i < len(actions) {
			label = action.Describe(actions[i])
		}
		line := fmt.Sprintf("  %s  %s", ResultIndicator(res.Success), Bold(label))
		if res.Message != "" {
			line += "  " + Dim(res.Message)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

// FormatDeclarations renders resolved CSS declarations for a block at one
// viewport, one "property: value;" line per declaration.
func FormatDeclarations(blk *domain.Block, v domain.Viewport, decls []style.Declaration) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("%s @ %s", blk.Name, v)))
	b.WriteString("\n")
	if len(decls) == 0 {
		b.WriteString(Dim("  (no styles)") + "\n")
		return b.String()
	}
	for _, d := range decls {
		b.WriteString(fmt.Sprintf("  %s: %s;\n", StyleBlue.Render(d.Property), d.Value))
	}
	return b.String()
}
