package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mselnes/forma/internal/action"
	"github.com/mselnes/forma/internal/block"
	"github.com/mselnes/forma/internal/domain"
	"github.com/mselnes/forma/internal/style"
)

func TestRenderTable(t *testing.T) {
	out := RenderTable(
		[]string{"Name", "Type"},
		[][]string{
			{"Hero", "container"},
			{"Headline", "heading"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Name")
	assert.Contains(t, lines[1], "─")
	assert.Contains(t, lines[2], "Hero")
	assert.Contains(t, lines[3], "Headline")
}

func TestRenderTable_Empty(t *testing.T) {
	assert.Equal(t, "", RenderTable(nil, nil))
}

func TestRenderTree_Connectors(t *testing.T) {
	out := RenderTree([]TreeItem{
		{Title: "Section", Level: 1, IsLast: false},
		{Title: "Heading", Level: 2, IsLast: false},
		{Title: "Text", Level: 2, IsLast: true},
		{Title: "Footer", Level: 1, IsLast: true},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "├─ Section")
	assert.Contains(t, lines[1], "│  ├─ Heading")
	assert.Contains(t, lines[2], "│  └─ Text")
	assert.Contains(t, lines[3], "└─ Footer")
}

func TestRenderTree_SelectionAndSharedMarkers(t *testing.T) {
	out := RenderTree([]TreeItem{
		{Title: "Hero", Level: 1, IsLast: false, Selected: true},
		{Title: "Button", Level: 1, IsLast: true, Shared: true},
	})

	assert.Contains(t, out, "▶")
	assert.Contains(t, out, "◆")
}

func TestRenderTree_BadgesRightAligned(t *testing.T) {
	out := RenderTree([]TreeItem{
		{Title: "A", Level: 1, Badge: "x1"},
		{Title: "A longer title", Level: 1, IsLast: true, Badge: "x2"},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "[ x1 ]")
	assert.Contains(t, lines[1], "[ x2 ]")
}

func TestFormatDocumentTree(t *testing.T) {
	section, err := block.NewSection(domain.TypeContainer)
	require.NoError(t, err)
	heading, err := block.NewSection(domain.TypeHeading)
	require.NoError(t, err)
	section.Children = append(section.Children, heading)

	doc := &domain.Document{
		ID:       "doc-1",
		Name:     "Landing",
		Blocks:   []*domain.Block{section},
		Language: "en",
	}

	out := FormatDocumentTree(DocumentTreeData{Document: doc, SelectedID: heading.ID})
	assert.Contains(t, out, "LANDING")
	assert.Contains(t, out, "doc-1")
	assert.Contains(t, out, section.Name)
	assert.Contains(t, out, "▶")
}

func TestFormatDocumentTree_Empty(t *testing.T) {
	doc := &domain.Document{ID: "doc-1", Name: "Blank", Language: "en"}
	out := FormatDocumentTree(DocumentTreeData{Document: doc})
	assert.Contains(t, out, "(empty document)")
}

func TestFormatResults(t *testing.T) {
	actions := []action.Action{
		{Type: action.TypeUpdateBlock, BlockID: "b1"},
		{Type: action.TypeCreateSection},
	}
	results := []action.Result{
		{Success: true, Message: "updated"},
		{Success: false, Message: "boom"},
	}

	out := FormatResults(actions, results)
	assert.Contains(t, out, "OK")
	assert.Contains(t, out, "FAILED")
	assert.Contains(t, out, "updated")
	assert.Contains(t, out, "boom")
}

func TestFormatDeclarations(t *testing.T) {
	blk := &domain.Block{Name: "Hero", Type: domain.TypeContainer}
	decls := []style.Declaration{
		{Property: "background-color", Value: "#fff"},
		{Property: "padding", Value: "16px"},
	}

	out := FormatDeclarations(blk, domain.ViewportMobile, decls)
	assert.Contains(t, out, "background-color: #fff;")
	assert.Contains(t, out, "padding: 16px;")
	assert.Contains(t, out, "mobile")
}

func TestFormatDeclarations_NoStyles(t *testing.T) {
	blk := &domain.Block{Name: "Hero", Type: domain.TypeContainer}
	out := FormatDeclarations(blk, domain.ViewportDesktop, nil)
	assert.Contains(t, out, "(no styles)")
}

func TestTruncID(t *testing.T) {
	out := TruncID("0123456789abcdef")
	assert.Contains(t, out, "01234567")
	assert.NotContains(t, out, "89abcdef")
}
