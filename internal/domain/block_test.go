package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTree() *Block {
	return &Block{
		ID: "root", Type: TypeContainer, Name: "Section",
		Settings: map[string]any{}, Styles: map[string]any{},
		Children: []*Block{
			{
				ID: "stack", Type: TypeStack, Name: "Stack",
				Settings: map[string]any{}, Styles: map[string]any{},
				Children: []*Block{
					{ID: "h", Type: TypeHeading, Name: "Title", Settings: map[string]any{}, Styles: map[string]any{}},
					{ID: "t", Type: TypeText, Name: "Body", Settings: map[string]any{}, Styles: map[string]any{}},
				},
			},
			{ID: "img", Type: TypeImage, Name: "Picture", Settings: map[string]any{}, Styles: map[string]any{}},
		},
	}
}

func TestCanHaveChildren(t *testing.T) {
	cases := []struct {
		typ  BlockType
		want bool
	}{
		{TypeContainer, true},
		{TypeStack, true},
		{TypeGrid, true},
		{TypeCanvas, true},
		{TypeSlider, true},
		{TypeForm, true},
		{TypeHeader, true},
		{TypeFooter, true},
		{TypeButton, true},
		{TypeHeading, false},
		{TypeText, false},
		{TypeImage, false},
		{TypeDivider, false},
		{TypeInput, false},
		{TypeProductVariant, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CanHaveChildren(tc.typ), "type=%s", tc.typ)
	}
}

func TestFlatten_PreOrder(t *testing.T) {
	flat := Flatten([]*Block{testTree()})
	require.Len(t, flat, 5)

	ids := make([]string, len(flat))
	for i, f := range flat {
		ids[i] = f.Block.ID
	}
	assert.Equal(t, []string{"root", "stack", "h", "t", "img"}, ids)

	assert.Equal(t, 1, flat[0].Depth)
	assert.Equal(t, 2, flat[1].Depth)
	assert.Equal(t, 3, flat[2].Depth)
	assert.Equal(t, "Section > Stack > Title", flat[2].Path)
	assert.Equal(t, "Section > Picture", flat[4].Path)
}

func TestFlatten_LeafOnly(t *testing.T) {
	leaf := &Block{ID: "x", Type: TypeText, Name: "T"}
	flat := Flatten([]*Block{leaf})
	require.Len(t, flat, 1)
	assert.Equal(t, "T", flat[0].Path)
}

func TestDescendants_ExcludesSelf(t *testing.T) {
	d := Descendants(testTree())
	require.Len(t, d, 4)
	assert.Equal(t, "stack", d[0].Block.ID)
}

func TestByPath(t *testing.T) {
	root := testTree()

	got, ok := ByPath(root, nil)
	require.True(t, ok)
	assert.Same(t, root, got)

	got, ok = ByPath(root, []int{0, 1})
	require.True(t, ok)
	assert.Equal(t, "t", got.ID)

	_, ok = ByPath(root, []int{2})
	assert.False(t, ok)

	_, ok = ByPath(root, []int{0, 0, 0})
	assert.False(t, ok, "heading has no children")

	_, ok = ByPath(root, []int{-1})
	assert.False(t, ok)
}

func TestFindByID(t *testing.T) {
	roots := []*Block{testTree()}
	b := FindByID(roots, "t")
	require.NotNil(t, b)
	assert.Equal(t, TypeText, b.Type)
	assert.Nil(t, FindByID(roots, "missing"))
}

func TestNormalize_RestoresChildrenInvariant(t *testing.T) {
	raw, err := json.Marshal(&Block{
		ID: "a", Type: TypeContainer, Name: "Empty",
		Settings: map[string]any{}, Styles: map[string]any{},
		Children: []*Block{},
	})
	require.NoError(t, err)

	var back Block
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Nil(t, back.Children, "omitempty drops the empty slice")

	Normalize(&back)
	require.NotNil(t, back.Children)
	assert.Empty(t, back.Children)

	leaf := &Block{ID: "b", Type: TypeText, Children: []*Block{}}
	Normalize(leaf)
	assert.Nil(t, leaf.Children)
	assert.NotNil(t, leaf.Settings)
	assert.NotNil(t, leaf.Styles)
}

func TestStyleSyncableSettings(t *testing.T) {
	settings := map[string]any{
		"content": "Hello",
		"level":   "h2",
		"align":   "center",
	}
	sync := StyleSyncableSettings(TypeHeading, settings)
	assert.Equal(t, map[string]any{"level": "h2", "align": "center"}, sync)
}
