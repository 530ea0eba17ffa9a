package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mselnes/forma/internal/domain"
)

func TestDefaultTables_CoverEveryType(t *testing.T) {
	for _, typ := range domain.AllBlockTypes {
		settings, err := DefaultSettings(typ)
		require.NoError(t, err, "settings for %s", typ)
		assert.NotNil(t, settings)

		styles, err := DefaultStyles(typ)
		require.NoError(t, err, "styles for %s", typ)
		assert.NotNil(t, styles)
	}
}

func TestDefaultTables_UnknownTypeFails(t *testing.T) {
	_, err := DefaultSettings(domain.BlockType("hologram"))
	require.ErrorIs(t, err, ErrUnknownType)

	_, err = DefaultStyles(domain.BlockType("hologram"))
	require.ErrorIs(t, err, ErrUnknownType)
}

func TestDefaultSettings_FreshInstances(t *testing.T) {
	a, err := DefaultSettings(domain.TypeContainer)
	require.NoError(t, err)
	b, err := DefaultSettings(domain.TypeContainer)
	require.NoError(t, err)

	a["gap"] = 999
	assert.Equal(t, 16, b["gap"])
}

func TestTypeLabel_Fallback(t *testing.T) {
	assert.Equal(t, "Section", TypeLabel(domain.TypeContainer))
	assert.Equal(t, "mystery", TypeLabel(domain.BlockType("mystery")))
}

func TestNewSection_ChildrenInvariant(t *testing.T) {
	for _, typ := range domain.AllBlockTypes {
		b, err := NewSection(typ)
		require.NoError(t, err, "type=%s", typ)
		if domain.CanHaveChildren(typ) {
			assert.NotNil(t, b.Children, "type=%s must have children defined", typ)
		} else {
			assert.Nil(t, b.Children, "type=%s must not have children", typ)
		}
		assert.NotEmpty(t, b.ID)
		assert.NotEmpty(t, b.Name)
	}
}

func TestNewSection_UniqueIDs(t *testing.T) {
	a, err := NewSection(domain.TypeContainer)
	require.NoError(t, err)
	b, err := NewSection(domain.TypeContainer)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestNewSection_HeaderRegions(t *testing.T) {
	h, err := NewSection(domain.TypeHeader)
	require.NoError(t, err)
	require.Len(t, h.Children, 3)

	regions := make([]string, 3)
	for i, c := range h.Children {
		assert.Equal(t, domain.TypeStack, c.Type)
		assert.Equal(t, "row", c.Settings["direction"])
		regions[i], _ = c.Settings["region"].(string)
	}
	assert.Equal(t, []string{"start", "middle", "end"}, regions)
}

func TestNewSection_FooterRegions(t *testing.T) {
	f, err := NewSection(domain.TypeFooter)
	require.NoError(t, err)
	require.Len(t, f.Children, 3)
}

func TestNewSection_ButtonTextChild(t *testing.T) {
	b, err := NewSection(domain.TypeButton)
	require.NoError(t, err)
	require.Len(t, b.Children, 1)
	assert.Equal(t, domain.TypeText, b.Children[0].Type)
	assert.Equal(t, b.Settings["label"], b.Children[0].Settings["content"])
}

func TestNewSection_SliderRoles(t *testing.T) {
	s, err := NewSection(domain.TypeSlider)
	require.NoError(t, err)
	require.Len(t, s.Children, 3)

	roles, ok := s.Settings["roles"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, s.Children[0].ID, roles["prevArrow"])
	assert.Equal(t, s.Children[1].ID, roles["nextArrow"])
	assert.Equal(t, s.Children[2].ID, roles["slide"])
	assert.Equal(t, domain.TypeIcon, s.Children[0].Type)
	assert.Equal(t, domain.TypeStack, s.Children[2].Type)
}

func TestFromSpec_MergesOverDefaults(t *testing.T) {
	b, err := FromSpec(Spec{
		Type:     domain.TypeHeading,
		Name:     "Hero Title",
		Settings: map[string]any{"content": "Hi"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Hero Title", b.Name)
	assert.Equal(t, "Hi", b.Settings["content"])
	assert.Equal(t, "h2", b.Settings["level"], "unspecified defaults survive")
	assert.Equal(t, "#111111", b.Styles["color"])
}

func TestFromSpec_RecursiveChildrenFreshIDs(t *testing.T) {
	b, err := FromSpec(Spec{
		Type: domain.TypeContainer,
		Children: []Spec{
			{Type: domain.TypeStack, Children: []Spec{
				{Type: domain.TypeText, Settings: map[string]any{"content": "deep"}},
			}},
		},
	})
	require.NoError(t, err)

	require.Len(t, b.Children, 1)
	require.Len(t, b.Children[0].Children, 1)
	leaf := b.Children[0].Children[0]
	assert.Equal(t, "deep", leaf.Settings["content"])

	seen := map[string]bool{}
	for _, f := range domain.Flatten([]*domain.Block{b}) {
		assert.False(t, seen[f.Block.ID], "duplicate id %s", f.Block.ID)
		seen[f.Block.ID] = true
	}
}

func TestFromSpec_DefaultName(t *testing.T) {
	b, err := FromSpec(Spec{Type: domain.TypeText})
	require.NoError(t, err)
	assert.Equal(t, "Text", b.Name)
}

func TestFromSpec_UnknownType(t *testing.T) {
	_, err := FromSpec(Spec{Type: domain.BlockType("nope")})
	require.ErrorIs(t, err, ErrUnknownType)
}

func TestFromSpec_ChildrenOnLeafDropped(t *testing.T) {
	b, err := FromSpec(Spec{
		Type:     domain.TypeText,
		Children: []Spec{{Type: domain.TypeText}},
	})
	require.NoError(t, err)
	assert.Nil(t, b.Children)
}
