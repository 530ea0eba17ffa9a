package action

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mselnes/forma/internal/block"
	"github.com/mselnes/forma/internal/domain"
	"github.com/mselnes/forma/internal/store"
	"github.com/mselnes/forma/internal/style"
)

func newFixture(t *testing.T) (*Executor, *store.Editor) {
	t.Helper()
	e := store.NewEditor(nil)
	return NewExecutor(e), e
}

func seedSection(t *testing.T, ed *store.Editor) *domain.Block {
	t.Helper()
	b, err := block.FromSpec(block.Spec{
		Type: domain.TypeContainer,
		Name: "Hero",
		Children: []block.Spec{
			{Type: domain.TypeHeading, Settings: map[string]any{"content": "Welcome"}},
			{Type: domain.TypeText, Settings: map[string]any{"content": "Body"}},
		},
	})
	require.NoError(t, err)
	require.NoError(t, ed.AddBlock("", b))
	return b
}

func TestCreateSection_EndToEnd(t *testing.T) {
	ex, ed := newFixture(t)

	res := ex.Execute(Action{
		Type: TypeCreateSection,
		Section: &Section{
			Name:      "Hero",
			Container: ContainerPayload{Settings: map[string]any{}, Styles: map[string]any{}},
			Children: []block.Spec{
				{Type: domain.TypeHeading, Name: "H", Settings: map[string]any{"content": "Hi"}},
			},
		},
	})

	require.True(t, res.Success, res.Message)
	require.NotEmpty(t, res.BlockID)

	created := ed.FindBlock(res.BlockID)
	require.NotNil(t, created, "new section visible through the store")
	assert.Equal(t, domain.TypeContainer, created.Type)
	assert.Equal(t, "Hero", created.Name)
	require.Len(t, created.Children, 1)

	h := created.Children[0]
	assert.Equal(t, "Hi", h.Settings["content"])
	assert.Equal(t, "h2", h.Settings["level"], "heading defaults survive the merge")
}

func TestCreateSection_ContainerOverrides(t *testing.T) {
	ex, ed := newFixture(t)
	res := ex.Execute(Action{
		Type: TypeCreateSection,
		Section: &Section{
			Container: ContainerPayload{Settings: map[string]any{"gap": 48}},
		},
	})
	require.True(t, res.Success)

	created := ed.FindBlock(res.BlockID)
	assert.Equal(t, 48, created.Settings["gap"])
	assert.Equal(t, "column", created.Settings["direction"], "section default")
	assert.Equal(t, "New Section", created.Name)
}

func TestCreateSection_MissingPayload(t *testing.T) {
	ex, _ := newFixture(t)
	res := ex.Execute(Action{Type: TypeCreateSection})
	assert.False(t, res.Success)
}

func TestUpdateBlock_SelectsEvenWithoutPatch(t *testing.T) {
	ex, ed := newFixture(t)
	sec := seedSection(t, ed)

	res := ex.Execute(Action{Type: TypeUpdateBlock, BlockID: sec.Children[0].ID})
	require.True(t, res.Success)
	assert.Equal(t, sec.Children[0].ID, ed.SelectedBlockID())
}

func TestUpdateBlock_SelectedSentinel(t *testing.T) {
	ex, ed := newFixture(t)
	sec := seedSection(t, ed)
	heading := sec.Children[0]
	ed.SetSelectedBlockID(heading.ID)

	res := ex.Execute(Action{
		Type:     TypeUpdateBlock,
		BlockID:  TargetSelected,
		Settings: map[string]any{"content": "Changed"},
		Styles:   map[string]any{"color": "#ff0000"},
	})
	require.True(t, res.Success, res.Message)
	assert.Equal(t, "Changed", heading.Settings["content"])
	assert.Equal(t, "#ff0000", heading.Styles["color"])
}

func TestUpdateBlock_NoSelection(t *testing.T) {
	ex, _ := newFixture(t)
	res := ex.Execute(Action{Type: TypeUpdateBlock, BlockID: TargetSelected})
	require.False(t, res.Success)
	assert.Equal(t, "no block selected", res.Message)
}

func TestUpdateBlock_NotFound(t *testing.T) {
	ex, _ := newFixture(t)
	res := ex.Execute(Action{Type: TypeUpdateBlock, BlockID: "ghost"})
	require.False(t, res.Success)
	assert.Contains(t, res.Message, "not found")
}

func TestUpdatePageSettings(t *testing.T) {
	ex, ed := newFixture(t)
	res := ex.Execute(Action{
		Type:         TypeUpdatePageSettings,
		PageSettings: map[string]any{"fontFamily": "Space Grotesk"},
	})
	require.True(t, res.Success)
	assert.Equal(t, "Space Grotesk", ed.PageSettings()["fontFamily"])
}

func TestAddAnimation(t *testing.T) {
	ex, ed := newFixture(t)
	sec := seedSection(t, ed)

	var previewed string
	ed.OnAnimationPreview(func(id string) { previewed = id })

	res := ex.Execute(Action{
		Type:      TypeAddAnimation,
		BlockID:   sec.ID,
		Animation: &AnimationPayload{Type: "slide-up", Duration: 1.2},
	})
	require.True(t, res.Success, res.Message)

	anim, ok := sec.Styles[style.KeyAnimation].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "slide-up", anim["type"])
	assert.Equal(t, 1.2, anim["duration"])
	assert.Equal(t, style.TriggerOnLoad, anim["trigger"])
	assert.Equal(t, sec.ID, previewed)
	assert.Equal(t, sec.ID, ed.SelectedBlockID())
}

func TestTranslateBlock_RestoresLanguage(t *testing.T) {
	ex, ed := newFixture(t)
	sec := seedSection(t, ed)
	heading := sec.Children[0]
	require.Equal(t, "en", ed.Language())

	res := ex.Execute(Action{
		Type:         TypeTranslateBlock,
		BlockID:      heading.ID,
		Language:     "fr",
		Translations: map[string]string{"content": "Bienvenue"},
	})
	require.True(t, res.Success, res.Message)

	assert.Equal(t, "en", ed.Language(), "active language restored")
	v, ok := ed.Translation("fr", heading.ID, "content")
	require.True(t, ok)
	assert.Equal(t, "Bienvenue", v)
}

func TestTranslateBlock_RestoresLanguageOnFailure(t *testing.T) {
	_, ed := newFixture(t)
	sec := seedSection(t, ed)

	failing := &failingTranslationStore{Editor: ed}
	res := NewExecutor(failing).Execute(Action{
		Type:         TypeTranslateBlock,
		BlockID:      sec.Children[0].ID,
		Language:     "de",
		Translations: map[string]string{"content": "Willkommen"},
	})
	assert.False(t, res.Success)
	assert.Equal(t, "en", ed.Language(), "restore happens even when a write fails")
}

func TestTranslateBlock_MissingLanguage(t *testing.T) {
	ex, ed := newFixture(t)
	sec := seedSection(t, ed)
	res := ex.Execute(Action{Type: TypeTranslateBlock, BlockID: sec.ID})
	assert.False(t, res.Success)
}

// failingTranslationStore fails every translation write.
type failingTranslationStore struct {
	*store.Editor
}

func (s *failingTranslationStore) SetTranslation(blockID, field, value string) error {
	return assert.AnError
}

func TestSEOSuggestion_DisplayOnly(t *testing.T) {
	ex, ed := newFixture(t)
	before := len(ed.Blocks())

	a := Action{
		Type: TypeSEOSuggestion,
		Suggestions: []Suggestion{
			{Issue: "Missing meta description", Fix: "Add one", Priority: "high"},
			{Issue: "Single h1 missing", Fix: "Promote the hero heading", Priority: "medium"},
		},
	}
	res := ex.Execute(a)
	require.True(t, res.Success)
	assert.Contains(t, res.Message, "2 SEO suggestions")
	assert.Len(t, ed.Blocks(), before, "no document mutation")
	assert.True(t, IsDisplayOnly(a))
	assert.False(t, IsDisplayOnly(Action{Type: TypeUpdateBlock}))
}

func TestAddChildren_StructuralGuard(t *testing.T) {
	ex, ed := newFixture(t)
	sec := seedSection(t, ed)
	textBlock := sec.Children[1]

	res := ex.Execute(Action{
		Type:     TypeAddChildren,
		BlockID:  textBlock.ID,
		Children: []block.Spec{{Type: domain.TypeText}},
	})
	require.False(t, res.Success)
	assert.Contains(t, res.Message, "cannot have children")
	assert.Nil(t, textBlock.Children, "document unchanged")
}

func TestAddChildren_AppendsUnderContainer(t *testing.T) {
	ex, ed := newFixture(t)
	sec := seedSection(t, ed)

	res := ex.Execute(Action{
		Type:    TypeAddChildren,
		BlockID: sec.ID,
		Children: []block.Spec{
			{Type: domain.TypeButton, Settings: map[string]any{"label": "Go"}},
			{Type: domain.TypeDivider},
		},
	})
	require.True(t, res.Success, res.Message)
	require.Len(t, sec.Children, 4)
	assert.Equal(t, domain.TypeButton, sec.Children[2].Type)
	assert.Equal(t, domain.TypeDivider, sec.Children[3].Type)
}

func TestDuplicateBlock_WithPerCopyPatch(t *testing.T) {
	ex, ed := newFixture(t)
	sec := seedSection(t, ed)

	res := ex.Execute(Action{
		Type:    TypeDuplicateBlock,
		BlockID: sec.ID,
		Count:   3,
		ChildUpdates: map[string][]block.ChildUpdate{
			"1": {{Path: []int{0}, Settings: map[string]any{"content": "X"}}},
		},
	})
	require.True(t, res.Success, res.Message)
	require.Len(t, ed.Blocks(), 4, "original plus three copies")

	// Each copy lands right after the original, so document order is the
	// reverse of creation order: [copy2, copy1, copy0].
	copies := ed.Blocks()[1:]
	assert.Equal(t, "Welcome", copies[0].Children[0].Settings["content"])
	assert.Equal(t, "X", copies[1].Children[0].Settings["content"])
	assert.Equal(t, "Welcome", copies[2].Children[0].Settings["content"])
	assert.Equal(t, res.BlockID, copies[2].ID, "first produced copy id is reported")
}

func TestDuplicateBlock_ClampsCount(t *testing.T) {
	ex, ed := newFixture(t)
	sec := seedSection(t, ed)

	res := ex.Execute(Action{Type: TypeDuplicateBlock, BlockID: sec.ID, Count: 50})
	require.True(t, res.Success)
	assert.Len(t, ed.Blocks(), 1+block.MaxDuplicates)
}

func TestDuplicateBlock_DefaultsToOne(t *testing.T) {
	ex, ed := newFixture(t)
	sec := seedSection(t, ed)
	res := ex.Execute(Action{Type: TypeDuplicateBlock, BlockID: sec.ID})
	require.True(t, res.Success)
	assert.Len(t, ed.Blocks(), 2)
}

func TestExecute_UnknownActionSoftFails(t *testing.T) {
	ex, _ := newFixture(t)
	res := ex.Execute(Action{Type: "paint_it_teal"})
	require.False(t, res.Success)
	assert.Contains(t, res.Message, "unknown action type")
}

// panickyStore panics on FindBlock to prove the executor's recover boundary.
type panickyStore struct {
	*store.Editor
}

func (s *panickyStore) FindBlock(id string) *domain.Block {
	panic("store exploded")
}

func TestExecute_NeverPanics(t *testing.T) {
	ed := store.NewEditor(nil)
	ed.SetSelectedBlockID("x")
	ex := NewExecutor(&panickyStore{Editor: ed})

	res := ex.Execute(Action{Type: TypeUpdateBlock, BlockID: "anything"})
	require.False(t, res.Success)
	assert.Contains(t, res.Message, "internal error")
}

func TestExecuteAll_IndependentInOrder(t *testing.T) {
	ex, ed := newFixture(t)
	sec := seedSection(t, ed)

	results := ex.ExecuteAll([]Action{
		{Type: TypeUpdateBlock, BlockID: "ghost"},
		{Type: TypeUpdateBlock, BlockID: sec.ID, Settings: map[string]any{"gap": 8}},
		{Type: "bogus"},
	})

	require.Len(t, results, 3)
	assert.False(t, results[0].Success)
	assert.True(t, results[1].Success)
	assert.False(t, results[2].Success)
	assert.Equal(t, 8, sec.Settings["gap"], "later actions ran despite earlier failure")
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "Create section", Describe(Action{Type: TypeCreateSection}))
	assert.Equal(t, "Duplicate block", Describe(Action{Type: TypeDuplicateBlock}))
	assert.Equal(t, "Unknown action", Describe(Action{Type: "???"}))
}

func TestIsKnownType(t *testing.T) {
	for _, k := range KnownTypes {
		assert.True(t, IsKnownType(k))
	}
	assert.False(t, IsKnownType("mystery"))
}
