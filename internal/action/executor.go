package action

import (
	"fmt"
	"strconv"

	"github.com/mselnes/forma/internal/block"
	"github.com/mselnes/forma/internal/domain"
	"github.com/mselnes/forma/internal/merge"
	"github.com/mselnes/forma/internal/store"
	"github.com/mselnes/forma/internal/style"
)

// Executor interprets actions against an injected document store. It is the
// one place exceptions are caught: Execute never panics through to the
// caller, and callers inspect Result.Success instead of wrapping in recover.
type Executor struct {
	store store.DocumentStore
}

// NewExecutor returns an Executor bound to the given store.
func NewExecutor(s store.DocumentStore) *Executor {
	return &Executor{store: s}
}

// ExecuteAll runs a batch strictly in order. Actions execute independently:
// one failure never blocks the rest.
func (e *Executor) ExecuteAll(actions []Action) []Result {
	results := make([]Result, 0, len(actions))
	for _, a := range actions {
		results = append(results, e.Execute(a))
	}
	return results
}

// Execute interprets one action and returns its uniform result.
func (e *Executor) Execute(a Action) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = fail(fmt.Sprintf("internal error executing %s: %v", Describe(a), r))
		}
	}()

	switch a.Type {
	case TypeCreateSection:
		return e.createSection(a)
	case TypeUpdateBlock:
		return e.updateBlock(a)
	case TypeUpdatePageSettings:
		return e.updatePageSettings(a)
	case TypeAddAnimation:
		return e.addAnimation(a)
	case TypeTranslateBlock:
		return e.translateBlock(a)
	case TypeSEOSuggestion:
		return e.seoSuggestion(a)
	case TypeAddChildren:
		return e.addChildren(a)
	case TypeDuplicateBlock:
		return e.duplicateBlock(a)
	default:
		return fail(fmt.Sprintf("unknown action type %q", a.Type))
	}
}

func fail(msg string) Result {
	return Result{Success: false, Message: msg}
}

// resolveTarget maps a literal id or the "selected" sentinel to a block.
// The failure messages distinguish an empty selection from a missing id.
func (e *Executor) resolveTarget(blockID string) (*domain.Block, Result) {
	id := blockID
	if id == "" || id == TargetSelected {
		id = e.store.SelectedBlockID()
		if id == "" {
			return nil, fail("no block selected")
		}
	}
	b := e.store.FindBlock(id)
	if b == nil {
		return nil, fail(fmt.Sprintf("block %q not found", id))
	}
	return b, Result{}
}

// sectionDefaults are the sensible container settings a new section starts
// from before the action's own container payload is merged on top.
func sectionDefaults() map[string]any {
	return map[string]any{
		"direction": "column",
		"align":     "center",
		"gap":       24,
	}
}

func sectionStyleDefaults() map[string]any {
	return map[string]any{
		"padding": map[string]any{"top": 64, "bottom": 64, "left": 24, "right": 24},
	}
}

func (e *Executor) createSection(a Action) Result {
	if a.Section == nil {
		return fail("create_section requires a section payload")
	}
	sec := a.Section

	b, err := block.FromSpec(block.Spec{
		Type:     domain.TypeContainer,
		Name:     sec.Name,
		Settings: merge.Merge(sectionDefaults(), sec.Container.Settings),
		Styles:   merge.Merge(sectionStyleDefaults(), sec.Container.Styles),
		Children: sec.Children,
	})
	if err != nil {
		return fail(fmt.Sprintf("building section: %v", err))
	}
	if sec.Name == "" {
		b.Name = "New Section"
	}
	if err := e.store.AddBlock("", b); err != nil {
		return fail(fmt.Sprintf("adding section: %v", err))
	}
	return Result{
		Success: true,
		Message: fmt.Sprintf("Created section %q with %d blocks", b.Name, len(b.Children)),
		BlockID: b.ID,
	}
}

func (e *Executor) updateBlock(a Action) Result {
	b, errRes := e.resolveTarget(a.BlockID)
	if b == nil {
		return errRes
	}
	// Selection moves even when no patch fields are supplied.
	e.store.SetSelectedBlockID(b.ID)

	if a.Settings != nil {
		if err := e.store.UpdateBlockSettings(b.ID, a.Settings); err != nil {
			return fail(fmt.Sprintf("updating settings: %v", err))
		}
	}
	if a.Styles != nil {
		if err := e.store.UpdateBlockStyles(b.ID, a.Styles); err != nil {
			return fail(fmt.Sprintf("updating styles: %v", err))
		}
	}
	return Result{
		Success: true,
		Message: fmt.Sprintf("Updated %q", b.Name),
		BlockID: b.ID,
	}
}

func (e *Executor) updatePageSettings(a Action) Result {
	patch := a.PageSettings
	if patch == nil {
		patch = a.Settings
	}
	e.store.UpdatePageSettings(patch)
	return Result{Success: true, Message: "Updated page settings"}
}

func (e *Executor) addAnimation(a Action) Result {
	b, errRes := e.resolveTarget(a.BlockID)
	if b == nil {
		return errRes
	}
	e.store.SetSelectedBlockID(b.ID)

	anim := style.DefaultAnimation()
	if a.Animation != nil {
		if a.Animation.Type != "" {
			anim.Type = a.Animation.Type
		}
		if a.Animation.Duration > 0 {
			anim.Duration = a.Animation.Duration
		}
		if a.Animation.Delay > 0 {
			anim.Delay = a.Animation.Delay
		}
		if a.Animation.Easing != "" {
			anim.Easing = a.Animation.Easing
		}
	}

	patch := map[string]any{
		style.KeyAnimation: map[string]any{
			"type":     anim.Type,
			"duration": anim.Duration,
			"delay":    anim.Delay,
			"easing":   anim.Easing,
			"trigger":  style.TriggerOnLoad,
		},
	}
	if err := e.store.UpdateBlockStyles(b.ID, patch); err != nil {
		return fail(fmt.Sprintf("writing animation: %v", err))
	}
	e.store.TriggerAnimationPreview(b.ID)
	return Result{
		Success: true,
		Message: fmt.Sprintf("Added %s animation to %q", anim.Type, b.Name),
		BlockID: b.ID,
	}
}

func (e *Executor) translateBlock(a Action) Result {
	b, errRes := e.resolveTarget(a.BlockID)
	if b == nil {
		return errRes
	}
	if a.Language == "" {
		return fail("translate_block requires a target language")
	}

	// The active language is restored no matter how the field loop ends; a
	// failed write must not leave the document switched.
	previous := e.store.Language()
	e.store.SetLanguage(a.Language)
	defer e.store.SetLanguage(previous)

	written := 0
	for field, value := range a.Translations {
		if err := e.store.SetTranslation(b.ID, field, value); err != nil {
			return fail(fmt.Sprintf("translating field %q: %v", field, err))
		}
		written++
	}
	return Result{
		Success: true,
		Message: fmt.Sprintf("Translated %d fields of %q to %s", written, b.Name, a.Language),
		BlockID: b.ID,
	}
}

func (e *Executor) seoSuggestion(a Action) Result {
	return Result{
		Success: true,
		Message: fmt.Sprintf("%d SEO suggestions", len(a.Suggestions)),
	}
}

// addChildrenParents are the container kinds add_children may target. The
// set is narrower than CanHaveChildren: structural blocks manage their own
// children.
var addChildrenParents = map[domain.BlockType]bool{
	domain.TypeContainer: true,
	domain.TypeStack:     true,
	domain.TypeGrid:      true,
	domain.TypeCanvas:    true,
}

func (e *Executor) addChildren(a Action) Result {
	b, errRes := e.resolveTarget(a.BlockID)
	if b == nil {
		return errRes
	}
	if !addChildrenParents[b.Type] {
		return fail(fmt.Sprintf("block %q (%s) cannot have children added", b.Name, b.Type))
	}
	if len(a.Children) == 0 {
		return fail("add_children requires at least one child")
	}

	added := 0
	for _, spec := range a.Children {
		child, err := block.FromSpec(spec)
		if err != nil {
			return fail(fmt.Sprintf("building child %d: %v", added+1, err))
		}
		if err := e.store.AddBlock(b.ID, child); err != nil {
			return fail(fmt.Sprintf("adding child %d: %v", added+1, err))
		}
		added++
	}
	return Result{
		Success: true,
		Message: fmt.Sprintf("Added %d blocks to %q", added, b.Name),
		BlockID: b.ID,
	}
}

func (e *Executor) duplicateBlock(a Action) Result {
	b, errRes := e.resolveTarget(a.BlockID)
	if b == nil {
		return errRes
	}

	count := a.Count
	if count < 1 {
		count = 1
	}
	if count > block.MaxDuplicates {
		count = block.MaxDuplicates
	}

	var firstID string
	produced := 0
	for i := 0; i < count; i++ {
		copyBlock, err := e.store.DuplicateBlock(b.ID)
		if err != nil {
			continue
		}
		produced++
		if firstID == "" {
			firstID = copyBlock.ID
		}

		key := strconv.Itoa(i)
		if patch, ok := a.RootUpdates[key]; ok {
			// A failed per-copy patch is skipped, not fatal.
			_ = e.store.UpdateBlockSettings(copyBlock.ID, patch)
		}
		if updates, ok := a.ChildUpdates[key]; ok {
			block.ApplyChildUpdates(copyBlock, updates)
		}
	}

	if produced == 0 {
		return fail(fmt.Sprintf("could not duplicate %q", b.Name))
	}
	return Result{
		Success: true,
		Message: fmt.Sprintf("Duplicated %q %d times", b.Name, produced),
		BlockID: firstID,
	}
}
