package domain

// BlockType is the closed set of element kinds a page tree can contain.
type BlockType string

const (
	// Layout kinds.
	TypeContainer BlockType = "container"
	TypeStack     BlockType = "stack"
	TypeGrid      BlockType = "grid"
	TypeCanvas    BlockType = "canvas"
	TypeSlider    BlockType = "slider"
	TypeForm      BlockType = "form"

	// Content kinds.
	TypeHeading BlockType = "heading"
	TypeText    BlockType = "text"
	TypeImage   BlockType = "image"
	TypeVideo   BlockType = "video"
	TypeButton  BlockType = "button"
	TypeIcon    BlockType = "icon"
	TypeDivider BlockType = "divider"

	// Structural kinds.
	TypeHeader BlockType = "header"
	TypeFooter BlockType = "footer"

	// Form field kinds.
	TypeInput    BlockType = "input"
	TypeTextarea BlockType = "textarea"
	TypeSelect   BlockType = "select"
	TypeCheckbox BlockType = "checkbox"
	TypeSubmit   BlockType = "submit"

	// Commerce kinds.
	TypeProductVariant BlockType = "productVariant"
)

// AllBlockTypes is the canonical enumeration order, used by factories and
// exhaustiveness tests.
var AllBlockTypes = []BlockType{
	TypeContainer, TypeStack, TypeGrid, TypeCanvas, TypeSlider, TypeForm,
	TypeHeading, TypeText, TypeImage, TypeVideo, TypeButton, TypeIcon, TypeDivider,
	TypeHeader, TypeFooter,
	TypeInput, TypeTextarea, TypeSelect, TypeCheckbox, TypeSubmit,
	TypeProductVariant,
}

// IsValidBlockType reports whether t belongs to the closed enumeration.
func IsValidBlockType(t BlockType) bool {
	for _, v := range AllBlockTypes {
		if v == t {
			return true
		}
	}
	return false
}

var childBearingTypes = map[BlockType]bool{
	TypeContainer: true,
	TypeStack:     true,
	TypeGrid:      true,
	TypeCanvas:    true,
	TypeSlider:    true,
	TypeForm:      true,
	TypeHeader:    true,
	TypeFooter:    true,
	TypeButton:    true,
}

// CanHaveChildren is the single source of truth for whether blocks of the
// given type carry a Children slice.
func CanHaveChildren(t BlockType) bool {
	return childBearingTypes[t]
}

var formFieldTypes = map[BlockType]bool{
	TypeInput:    true,
	TypeTextarea: true,
	TypeSelect:   true,
	TypeCheckbox: true,
	TypeSubmit:   true,
}

// IsFormField reports whether t is one of the form-field kinds accepted
// under a form block.
func IsFormField(t BlockType) bool {
	return formFieldTypes[t]
}

var canvasChildTypes = map[BlockType]bool{
	TypeContainer: true,
	TypeStack:     true,
	TypeHeading:   true,
	TypeText:      true,
	TypeImage:     true,
	TypeVideo:     true,
	TypeButton:    true,
	TypeIcon:      true,
	TypeDivider:   true,
}

// IsCanvasChild reports whether t may be freely positioned inside a canvas.
func IsCanvasChild(t BlockType) bool {
	return canvasChildTypes[t]
}

var headerFooterStackChildTypes = map[BlockType]bool{
	TypeHeading: true,
	TypeText:    true,
	TypeImage:   true,
	TypeButton:  true,
	TypeIcon:    true,
}

// IsHeaderFooterStackChild reports whether t may be placed inside one of the
// start/middle/end region stacks of a header or footer.
func IsHeaderFooterStackChild(t BlockType) bool {
	return headerFooterStackChildTypes[t]
}

// Viewport identifies one tier of the responsive style cascade.
type Viewport string

const (
	ViewportDesktop Viewport = "desktop"
	ViewportTablet  Viewport = "tablet"
	ViewportMobile  Viewport = "mobile"
)
