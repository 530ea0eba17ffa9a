package block

import (
	"errors"
	"fmt"

	"github.com/mselnes/forma/internal/domain"
)

// ErrUnknownType marks a default-constructor or label lookup for a type
// outside the closed enumeration. This is a programming error: callers abort
// rather than substituting defaults.
var ErrUnknownType = errors.New("unknown block type")

// defaultSettings maps every block type to its zero-argument settings
// constructor. Exhaustiveness over domain.AllBlockTypes is enforced by test.
var defaultSettings = map[domain.BlockType]func() map[string]any{
	domain.TypeContainer: func() map[string]any {
		return map[string]any{
			"direction": "column",
			"align":     "stretch",
			"justify":   "start",
			"gap":       16,
			"tag":       "section",
		}
	},
	domain.TypeStack: func() map[string]any {
		return map[string]any{
			"direction": "column",
			"align":     "start",
			"justify":   "start",
			"gap":       12,
		}
	},
	domain.TypeGrid: func() map[string]any {
		return map[string]any{
			"columns": 3,
			"gap":     24,
		}
	},
	domain.TypeCanvas: func() map[string]any {
		return map[string]any{
			"width":  1200,
			"height": 600,
		}
	},
	domain.TypeSlider: func() map[string]any {
		return map[string]any{
			"autoplay": false,
			"interval": 5000,
			"loop":     true,
			"slides":   []any{},
		}
	},
	domain.TypeForm: func() map[string]any {
		return map[string]any{
			"submitUrl":      "",
			"method":         "post",
			"successMessage": "Thanks! We'll be in touch.",
		}
	},
	domain.TypeHeading: func() map[string]any {
		return map[string]any{
			"content": "Heading",
			"level":   "h2",
			"align":   "left",
		}
	},
	domain.TypeText: func() map[string]any {
		return map[string]any{
			"content": "Write something here.",
			"align":   "left",
		}
	},
	domain.TypeImage: func() map[string]any {
		return map[string]any{
			"src": "",
			"alt": "",
		}
	},
	domain.TypeVideo: func() map[string]any {
		return map[string]any{
			"url":      "",
			"poster":   "",
			"autoplay": false,
			"controls": true,
			"loop":     false,
		}
	},
	domain.TypeButton: func() map[string]any {
		return map[string]any{
			"label":   "Click me",
			"url":     "#",
			"target":  "_self",
			"variant": "primary",
		}
	},
	domain.TypeIcon: func() map[string]any {
		return map[string]any{
			"icon": "star",
			"size": 24,
		}
	},
	domain.TypeDivider: func() map[string]any {
		return map[string]any{
			"orientation": "horizontal",
		}
	},
	domain.TypeHeader: func() map[string]any {
		return map[string]any{
			"logoSrc":  "",
			"logoAlt":  "",
			"sticky":   false,
			"navLinks": []any{},
		}
	},
	domain.TypeFooter: func() map[string]any {
		return map[string]any{
			"logoSrc":     "",
			"copyright":   "",
			"footerLinks": []any{},
			"socialLinks": []any{},
		}
	},
	domain.TypeInput: func() map[string]any {
		return map[string]any{
			"label":       "Label",
			"placeholder": "",
			"name":        "field",
			"inputType":   "text",
			"required":    false,
		}
	},
	domain.TypeTextarea: func() map[string]any {
		return map[string]any{
			"label":       "Message",
			"placeholder": "",
			"name":        "message",
			"rows":        4,
			"required":    false,
		}
	},
	domain.TypeSelect: func() map[string]any {
		return map[string]any{
			"label":    "Choose",
			"name":     "choice",
			"options":  []any{},
			"required": false,
		}
	},
	domain.TypeCheckbox: func() map[string]any {
		return map[string]any{
			"label":    "I agree",
			"name":     "consent",
			"required": false,
		}
	},
	domain.TypeSubmit: func() map[string]any {
		return map[string]any{
			"label": "Submit",
		}
	},
	domain.TypeProductVariant: func() map[string]any {
		return map[string]any{
			"productId": "",
			"options":   []any{},
			"showPrice": true,
		}
	},
}

// defaultStyles maps every block type to its zero-argument styles constructor.
var defaultStyles = map[domain.BlockType]func() map[string]any{
	domain.TypeContainer: func() map[string]any {
		return map[string]any{
			"padding":    map[string]any{"top": 64, "bottom": 64, "left": 24, "right": 24},
			"background": map[string]any{"color": "transparent"},
			"maxWidth":   1200,
		}
	},
	domain.TypeStack: func() map[string]any {
		return map[string]any{
			"padding": map[string]any{"top": 0, "bottom": 0, "left": 0, "right": 0},
		}
	},
	domain.TypeGrid: func() map[string]any {
		return map[string]any{
			"padding": map[string]any{"top": 0, "bottom": 0, "left": 0, "right": 0},
		}
	},
	domain.TypeCanvas: func() map[string]any {
		return map[string]any{
			"background": map[string]any{"color": "#ffffff"},
		}
	},
	domain.TypeSlider: func() map[string]any {
		return map[string]any{
			"height": 400,
		}
	},
	domain.TypeForm: func() map[string]any {
		return map[string]any{
			"gap": 12,
		}
	},
	domain.TypeHeading: func() map[string]any {
		return map[string]any{
			"color":      "#111111",
			"fontSize":   32,
			"fontWeight": 700,
		}
	},
	domain.TypeText: func() map[string]any {
		return map[string]any{
			"color":      "#444444",
			"fontSize":   16,
			"lineHeight": 1.6,
		}
	},
	domain.TypeImage: func() map[string]any {
		return map[string]any{
			"width":        "100%",
			"borderRadius": 0,
			"objectFit":    "cover",
		}
	},
	domain.TypeVideo: func() map[string]any {
		return map[string]any{
			"width": "100%",
		}
	},
	domain.TypeButton: func() map[string]any {
		return map[string]any{
			"background":   map[string]any{"color": "#2563eb"},
			"color":        "#ffffff",
			"padding":      map[string]any{"top": 12, "bottom": 12, "left": 24, "right": 24},
			"borderRadius": 8,
			"fontWeight":   600,
		}
	},
	domain.TypeIcon: func() map[string]any {
		return map[string]any{
			"color": "#111111",
		}
	},
	domain.TypeDivider: func() map[string]any {
		return map[string]any{
			"color":     "#e5e7eb",
			"thickness": 1,
			"margin":    map[string]any{"top": 24, "bottom": 24},
		}
	},
	domain.TypeHeader: func() map[string]any {
		return map[string]any{
			"background": map[string]any{"color": "#ffffff"},
			"padding":    map[string]any{"top": 16, "bottom": 16, "left": 24, "right": 24},
		}
	},
	domain.TypeFooter: func() map[string]any {
		return map[string]any{
			"background": map[string]any{"color": "#111111"},
			"color":      "#ffffff",
			"padding":    map[string]any{"top": 48, "bottom": 48, "left": 24, "right": 24},
		}
	},
	domain.TypeInput:    formFieldStyles,
	domain.TypeTextarea: formFieldStyles,
	domain.TypeSelect:   formFieldStyles,
	domain.TypeCheckbox: func() map[string]any {
		return map[string]any{
			"color": "#111111",
		}
	},
	domain.TypeSubmit: func() map[string]any {
		return map[string]any{
			"background":   map[string]any{"color": "#2563eb"},
			"color":        "#ffffff",
			"borderRadius": 8,
		}
	},
	domain.TypeProductVariant: func() map[string]any {
		return map[string]any{
			"gap": 8,
		}
	},
}

func formFieldStyles() map[string]any {
	return map[string]any{
		"borderColor":  "#d1d5db",
		"borderRadius": 6,
		"padding":      map[string]any{"top": 10, "bottom": 10, "left": 12, "right": 12},
	}
}

// typeLabels maps types to default human-readable block names. Missing
// entries fall back to the raw type string.
var typeLabels = map[domain.BlockType]string{
	domain.TypeContainer:      "Section",
	domain.TypeStack:          "Stack",
	domain.TypeGrid:           "Grid",
	domain.TypeCanvas:         "Canvas",
	domain.TypeSlider:         "Slider",
	domain.TypeForm:           "Form",
	domain.TypeHeading:        "Heading",
	domain.TypeText:           "Text",
	domain.TypeImage:          "Image",
	domain.TypeVideo:          "Video",
	domain.TypeButton:         "Button",
	domain.TypeIcon:           "Icon",
	domain.TypeDivider:        "Divider",
	domain.TypeHeader:         "Header",
	domain.TypeFooter:         "Footer",
	domain.TypeInput:          "Input Field",
	domain.TypeTextarea:       "Text Area",
	domain.TypeSelect:         "Dropdown",
	domain.TypeCheckbox:       "Checkbox",
	domain.TypeSubmit:         "Submit Button",
	domain.TypeProductVariant: "Product Variant",
}

// DefaultSettings returns a fresh default settings payload for the type.
func DefaultSettings(t domain.BlockType) (map[string]any, error) {
	ctor, ok := defaultSettings[t]
	if !ok {
		return nil, fmt.Errorf("%w: no settings constructor for %q", ErrUnknownType, t)
	}
	return ctor(), nil
}

// DefaultStyles returns a fresh default styles payload for the type.
func DefaultStyles(t domain.BlockType) (map[string]any, error) {
	ctor, ok := defaultStyles[t]
	if !ok {
		return nil, fmt.Errorf("%w: no styles constructor for %q", ErrUnknownType, t)
	}
	return ctor(), nil
}

// TypeLabel returns the default display name for a block of the given type.
func TypeLabel(t domain.BlockType) string {
	if label, ok := typeLabels[t]; ok {
		return label
	}
	return string(t)
}

// DefaultPageSettings returns the document-level defaults a new document
// starts from.
func DefaultPageSettings() map[string]any {
	return map[string]any{
		"colors": map[string]any{
			"primary":    "#2563eb",
			"background": "#ffffff",
			"text":       "#111111",
		},
		"fontFamily": "Inter",
		"maxWidth":   1200,
		"padding":    24,
		"sectionGap": 0,
	}
}
