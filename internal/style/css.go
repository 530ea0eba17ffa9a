package style

import (
	"fmt"
	"sort"
	"strings"
)

// Declaration is one CSS property/value pair.
type Declaration struct {
	Property string
	Value    string
}

// CSSResolver converts resolved style properties into CSS. This is the
// boundary a renderer consumes; the default implementation below covers the
// property shapes the factories emit.
type CSSResolver interface {
	Declarations(props map[string]any) []Declaration
	Inline(props map[string]any) string
}

// NewCSSResolver returns the default resolver.
func NewCSSResolver() CSSResolver {
	return cssResolver{}
}

type cssResolver struct{}

// unitless properties take bare numbers; everything else numeric gets px.
var unitlessProps = map[string]bool{
	"font-weight": true,
	"line-height": true,
	"opacity":     true,
	"z-index":     true,
	"columns":     true,
	"flex-grow":   true,
}

var edgeOrder = []string{"top", "right", "bottom", "left"}

func (cssResolver) Declarations(props map[string]any) []Declaration {
	var out []Declaration
	for key, val := range props {
		if isReservedKey(key) {
			continue
		}
		prop := kebabCase(key)
		switch v := val.(type) {
		case map[string]any:
			out = append(out, compoundDeclarations(prop, v)...)
		default:
			if s := formatValue(prop, v); s != "" {
				out = append(out, Declaration{Property: prop, Value: s})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Property < out[j].Property })
	return out
}

func (r cssResolver) Inline(props map[string]any) string {
	decls := r.Declarations(props)
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		parts = append(parts, d.Property+": "+d.Value)
	}
	return strings.Join(parts, "; ")
}

// compoundDeclarations expands nested objects: edge maps (padding/margin)
// become a four-value shorthand, anything else becomes prefixed properties
// such as background-color.
func compoundDeclarations(prop string, m map[string]any) []Declaration {
	if isEdgeMap(m) {
		vals := make([]string, 0, 4)
		for _, edge := range edgeOrder {
			vals = append(vals, formatValue(prop, valueOrZero(m[edge])))
		}
		return []Declaration{{Property: prop, Value: strings.Join(vals, " ")}}
	}
	var out []Declaration
	for sub, v := range m {
		subProp := prop + "-" + kebabCase(sub)
		if s := formatValue(subProp, v); s != "" {
			out = append(out, Declaration{Property: subProp, Value: s})
		}
	}
	return out
}

func isEdgeMap(m map[string]any) bool {
	if len(m) == 0 {
		return false
	}
	for k := range m {
		switch k {
		case "top", "right", "bottom", "left":
		default:
			return false
		}
	}
	return true
}

func valueOrZero(v any) any {
	if v == nil {
		return 0
	}
	return v
}

func formatValue(prop string, v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return fmt.Sprintf("%t", t)
	case int:
		return formatNumber(prop, float64(t))
	case float64:
		return formatNumber(prop, t)
	default:
		return ""
	}
}

func formatNumber(prop string, n float64) string {
	num := trimNumber(n)
	if unitlessProps[prop] || n == 0 {
		return num
	}
	return num + "px"
}

func trimNumber(n float64) string {
	if n == float64(int64(n)) {
		return fmt.Sprintf("%d", int64(n))
	}
	return fmt.Sprintf("%g", n)
}

// kebabCase converts a camelCase settings key to a CSS property name.
func kebabCase(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
