// Package style implements the responsive style cascade: one base payload
// per block plus optional tablet and mobile override layers, resolved along
// the strict desktop → tablet → mobile inheritance chain.
package style

import (
	"github.com/mselnes/forma/internal/domain"
	"github.com/mselnes/forma/internal/merge"
)

// Reserved keys inside a block's styles map. Override layers hold partial
// property sets; animation sits outside the cascade entirely.
const (
	KeyTablet    = "tablet"
	KeyMobile    = "mobile"
	KeyAnimation = "animation"
)

func isReservedKey(k string) bool {
	return k == KeyTablet || k == KeyMobile || k == KeyAnimation
}

// baseProperties returns the base layer: every non-reserved key.
func baseProperties(styles map[string]any) map[string]any {
	out := map[string]any{}
	for k, v := range styles {
		if isReservedKey(k) {
			continue
		}
		out[k] = v
	}
	return out
}

func layer(styles map[string]any, key string) map[string]any {
	if m, ok := styles[key].(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

// Resolve computes the effective properties for a viewport. Desktop is the
// base unchanged; tablet merges its overrides onto the base; mobile merges
// onto the tablet result, so anything tablet overrode flows through and
// anything it did not falls back to base. A nil styles map resolves to empty.
func Resolve(styles map[string]any, v domain.Viewport) map[string]any {
	base := baseProperties(styles)
	switch v {
	case domain.ViewportTablet:
		return merge.Merge(base, layer(styles, KeyTablet))
	case domain.ViewportMobile:
		withTablet := merge.Merge(base, layer(styles, KeyTablet))
		return merge.Merge(withTablet, layer(styles, KeyMobile))
	default:
		return merge.Clone(base)
	}
}

// OverridesFor returns the raw editing surface for a viewport: the base
// properties for desktop, or that layer's override object (possibly empty)
// for tablet/mobile — never merged with anything.
func OverridesFor(styles map[string]any, v domain.Viewport) map[string]any {
	switch v {
	case domain.ViewportTablet:
		return merge.Clone(layer(styles, KeyTablet))
	case domain.ViewportMobile:
		return merge.Clone(layer(styles, KeyMobile))
	default:
		return merge.Clone(baseProperties(styles))
	}
}

// SetOverrides merges patch into the viewport's layer and returns the updated
// styles map. Desktop writes go into the base with the tablet/mobile/
// animation siblings untouched; tablet/mobile writes touch only that layer.
func SetOverrides(styles map[string]any, v domain.Viewport, patch map[string]any) map[string]any {
	if styles == nil {
		styles = map[string]any{}
	}
	switch v {
	case domain.ViewportTablet, domain.ViewportMobile:
		key := KeyTablet
		if v == domain.ViewportMobile {
			key = KeyMobile
		}
		out := merge.Clone(styles)
		out[key] = merge.Merge(layer(styles, key), patch)
		return out
	default:
		// Merge into the base only; reserved siblings pass through untouched
		// because patch never carries reserved keys through this path.
		out := merge.Merge(styles, patch)
		return out
	}
}

// HasOverride reports whether the viewport's layer defines the property.
// Desktop has no override concept (it is the base), so it always reports
// false. Presence is key presence, not value truthiness.
func HasOverride(styles map[string]any, v domain.Viewport, property string) bool {
	switch v {
	case domain.ViewportTablet:
		_, ok := layer(styles, KeyTablet)[property]
		return ok
	case domain.ViewportMobile:
		_, ok := layer(styles, KeyMobile)[property]
		return ok
	default:
		return false
	}
}

// RemoveOverride deletes the property from the viewport's layer and returns
// the updated styles map. Removing from desktop is a no-op (the base cannot
// be removed). A layer left empty is dropped rather than kept as {}.
func RemoveOverride(styles map[string]any, v domain.Viewport, property string) map[string]any {
	var key string
	switch v {
	case domain.ViewportTablet:
		key = KeyTablet
	case domain.ViewportMobile:
		key = KeyMobile
	default:
		return styles
	}

	_, ok := styles[key].(map[string]any)
	if !ok {
		return styles
	}
	out := merge.Clone(styles)
	updated := out[key].(map[string]any)
	delete(updated, property)
	if len(updated) == 0 {
		delete(out, key)
	}
	return out
}

// InheritedValue answers what the viewport would show for the property with
// no override of its own: desktop and tablet fall back to the base, mobile
// honors the cascade by preferring tablet's override before the base.
func InheritedValue(styles map[string]any, v domain.Viewport, property string) any {
	base := baseProperties(styles)
	switch v {
	case domain.ViewportMobile:
		if val, ok := layer(styles, KeyTablet)[property]; ok {
			return val
		}
		return base[property]
	default:
		return base[property]
	}
}
