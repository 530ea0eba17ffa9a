package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mselnes/forma/internal/domain"
)

func layeredStyles() map[string]any {
	return map[string]any{
		"color":    "black",
		"fontSize": 10,
		"tablet":   map[string]any{"color": "blue"},
		"mobile":   map[string]any{"fontSize": 20},
		"animation": map[string]any{
			"type": "fade",
		},
	}
}

func TestResolve_DesktopPassthrough(t *testing.T) {
	got := Resolve(layeredStyles(), domain.ViewportDesktop)
	assert.Equal(t, map[string]any{"color": "black", "fontSize": 10}, got)
	assert.NotContains(t, got, "tablet")
	assert.NotContains(t, got, "mobile")
	assert.NotContains(t, got, "animation")
}

func TestResolve_TabletMergesOntoBase(t *testing.T) {
	got := Resolve(layeredStyles(), domain.ViewportTablet)
	assert.Equal(t, map[string]any{"color": "blue", "fontSize": 10}, got)
}

func TestResolve_MobileInheritsThroughTablet(t *testing.T) {
	got := Resolve(layeredStyles(), domain.ViewportMobile)
	assert.Equal(t, map[string]any{"color": "blue", "fontSize": 20}, got)
}

func TestResolve_NilStyles(t *testing.T) {
	for _, v := range []domain.Viewport{domain.ViewportDesktop, domain.ViewportTablet, domain.ViewportMobile} {
		got := Resolve(nil, v)
		assert.Empty(t, got, "viewport=%s", v)
	}
}

func TestResolve_DoesNotMutateInput(t *testing.T) {
	styles := layeredStyles()
	got := Resolve(styles, domain.ViewportMobile)
	got["color"] = "red"
	assert.Equal(t, "black", styles["color"])
	assert.Equal(t, "blue", styles["tablet"].(map[string]any)["color"])
}

func TestOverridesFor(t *testing.T) {
	styles := layeredStyles()

	assert.Equal(t, map[string]any{"color": "black", "fontSize": 10},
		OverridesFor(styles, domain.ViewportDesktop))
	assert.Equal(t, map[string]any{"color": "blue"},
		OverridesFor(styles, domain.ViewportTablet))
	assert.Equal(t, map[string]any{"fontSize": 20},
		OverridesFor(styles, domain.ViewportMobile))

	assert.Empty(t, OverridesFor(map[string]any{"color": "x"}, domain.ViewportTablet))
}

func TestSetOverrides_RoundTrip(t *testing.T) {
	styles := map[string]any{"color": "black"}

	styles = SetOverrides(styles, domain.ViewportTablet, map[string]any{"color": "red"})
	assert.Equal(t, map[string]any{"color": "red"}, OverridesFor(styles, domain.ViewportTablet))
	assert.Equal(t, "black", styles["color"], "base untouched")

	styles = RemoveOverride(styles, domain.ViewportTablet, "color")
	assert.NotContains(t, styles, KeyTablet, "empty layer is dropped, not kept as {}")
}

func TestSetOverrides_DesktopPreservesSiblings(t *testing.T) {
	styles := layeredStyles()
	updated := SetOverrides(styles, domain.ViewportDesktop, map[string]any{"color": "green"})

	assert.Equal(t, "green", updated["color"])
	assert.Equal(t, map[string]any{"color": "blue"}, updated["tablet"])
	assert.Equal(t, map[string]any{"fontSize": 20}, updated["mobile"])
	assert.Contains(t, updated, "animation")
}

func TestSetOverrides_NilStyles(t *testing.T) {
	updated := SetOverrides(nil, domain.ViewportMobile, map[string]any{"gap": 8})
	assert.Equal(t, map[string]any{"gap": 8}, updated["mobile"])
}

func TestHasOverride(t *testing.T) {
	styles := map[string]any{
		"color":  "black",
		"tablet": map[string]any{"color": "blue", "hidden": false},
	}
	assert.False(t, HasOverride(styles, domain.ViewportDesktop, "color"), "desktop has no override concept")
	assert.True(t, HasOverride(styles, domain.ViewportTablet, "color"))
	assert.True(t, HasOverride(styles, domain.ViewportTablet, "hidden"), "key presence, not truthiness")
	assert.False(t, HasOverride(styles, domain.ViewportTablet, "fontSize"))
	assert.False(t, HasOverride(styles, domain.ViewportMobile, "color"))
}

func TestRemoveOverride_KeepsOtherKeys(t *testing.T) {
	styles := map[string]any{
		"tablet": map[string]any{"color": "blue", "gap": 4},
	}
	updated := RemoveOverride(styles, domain.ViewportTablet, "color")
	assert.Equal(t, map[string]any{"gap": 4}, updated["tablet"])
}

func TestRemoveOverride_DesktopNoop(t *testing.T) {
	styles := map[string]any{"color": "black"}
	updated := RemoveOverride(styles, domain.ViewportDesktop, "color")
	assert.Equal(t, "black", updated["color"])
}

func TestRemoveOverride_MissingLayerNoop(t *testing.T) {
	styles := map[string]any{"color": "black"}
	updated := RemoveOverride(styles, domain.ViewportMobile, "color")
	assert.Equal(t, styles, updated)
}

func TestInheritedValue(t *testing.T) {
	styles := layeredStyles()

	assert.Equal(t, "black", InheritedValue(styles, domain.ViewportDesktop, "color"))
	assert.Equal(t, "black", InheritedValue(styles, domain.ViewportTablet, "color"))
	assert.Equal(t, "blue", InheritedValue(styles, domain.ViewportMobile, "color"), "mobile prefers tablet's override")
	assert.Equal(t, 10, InheritedValue(styles, domain.ViewportMobile, "fontSize"), "falls back to base")
	assert.Nil(t, InheritedValue(styles, domain.ViewportMobile, "missing"))
}

func TestSetAnimation_PinsTrigger(t *testing.T) {
	a := DefaultAnimation()
	a.Trigger = "onScroll"
	styles := SetAnimation(map[string]any{"color": "black"}, a)

	anim, ok := styles[KeyAnimation].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, TriggerOnLoad, anim["trigger"])
	assert.Equal(t, "fade", anim["type"])
	assert.Equal(t, "black", styles["color"])
}
