package style

// Animation is the fixed-shape payload stored under the styles "animation"
// key. It sits outside the viewport cascade: always base-only.
type Animation struct {
	Type     string  `json:"type"`
	Duration float64 `json:"duration"`
	Delay    float64 `json:"delay"`
	Easing   string  `json:"easing"`
	Trigger  string  `json:"trigger"`
}

// TriggerOnLoad is the only trigger the executor writes today.
const TriggerOnLoad = "onLoad"

// DefaultAnimation fills unset fields with the values the editor previews
// with.
func DefaultAnimation() Animation {
	return Animation{
		Type:     "fade",
		Duration: 0.6,
		Delay:    0,
		Easing:   "ease-out",
		Trigger:  TriggerOnLoad,
	}
}

// SetAnimation writes the animation payload onto styles and returns the
// updated map. The trigger is pinned to onLoad regardless of input.
func SetAnimation(styles map[string]any, a Animation) map[string]any {
	if styles == nil {
		styles = map[string]any{}
	}
	out := map[string]any{}
	for k, v := range styles {
		out[k] = v
	}
	out[KeyAnimation] = map[string]any{
		"type":     a.Type,
		"duration": a.Duration,
		"delay":    a.Delay,
		"easing":   a.Easing,
		"trigger":  TriggerOnLoad,
	}
	return out
}
