// Package merge implements the deep-merge semantics shared by block
// construction, page settings updates, and the responsive style cascade.
package merge

// Merge combines source onto target and returns a fresh map; neither input
// is mutated. For every key in source:
//
//   - nil values are no-ops: an explicit null cannot erase a target value
//     (deliberate asymmetry, kept for action-payload compatibility);
//   - when both sides hold plain maps the merge recurses;
//   - anything else, arrays included, replaces the target value wholesale.
//
// Keys absent from source pass through from target unchanged.
func Merge(target, source map[string]any) map[string]any {
	out := make(map[string]any, len(target)+len(source))
	for k, v := range target {
		out[k] = cloneValue(v)
	}
	for k, v := range source {
		if v == nil {
			continue
		}
		srcMap, srcIsMap := v.(map[string]any)
		dstMap, dstIsMap := out[k].(map[string]any)
		if srcIsMap && dstIsMap {
			out[k] = Merge(dstMap, srcMap)
			continue
		}
		out[k] = cloneValue(v)
	}
	return out
}

// Clone deep-copies a settings/styles payload. Nested maps and slices are
// copied; scalar values are shared (they are immutable after JSON decoding).
func Clone(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return Clone(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}
