package domain

// contentFields lists, per type, the settings keys that hold user content
// (text, URLs, media). These are never synchronized through a shared style;
// everything else in settings/styles is style-syncable.
var contentFields = map[BlockType][]string{
	TypeHeading:        {"content"},
	TypeText:           {"content"},
	TypeImage:          {"src", "alt"},
	TypeVideo:          {"url", "poster"},
	TypeButton:         {"label", "url"},
	TypeIcon:           {"icon"},
	TypeHeader:         {"logoSrc", "logoAlt", "navLinks"},
	TypeFooter:         {"logoSrc", "copyright", "footerLinks", "socialLinks"},
	TypeForm:           {"submitUrl", "successMessage"},
	TypeInput:          {"label", "placeholder"},
	TypeTextarea:       {"label", "placeholder"},
	TypeSelect:         {"label", "options"},
	TypeCheckbox:       {"label"},
	TypeSubmit:         {"label"},
	TypeProductVariant: {"productId", "options"},
	TypeSlider:         {"slides"},
}

// IsContentField reports whether the settings key holds user content for the
// given block type.
func IsContentField(t BlockType, key string) bool {
	for _, f := range contentFields[t] {
		if f == key {
			return true
		}
	}
	return false
}

// StyleSyncableSettings projects the subset of settings that may flow through
// a shared style: every key except the type's content fields. The returned
// map shares values with the input; callers that mutate must clone first.
func StyleSyncableSettings(t BlockType, settings map[string]any) map[string]any {
	out := map[string]any{}
	for k, v := range settings {
		if IsContentField(t, k) {
			continue
		}
		out[k] = v
	}
	return out
}
