// Package assistant turns raw language-model output into validated action
// batches. The model transport itself is an external collaborator; this
// package only owns the parsing boundary.
package assistant

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mselnes/forma/internal/action"
)

// ErrInvalidOutput indicates the model response could not be parsed into
// the expected structured format.
var ErrInvalidOutput = errors.New("invalid assistant output format")

// ExtractActions extracts an action batch from raw model text. It tolerates
// markdown code fences, prose before and after the payload, C-style line
// comments inside the JSON, and both a single action object and an array of
// actions. Every extracted action must carry a known type discriminator.
func ExtractActions(raw string) ([]action.Action, error) {
	cleaned := stripCodeFences(raw)
	jsonStr := extractJSONValue(cleaned)
	if jsonStr == "" {
		return nil, fmt.Errorf("%w: no JSON payload found in response", ErrInvalidOutput)
	}
	jsonStr = stripJSONComments(jsonStr)

	var actions []action.Action
	if strings.HasPrefix(jsonStr, "[") {
		if err := json.Unmarshal([]byte(jsonStr), &actions); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
		}
	} else {
		var single action.Action
		if err := json.Unmarshal([]byte(jsonStr), &single); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
		}
		actions = []action.Action{single}
	}

	for i, a := range actions {
		if a.Type == "" {
			return nil, fmt.Errorf("%w: action %d is missing a type", ErrInvalidOutput, i)
		}
		if !action.IsKnownType(a.Type) {
			return nil, fmt.Errorf("%w: action %d has unknown type %q", ErrInvalidOutput, i, a.Type)
		}
	}
	return actions, nil
}

// stripCodeFences removes markdown code fences (```json ... ``` or ``` ... ```).
func stripCodeFences(s string) string {
	lines := strings.Split(s, "\n")
	var result []string
	inFence := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			continue
		}
		result = append(result, line)
	}
	return strings.Join(result, "\n")
}

// extractJSONValue finds the first balanced { ... } or [ ... ] in the text,
// whichever starts earlier.
func extractJSONValue(s string) string {
	objStart := strings.IndexByte(s, '{')
	arrStart := strings.IndexByte(s, '[')

	start := objStart
	open, close := byte('{'), byte('}')
	if arrStart != -1 && (objStart == -1 || arrStart < objStart) {
		start = arrStart
		open, close = '[', ']'
	}
	if start == -1 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if escaped {
			escaped = false
			continue
		}
		if c == '\\' && inString {
			escaped = true
			continue
		}
		if c == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}
		switch c {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}

// stripJSONComments removes C-style line comments outside of JSON string
// values. Models sometimes emit comments despite instructions not to.
func stripJSONComments(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if escaped {
			b.WriteByte(c)
			escaped = false
			continue
		}
		if c == '\\' && inString {
			b.WriteByte(c)
			escaped = true
			continue
		}
		if c == '"' {
			b.WriteByte(c)
			inString = !inString
			continue
		}
		if inString {
			b.WriteByte(c)
			continue
		}
		if c == '/' && i+1 < len(s) && s[i+1] == '/' {
			for i < len(s) && s[i] != '\n' {
				i++
			}
			if i < len(s) {
				b.WriteByte('\n')
			}
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
