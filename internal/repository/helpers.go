package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound signals a lookup that matched no row.
var ErrNotFound = errors.New("not found")

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// marshalJSON serializes a payload column, mapping nil to its empty literal.
func marshalJSON(v any, emptyLiteral string) (string, error) {
	if v == nil {
		return emptyLiteral, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshaling json column: %w", err)
	}
	return string(raw), nil
}

func parseTime(s string, field string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing %s: %w", field, err)
	}
	return t, nil
}
