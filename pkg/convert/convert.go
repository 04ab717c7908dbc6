// Package convert holds small generic conversion helpers for building and
// reading typed SDK values, the way azd's pkg/convert does for its SDK
// client wrappers.
package convert

import "encoding/json"

// RefOf returns a pointer to a copy of v. Handy for building SDK request
// structs that take optional *T fields from a literal.
func RefOf[T any](v T) *T { return &v }

// ToStringWithDefault returns v if it is a non-empty string (or points to
// one), otherwise def.
func ToStringWithDefault(v any, def string) string {
	switch val := v.(type) {
	case string:
		if val == "" {
			return def
		}
		return val
	case *string:
		if val == nil || *val == "" {
			return def
		}
		return *val
	default:
		return def
	}
}

// ToValueWithDefault dereferences a non-nil pointer, or returns def for a
// nil pointer or a pointer to the zero value of a comparable T.
func ToValueWithDefault[T comparable](v *T, def T) T {
	if v == nil {
		return def
	}
	var zero T
	if *v == zero {
		return def
	}
	return *v
}

// ToMap round-trips v through JSON into a map, for callers that need a
// generic key/value view of a struct (e.g. building ARM request bodies
// from typed options).
func ToMap(v any) (map[string]any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	out := map[string]any{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}
