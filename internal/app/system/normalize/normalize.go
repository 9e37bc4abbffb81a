// Package normalize reads loosely-shaped backend payloads.
//
// The elevator-parts API is not consistent about field names: the same
// collection can arrive under several keys and the same flag can be spelled
// snake_case or camelCase. Each alias set is expressed as an ordered key list
// and resolved by the accessors here, so the priority order lives in one
// place and can be tested on its own.
package normalize

import (
	"encoding/json"
	"strings"
)

// Key orders used across the app. The first present key wins.
var (
	PartsCategoryKeys = []string{"categories", "parts_categories", "data"}
	ElevatorTypeKeys  = []string{"elevator_types", "types", "data"}
	ActiveKeys        = []string{"is_active", "isActive"}
	MessageKeys       = []string{"message", "error", "detail"}
)

// FirstKey returns the first key in keys that is present in m with a non-nil
// value. A key mapped to JSON null counts as absent.
func FirstKey(m map[string]any, keys ...string) (string, bool) {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return k, true
		}
	}
	return "", false
}

// Collection returns the collection stored under the first present key.
// If no key is present, or the selected value is not a JSON array, it
// returns an empty (non-nil) slice.
func Collection(m map[string]any, keys ...string) []any {
	k, ok := FirstKey(m, keys...)
	if !ok {
		return []any{}
	}
	items, ok := m[k].([]any)
	if !ok {
		return []any{}
	}
	return items
}

// Bool reports the boolean stored under the first key that holds a bool.
// The second result is false when none of the keys holds a bool.
func Bool(m map[string]any, keys ...string) (bool, bool) {
	for _, k := range keys {
		if b, ok := m[k].(bool); ok {
			return b, true
		}
	}
	return false, false
}

// IsActive applies the permissive active rule: an item is active unless one
// of the ActiveKeys explicitly holds false. Items without either flag, and
// items that are not objects at all, count as active.
func IsActive(item any) bool {
	m, ok := item.(map[string]any)
	if !ok {
		return true
	}
	for _, k := range ActiveKeys {
		if b, ok := m[k].(bool); ok && !b {
			return false
		}
	}
	return true
}

// CountActive returns how many items satisfy IsActive.
func CountActive(items []any) int {
	n := 0
	for _, it := range items {
		if IsActive(it) {
			n++
		}
	}
	return n
}

// String returns the first non-blank string under keys, trimmed.
func String(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok {
			if s = strings.TrimSpace(s); s != "" {
				return s
			}
		}
	}
	return ""
}

// Number returns the first numeric value under keys as a float64.
// Numeric strings are accepted because some endpoints quote their counts.
func Number(m map[string]any, keys ...string) (float64, bool) {
	for _, k := range keys {
		switch v := m[k].(type) {
		case float64:
			return v, true
		case int:
			return float64(v), true
		case int64:
			return float64(v), true
		case json.Number:
			if f, err := v.Float64(); err == nil {
				return f, true
			}
		case string:
			if f, err := json.Number(strings.TrimSpace(v)).Float64(); err == nil {
				return f, true
			}
		}
	}
	return 0, false
}

// Int is Number truncated to an int, with 0 when absent.
func Int(m map[string]any, keys ...string) int {
	f, _ := Number(m, keys...)
	return int(f)
}

// Object returns the nested object under the first present key, or an empty
// map when absent or not an object.
func Object(m map[string]any, keys ...string) map[string]any {
	k, ok := FirstKey(m, keys...)
	if !ok {
		return map[string]any{}
	}
	obj, ok := m[k].(map[string]any)
	if !ok {
		return map[string]any{}
	}
	return obj
}

// Name trims surrounding whitespace and collapses inner runs of spaces.
// Used for names typed into forms before they are sent to the backend.
func Name(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
