package props

import (
	"maps"
	"slices"
)

// Map is the dynamic property bag used by template-backed components.
type Map map[string]any

// Merge returns a new map holding defaults overlaid with overrides. Keys in
// overrides win. Neither input is modified.
func Merge(defaults, overrides Map) Map {
	out := make(Map, len(defaults)+len(overrides))
	for key, value := range defaults {
		out[key] = value
	}
	for key, value := range overrides {
		out[key] = value
	}
	return out
}

// Clone returns a shallow copy. A nil map clones to an empty map.
func (m Map) Clone() Map {
	if m == nil {
		return Map{}
	}
	return maps.Clone(m)
}

// Keys returns the sorted keys of the map.
func (m Map) Keys() []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// String returns the value at key when it holds a string.
func (m Map) String(key string) (string, bool) {
	value, ok := m[key].(string)
	return value, ok
}
