package models

import "math"

// RawRecord holds one untyped record from the remote data source. The demo
// APIs disagree on field names and omit fields freely, so nothing in here
// carries any shape guarantee.
type RawRecord map[string]any

// String returns the string value stored under key, or "" when the key is
// absent or holds a non-string value.
func (r RawRecord) String(key string) string {
	if s, ok := r[key].(string); ok {
		return s
	}
	return ""
}

// Int returns the integer value stored under key. JSON numbers decode as
// float64, so a float that is a whole number counts as an integer.
func (r RawRecord) Int(key string) (int, bool) {
	switch v := r[key].(type) {
	case int:
		return v, true
	case float64:
		if v == math.Trunc(v) {
			return int(v), true
		}
	}
	return 0, false
}
