package utils

import (
	"fmt"
	"strconv"
)

// ToString converts various types to string.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToFloat converts various types to *float64.
// It returns nil when the value is absent or not a number; callers treat the
// field as unset rather than failing the whole record.
func ToFloat(val any) *float64 {
	switch v := val.(type) {
	case float64:
		return &v
	case float32:
		f := float64(v)
		return &f
	case int:
		f := float64(v)
		return &f
	case int64:
		f := float64(v)
		return &f
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return &f
		}
		return nil
	default:
		return nil
	}
}

// ToIntPtr converts various types to *int with the same permissive semantics
// as ToFloat: nil on absence or parse failure.
func ToIntPtr(val any) *int {
	switch v := val.(type) {
	case int:
		return &v
	case int64:
		i := int(v)
		return &i
	case float64:
		i := int(v)
		return &i
	case string:
		if i, err := strconv.Atoi(v); err == nil {
			return &i
		}
		// EXIF producers sometimes emit floats as strings ("100.0")
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			i := int(f)
			return &i
		}
		return nil
	default:
		return nil
	}
}
