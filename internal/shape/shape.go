// Package shape classifies column and row inputs into the closed set of
// accepted variants and provides uniform field access across them.
//
// Detection order is fixed: mapping, then sequence, then attribute-bearing
// object. An input satisfying several checks is treated as the first match,
// so a map always wins over anything else.
package shape

import (
	"reflect"
	"strings"
)

type Enum int

const (
	Unknown Enum = iota

	Mapping   // map with string keys
	Sequence  // slice or array, positional access only
	Attribute // struct (or pointer to struct), fields read by name

	// Total is a constant that represents the total number of shapes defined
	Total = int(iota)
)

// Detect classifies v. Nil and scalar inputs come back Unknown.
func Detect(v any) Enum {
	if v == nil {
		return Unknown
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return Unknown
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	default:
		return Unknown
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return Unknown
		}
		return Mapping
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			// []byte is a scalar value, never a positional row
			return Unknown
		}
		return Sequence
	case reflect.Struct:
		return Attribute
	}
}

// Field reads the value stored under name, by map key or struct field
// depending on the input's shape. Map keys match exactly; struct fields match
// case-insensitively, since database column names are conventionally lower
// case while exported Go fields cannot be. The second result reports
// presence; a map key holding nil and a missing map key are distinguished
// through it.
func Field(v any, name string) (any, bool) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	default:
		return nil, false
	case reflect.Map:
		mv := rv.MapIndex(reflect.ValueOf(name))
		if !mv.IsValid() {
			return nil, false
		}
		return mv.Interface(), true
	case reflect.Struct:
		fv := rv.FieldByNameFunc(func(fn string) bool {
			return strings.EqualFold(fn, name)
		})
		if !fv.IsValid() || !fv.CanInterface() {
			return nil, false
		}
		return fv.Interface(), true
	}
}

// Elems returns the positional values of a Sequence-shaped input.
func Elems(v any) []any {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}

	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil
	}

	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

// IsNil reports whether v is the null marker: a nil interface or a typed nil
// pointer, map or slice read out of a row.
func IsNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	default:
		return false
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
}
