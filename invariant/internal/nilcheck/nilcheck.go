// Package nilcheck detects nil values hidden behind interfaces.
package nilcheck

import "reflect"

// Interface reports whether value is nil, including typed-nil interfaces.
func Interface(value any) bool {
	if value == nil {
		return true
	}

	return Value(reflect.ValueOf(value))
}

// Value reports whether v is invalid or a nil reference kind.
func Value(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}

	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}

// Pointer reports whether value is nil or a nil pointer. Empty slices,
// maps and funcs are not reported; they still have a textual form.
func Pointer(value any) bool {
	if value == nil {
		return true
	}

	v := reflect.ValueOf(value)

	return v.Kind() == reflect.Pointer && v.IsNil()
}
