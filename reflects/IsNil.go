package reflects

import "reflect"

// IsNil reports whether v is a null-equivalent value:
// a nil interface, or a nil pointer, map, slice, channel, function or unsafe pointer.
//
// Zero values of other kinds, like 0 or "", are not nil.
func IsNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
