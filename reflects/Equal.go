package reflects

import "reflect"

// Equal reports value equality between a and b.
// Comparable values are compared with ==, everything else falls back to a deep comparison.
func Equal(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta.Comparable() && isShallow(ta) {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

// isShallow tells if == on the type compares the full value and not just an address.
func isShallow(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Chan, reflect.UnsafePointer:
		return false
	case reflect.Array:
		return isShallow(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !isShallow(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return true
	}
}
