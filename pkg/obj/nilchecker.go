package obj

import (
	"reflect"
)

// IsNil reports whether what is nil, including an interface holding a typed nil
// pointer, map, slice or channel.
func IsNil(what interface{}) bool {
	if what == nil {
		return true
	}

	kind := reflect.ValueOf(what).Kind()
	switch kind {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return reflect.ValueOf(what).IsNil()
	default:
		return false
	}
}
