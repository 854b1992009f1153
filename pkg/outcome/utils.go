package outcome

import (
	"errors"
	"reflect"
)

// IsNil reports whether i is nil, including typed nils hiding behind
// pointer, interface, map, slice, channel or function values.
func IsNil(i any) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return v.IsNil()
	default:
		return false
	}
}

// GetErrors flattens err into its component errors, unwrapping joined
// errors one level.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// JoinCauses is a ready-made exceptions merger: it flattens both causes and
// joins them into one error preserving each for errors.Is inspection.
func JoinCauses(first, second error) error {
	all := append(GetErrors(first), GetErrors(second)...)
	return errors.Join(all...)
}

func deepEqual(a, b any) bool {
	return reflect.DeepEqual(a, b)
}
