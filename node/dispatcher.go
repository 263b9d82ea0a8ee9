package node

import (
	"reflect"

	"deep-cloner/primitive"
	"deep-cloner/value"
)

// Dispatch classifies the shape of a runtime value.
// Pointers to structs and maps are reported by what they point to.
func Dispatch(v any) DispatcherEnum {
	if primitive.IsPrimitive(v) {
		return DispatcherPrimitive
	}

	switch v.(type) {
	case *value.Record:
		return DispatcherRecord
	case []any:
		return DispatcherSequence
	}

	rv := reflect.ValueOf(v)
	depth, baseType := ptrDepthAndBase(rv.Type())

	switch baseType.Kind() {
	case reflect.Struct:
		return DispatcherStruct
	case reflect.Map:
		return DispatcherMap
	case reflect.Slice, reflect.Array:
		return DispatcherSlice
	}

	if depth > 0 {
		return DispatcherPointer
	}

	return DispatcherUnknown
}
