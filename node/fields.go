package node

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"

	"deep-cloner/value"
)

// Field is one enumerable property of a composite value.
type Field struct {
	Key   value.Key
	Value any
}

// Fields returns a read-only property view of a composite value:
//   - *value.Record: own properties in enumeration order
//   - map: entries keyed by their formatted key, sorted
//   - struct (or pointer chain to one): exported fields in declaration order
//   - slice or array: elements keyed by their decimal index
//
// Anything else, including nil pointers, has no fields.
func Fields(v any) []Field {
	if r, ok := v.(*value.Record); ok {
		if r == nil {
			return nil
		}

		keys := r.Keys()
		out := make([]Field, 0, len(keys))
		for _, k := range keys {
			fv, _ := r.Get(k)
			out = append(out, Field{Key: k, Value: fv})
		}

		return out
	}

	if v == nil {
		return nil
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	default:
		return nil

	case reflect.Struct:
		t := rv.Type()
		out := make([]Field, 0, t.NumField())
		for i := 0; i < t.NumField(); i++ {
			sf := t.Field(i)
			if !sf.IsExported() {
				continue
			}

			out = append(out, Field{Key: value.StringKey(sf.Name), Value: rv.Field(i).Interface()})
		}

		return out

	case reflect.Map:
		out := make([]Field, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out = append(out, Field{
				Key:   value.StringKey(fmt.Sprint(iter.Key().Interface())),
				Value: iter.Value().Interface(),
			})
		}

		sort.Slice(out, func(i, j int) bool { return out[i].Key.Name() < out[j].Key.Name() })
		return out

	case reflect.Slice, reflect.Array:
		out := make([]Field, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out = append(out, Field{Key: value.StringKey(strconv.Itoa(i)), Value: rv.Index(i).Interface()})
		}

		return out
	}
}
