package record

import "reflect"

// Record is a dynamic record: a string-keyed map of field values.
// Projections produce Records; any map[string]any is a Record.
type Record = map[string]any

// Field returns the named field of v, or nil when v has no such field.
//
// Supported containers: Record (and any other string-keyed map) and
// structs via their exported fields; pointers are dereferenced. Any
// other value has no fields.
func Field(v any, name string) any {
	switch src := v.(type) {
	case nil:
		return nil
	case Record:
		return src[name]
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		keyType := rv.Type().Key()
		if keyType.Kind() != reflect.String {
			return nil
		}
		mv := rv.MapIndex(reflect.ValueOf(name).Convert(keyType))
		if !mv.IsValid() {
			return nil
		}
		return mv.Interface()
	case reflect.Struct:
		fv := rv.FieldByName(name)
		if !fv.IsValid() || !fv.CanInterface() {
			return nil
		}
		return fv.Interface()
	}
	return nil
}

// Project builds a fresh Record holding exactly the requested fields of
// v, each value copied by reference. Nested structure stays shared with
// the source; a field v does not have maps to nil.
func Project(v any, fields ...string) Record {
	out := make(Record, len(fields))
	for _, f := range fields {
		out[f] = Field(v, f)
	}
	return out
}
