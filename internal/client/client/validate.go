package client

import (
	"reflect"

	"github.com/go-playground/validator/v10"
)

// validateResponse checks a decoded body against its `validate` tags.
// Structs are validated directly; slices and arrays element by element.
// Anything else (maps, scalars) passes.
func validateResponse(v *validator.Validate, out any) error {
	rv := reflect.ValueOf(out)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Struct:
		return v.Struct(rv.Interface())
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			elem := rv.Index(i)
			for elem.Kind() == reflect.Pointer && !elem.IsNil() {
				elem = elem.Elem()
			}
			if elem.Kind() != reflect.Struct {
				continue
			}
			if err := v.Struct(elem.Interface()); err != nil {
				return err
			}
		}
	}
	return nil
}
