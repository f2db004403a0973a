package schema

import "reflect"

// GinValidator lets gin's request binding share this package's validator.
// Install with `binding.Validator = schema.GinValidator{}`.
type GinValidator struct{}

func (GinValidator) ValidateStruct(obj any) error {
	rv := reflect.ValueOf(obj)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}
	return validate.Struct(rv.Interface())
}

func (GinValidator) Engine() any {
	return validate
}
