// Package schema validates write inputs before they reach storage.
//
// Rules live in `binding` struct tags so the same declarations drive gin's
// request binding on the server and Check in the typed client. Unknown JSON
// fields are ignored.
package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// FailedMessage is the top-level message of every ValidationError.
const FailedMessage = "Validation failed"

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports every field that failed a rule.
type ValidationError struct {
	Message string
	Fields  []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return e.Message + ": " + strings.Join(parts, "; ")
}

// Field returns the error reported for the named JSON field, if any.
func (e *ValidationError) Field(name string) (FieldError, bool) {
	for _, f := range e.Fields {
		if f.Field == name {
			return f, true
		}
	}
	return FieldError{}, false
}

var validate = newValidator()

// clockLayouts are the time-of-day forms HTML time inputs emit.
var clockLayouts = []string{"15:04", "15:04:05"}

func newValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	_ = v.RegisterValidation("clocktime", func(fl validator.FieldLevel) bool {
		for _, layout := range clockLayouts {
			if _, err := time.Parse(layout, fl.Field().String()); err == nil {
				return true
			}
		}
		return false
	})
	return v
}

// Check validates an already-decoded input struct (or pointer to one).
func Check(v any) error {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return &ValidationError{Message: FailedMessage, Fields: []FieldError{{Field: "body", Message: "Body is required"}}}
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}
	if err := validate.Struct(rv.Interface()); err != nil {
		return FromBindError(v, err)
	}
	return nil
}

// Parse decodes an arbitrary JSON record into T and validates it.
func Parse[T any](data []byte) (T, error) {
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return out, FromBindError(&out, err)
	}
	if err := Check(&out); err != nil {
		return out, err
	}
	return out, nil
}

// FromBindError turns a decode or validation error for target into a
// *ValidationError. target is used to map struct fields to JSON names.
func FromBindError(target any, err error) error {
	if err == nil {
		return nil
	}
	return ToValidationError(target, err)
}

// ToValidationError is FromBindError with a concrete result; err must be non-nil.
func ToValidationError(target any, err error) *ValidationError {
	var already *ValidationError
	if errors.As(err, &already) {
		return already
	}

	var (
		verrs     validator.ValidationErrors
		typeErr   *json.UnmarshalTypeError
		syntaxErr *json.SyntaxError
	)
	switch {
	case errors.As(err, &verrs):
		return translate(target, verrs)
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return &ValidationError{Message: FailedMessage, Fields: []FieldError{{
			Field:   field,
			Message: fmt.Sprintf("Expected %s, received %s", jsonKind(typeErr.Type), typeErr.Value),
		}}}
	case errors.As(err, &syntaxErr), errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return &ValidationError{Message: FailedMessage, Fields: []FieldError{{Field: "body", Message: "Invalid JSON body"}}}
	default:
		return &ValidationError{Message: FailedMessage, Fields: []FieldError{{Field: "body", Message: err.Error()}}}
	}
}

func translate(target any, verrs validator.ValidationErrors) *ValidationError {
	t := reflect.TypeOf(target)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	out := &ValidationError{Message: FailedMessage}
	seen := map[string]bool{}
	for _, fe := range verrs {
		name, msg := fe.Field(), ""
		if t != nil && t.Kind() == reflect.Struct {
			if sf, ok := t.FieldByName(fe.StructField()); ok {
				name = jsonName(sf)
				msg = sf.Tag.Get("message")
			}
		}
		if msg == "" {
			msg = fmt.Sprintf("%s failed the %q rule", name, fe.Tag())
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		out.Fields = append(out.Fields, FieldError{Field: name, Message: msg})
	}
	return out
}

func jsonName(sf reflect.StructField) string {
	tag := sf.Tag.Get("json")
	if name, _, _ := strings.Cut(tag, ","); name != "" && name != "-" {
		return name
	}
	return sf.Name
}

func jsonKind(t reflect.Type) string {
	if t == nil {
		return "value"
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Bool:
		return "boolean"
	case reflect.String:
		return "string"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return "object"
	}
}
