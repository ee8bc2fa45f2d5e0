package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is shared by every input type, it caches struct metadata so a single instance is enough
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report field paths with their JSON names (items[0].unit_price) instead of Go names
	v.RegisterTagNameFunc(jsonName)
	return v
}

func jsonName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// FieldError describes a single offending input field
type FieldError struct {
	Field   string `json:"field"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

// ValidationError is returned when an input does not match its entity schema.
// It carries one FieldError per offending field.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// InvariantError is a client error raised by a rule that lives outside the schema
type InvariantError struct {
	Message string
}

func (e *InvariantError) Error() string {
	return e.Message
}

// ErrEmptyOrder is returned when an order is placed without items
var ErrEmptyOrder = &InvariantError{Message: "Order must contain at least one item"}

// validateStruct runs the struct tag rules and converts the result into a *ValidationError
func validateStruct(input interface{}) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	fields := make([]FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, FieldError{
			Field:   fieldPath(fe.Namespace()),
			Type:    fe.Tag(),
			Message: fieldMessage(fe),
		})
	}
	return &ValidationError{Fields: fields}
}

// fieldPath drops the root struct name from a validator namespace
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}

// DecodeError converts a JSON binding failure into a *ValidationError so that
// type mismatches are reported per field like any other schema violation.
func DecodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return &ValidationError{Fields: []FieldError{{
			Field:   field,
			Type:    "type",
			Message: fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value),
		}}}
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &ValidationError{Fields: []FieldError{{
			Field:   "body",
			Type:    "json",
			Message: "request body must be a valid JSON object",
		}}}
	}

	return &ValidationError{Fields: []FieldError{{
		Field:   "body",
		Type:    "json",
		Message: err.Error(),
	}}}
}

func valueOr[T any](ptr *T, fallback T) T {
	if ptr == nil {
		return fallback
	}
	return *ptr
}

// RejectNulls reports every field tagged nullable:"false" that is explicitly null in body.
// Such fields take their default only when the key is absent; pointer inputs cannot tell
// the two cases apart once decoded, so the raw body is inspected.
func RejectNulls(body []byte, input interface{}) error {
	fields := nullFields(body, reflect.TypeOf(input), "")
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

func nullFields(raw []byte, t reflect.Type, prefix string) []FieldError {
	if t == nil {
		return nil
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	var object map[string]json.RawMessage
	if err := json.Unmarshal(raw, &object); err != nil {
		return nil
	}

	var fields []FieldError
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name := jsonName(field)
		value, ok := object[name]
		if name == "" || !ok {
			continue
		}

		path := prefix + name
		if field.Tag.Get("nullable") == "false" && isJSONNull(value) {
			fields = append(fields, FieldError{Field: path, Type: "null", Message: "field may not be null"})
			continue
		}

		if field.Type.Kind() == reflect.Slice {
			var elems []json.RawMessage
			if err := json.Unmarshal(value, &elems); err != nil {
				continue
			}
			for j, elem := range elems {
				fields = append(fields, nullFields(elem, field.Type.Elem(), fmt.Sprintf("%s[%d].", path, j))...)
			}
		}
	}
	return fields
}

func isJSONNull(raw json.RawMessage) bool {
	return strings.TrimSpace(string(raw)) == "null"
}
