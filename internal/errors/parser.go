package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// BindingFields turns a gin binding error into a field -> message map.
// Errors that are not field validation failures map to a single "body" entry.
func BindingFields(err error) map[string]string {
	fields := make(map[string]string)
	if err == nil {
		return fields
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fields[jsonName(fe.Field())] = fieldMessage(fe)
		}
		return fields
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		fields[typeErr.Field] = fmt.Sprintf("must be a %s", typeErr.Type.String())
		return fields
	}

	fields["body"] = "malformed request body"
	return fields
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min", "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "addon":
		return "is not a recognised add-on"
	case "payment_method":
		return "must be Cash, Card, Cheque or Bank Transfer"
	}
	return fmt.Sprintf("failed %s validation", fe.Tag())
}

// jsonName converts a Go field name to the snake_case key used in bodies
func jsonName(field string) string {
	isUpper := func(b byte) bool { return b >= 'A' && b <= 'Z' }

	var b strings.Builder
	for i := 0; i < len(field); i++ {
		ch := field[i]
		if !isUpper(ch) {
			b.WriteByte(ch)
			continue
		}
		// boundary before a word, including the last capital of an acronym (IDNumber)
		if i > 0 && (!isUpper(field[i-1]) || (i+1 < len(field) && !isUpper(field[i+1]))) {
			b.WriteByte('_')
		}
		b.WriteByte(ch + ('a' - 'A'))
	}
	return b.String()
}
