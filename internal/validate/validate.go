package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var structValidator = validator.New(validator.WithRequiredStructEnabled())

// FieldsError lists the struct fields that failed validation, using the json
// names clients actually sent.
type FieldsError struct {
	Fields []string
}

func (e *FieldsError) Error() string {
	return fmt.Sprintf(
		"validation failed on fields: %s",
		strings.Join(e.Fields, ", "),
	)
}

// StructFields validates v against its `validate` tags and reports every
// failing field at once instead of stopping at the first.
func StructFields(v any) error {
	err := structValidator.Struct(v)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	fieldsErr := &FieldsError{}
	for _, fieldErr := range validationErrs {
		fieldsErr.Fields = append(
			fieldsErr.Fields,
			jsonFieldName(fieldErr.Field()),
		)
	}

	return fieldsErr
}

// jsonFieldName lowercases the leading rune so Go field names line up with
// the camelCase json tags used across the API.
func jsonFieldName(field string) string {
	if field == "" {
		return field
	}

	return strings.ToLower(field[:1]) + field[1:]
}
