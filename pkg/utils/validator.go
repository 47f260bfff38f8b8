package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report field names as their json keys so error details line up with
	// what the client actually sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// YYYY-MM-DD with valid calendar values. An empty string means "no
	// value" and is normalized by the caller, not rejected here.
	v.RegisterValidation("dateonly", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if value == "" {
			return true
		}
		if len(value) != len(DateLayout) {
			return false
		}
		_, err := ParseDate(value)
		return err == nil
	})

	return v
}

// ValidateStruct runs the validator tags of a request struct.
func ValidateStruct(s any) error {
	return validate.Struct(s)
}

// GetValidationErrors flattens a validator error into per-field message
// lists keyed by json field name.
func GetValidationErrors(err error) map[string][]string {
	details := make(map[string][]string)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		details["non_field_errors"] = []string{err.Error()}
		return details
	}

	for _, fe := range verrs {
		details[fe.Field()] = append(details[fe.Field()], fieldErrorMessage(fe))
	}
	return details
}

// GetBodyTypeError maps a JSON type mismatch from the body decoder to the
// same per-field shape as validation errors. Returns nil when the error does
// not identify a field.
func GetBodyTypeError(err error) map[string][]string {
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) || typeErr.Field == "" {
		return nil
	}
	return map[string][]string{
		typeErr.Field: {fmt.Sprintf("Not a valid %s.", typeErr.Type.Kind())},
	}
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "min":
		return fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	case "oneof":
		return fmt.Sprintf("%v is not a valid choice.", fe.Value())
	case "dateonly":
		return "Date has wrong format. Use one of these formats instead: YYYY-MM-DD."
	default:
		return fmt.Sprintf("Failed on the %s rule.", fe.Tag())
	}
}
