// Package validation wraps go-playground/validator so services get models.Error
// values keyed by json field names.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/franciscosanchezn/gin-recipe-api/internal/models"
	"github.com/go-playground/validator/v10"
)

// Validator checks request structs tagged with `validate:"..."`.
type Validator struct {
	v *validator.Validate
}

// New creates a validator that reports fields by their json names
func New() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	return &Validator{v: v}
}

// Validate returns nil or a *models.Error with one detail per failing field
func (v *Validator) Validate(s any) error {
	if err := v.v.Struct(s); err != nil {
		return formatError(err)
	}
	return nil
}

func formatError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	fields := make(map[string]string, len(validationErrs))
	for _, e := range validationErrs {
		fields[fieldPath(e)] = friendlyMessage(e)
	}
	return models.ValidationError("validation failed", fields)
}

// fieldPath drops the top-level struct name from the namespace, so a failing
// element of tags shows up as "tags[1]".
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return e.Field()
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "enter a valid email address"
	case "min":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("ensure this field has at least %s characters", e.Param())
		}
		return "ensure this value is greater than or equal to " + e.Param()
	case "max":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("ensure this field has no more than %s characters", e.Param())
		}
		return "ensure this value is less than or equal to " + e.Param()
	case "gte":
		return "ensure this value is greater than or equal to " + e.Param()
	case "gt":
		return "ensure this value is greater than " + e.Param()
	case "lte":
		return "ensure this value is less than or equal to " + e.Param()
	case "url":
		return "enter a valid URL"
	default:
		return "is invalid"
	}
}
