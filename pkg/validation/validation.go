// Package validation provides boundary validation for configuration records.
//
// Validation is fail fast: the first rule that fails produces a single Error
// and construction stops. Rules run in field declaration order, so callers
// see stable, deterministic failures. Error field paths use the manifest
// field names (the json tag), not the Go struct field names.
package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validation patterns.
var (
	repoPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+/[A-Za-z0-9_-]+$`)
)

// validate is the singleton validator instance.
var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	registerCustomValidators(validate)
}

// jsonFieldName reports fields by their json tag so error paths match the
// manifest field names.
func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "" || name == "-" {
		return fld.Name
	}
	return name
}

// registerCustomValidators registers custom validation functions.
func registerCustomValidators(v *validator.Validate) {
	// Non-empty after trimming whitespace.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	// GitHub repository reference in owner/repo form.
	_ = v.RegisterValidation("github_repo", func(fl validator.FieldLevel) bool {
		return repoPattern.MatchString(fl.Field().String())
	})
}

// Error is a single failed validation check.
type Error struct {
	Field      string
	Value      interface{}
	Constraint string
}

// NewError builds an Error for checks performed outside the validator, such
// as cross-field rules.
func NewError(field string, value interface{}, constraint string) Error {
	return Error{Field: field, Value: value, Constraint: constraint}
}

// Error returns the short message form.
func (e Error) Error() string {
	return fmt.Sprintf("Validation failed for field %q: %s", e.Field, e.Constraint)
}

// Detail returns the long form including the offending value.
func (e Error) Detail() string {
	return fmt.Sprintf("ValidationError: Field %q with value %s - %s",
		e.Field, literal(e.Value), e.Constraint)
}

// literal renders a value the way it would be written in source.
func literal(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return "<nil>"
	case string:
		return strconv.Quote(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// Struct validates v against its validate tags and returns the first failing
// rule as an Error.
func Struct(v interface{}) error {
	return wrapFirst(validate.Struct(v))
}

// wrapFirst converts validator.ValidationErrors to a single Error.
func wrapFirst(err error) error {
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	if len(validationErrors) == 0 {
		return nil
	}

	// Surface only the first failure.
	fe := validationErrors[0]
	return Error{
		Field:      fe.Field(),
		Value:      fe.Value(),
		Constraint: formatConstraint(fe),
	}
}

// formatConstraint creates a human-readable description of the failed rule.
func formatConstraint(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "notblank":
		return "must be a non-empty string"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "github_repo":
		return "must be a repository reference in owner/repo form"
	case "startswith":
		return fmt.Sprintf("must start with %s", fe.Param())
	default:
		return fmt.Sprintf("failed validation '%s'", fe.Tag())
	}
}
