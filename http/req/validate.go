package req

import (
	"errors"
	"reflect"
	"strings"

	v10 "github.com/go-playground/validator/v10"
	"github.com/xy-planning-network/trailhead"
)

type validator struct {
	valid *v10.Validate
}

// newValidator constructs a validator, which applies default configuration.
func newValidator() validator {
	v := v10.New()
	v.RegisterValidation("enum", validateEnumerable)
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			name = ""
		}

		if name == "" {
			name = strings.SplitN(field.Tag.Get("schema"), ",", 2)[0]
		}

		if name == "-" {
			name = ""
		}

		return name
	})

	return validator{v}
}

// validate checks the fields on structPtr, read from in, match the rules set by "validate" struct tags.
// On success, validate returns no error.
// On failure, validate translates each issue to a ValidationError,
// returning them all as ValidationErrors.
func (v validator) validate(structPtr any, in Source) error {
	err := v.valid.Struct(structPtr)
	if err == nil {
		return nil
	}

	var errs v10.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}

	validateErrs := make(ValidationErrors, 0, len(errs))
	for _, ve := range errs {
		field := ve.Namespace()

		ns := strings.SplitN(field, ".", 2)
		if len(ns) == 2 {
			field = ns[1]
		}

		validateErrs = append(validateErrs, ValidationError{
			In:    in,
			Field: field,
			Got:   ve.Value(),
			Rule:  rule(ve) + "; " + ve.Type().String(),
		})
	}

	return validateErrs
}

// validatePathParam checks raw, captured for the path parameter name, against the rules in tag.
func (v validator) validatePathParam(name, raw, tag string) error {
	err := v.valid.Var(raw, tag)
	if err == nil {
		return nil
	}

	var errs v10.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}

	validateErrs := make(ValidationErrors, 0, len(errs))
	for _, ve := range errs {
		validateErrs = append(validateErrs, invalidPathParam(name, raw, rule(ve))...)
	}

	return validateErrs
}

// rule renders the tag ve broke with its param, e.g., "max=8".
func rule(ve v10.FieldError) string {
	if ve.Param() == "" {
		return ve.Tag()
	}

	return ve.Tag() + "=" + ve.Param()
}

// validateEnumerable validates whether field is a valid Enumerable or slice of valid Enumerable.
func validateEnumerable(fl v10.FieldLevel) bool {
	field := fl.Field()

	if field.Kind() == reflect.Slice {
		vals := []reflect.Value{}
		for i := 0; i < field.Len(); i++ {
			vals = append(vals, field.Index(i))
		}

		return checkEnums(vals...)
	}

	return checkEnums(field)
}

// checkEnums asserts each [reflect.Value] is an Enumerable and valid.
func checkEnums(items ...reflect.Value) bool {
	if len(items) == 0 {
		return false
	}

	for _, item := range items {
		enum, ok := item.Interface().(trailhead.Enumerable)
		if !ok || enum.Valid() != nil {
			return false
		}
	}

	return true
}
