package models

import (
	"errors"
	"reflect"
	"strings"

	"quiz-backend/internal/apperror"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// A Rating satisfies "required" only when it is truthy.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if r, ok := field.Interface().(Rating); ok {
			return r.Truthy()
		}
		return nil
	}, Rating{})
	return v
}

// Validate runs the validate tags of a request struct. Failures come back as
// validation AppErrors wrapping the validator's errors.
func Validate(req any) error {
	if err := validate.Struct(req); err != nil {
		return &apperror.AppError{Type: apperror.TypeValidation, Message: "request failed validation", Err: err}
	}
	return nil
}

// MissingFields lists the JSON names of fields that failed validation, or nil
// when err is not a validation failure.
func MissingFields(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return fields
}
