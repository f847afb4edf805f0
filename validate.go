package frisbii

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)
	// Frisbii handles allow letters, digits and the separators _ . - @
	handlePattern = regexp.MustCompile(`^[a-zA-Z0-9_.@-]+$`)
	validate      = newValidator()
)

// Validate checks the request before it is sent so malformed orders never
// reach the network.
func (r ChargeSessionRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return normalizeValidationError(err)
	}
	return nil
}

// Validate ensures the webhook event carries the fields needed to verify
// and route it.
func (e WebhookEvent) Validate() error {
	if err := validate.Struct(e); err != nil {
		return normalizeValidationError(err)
	}
	return nil
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.Split(field.Tag.Get("json"), ",")[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})

	for tag, pattern := range map[string]*regexp.Regexp{
		"currency": currencyPattern,
		"handle":   handlePattern,
	} {
		if err := v.RegisterValidation(tag, matchString(pattern)); err != nil {
			panic(err)
		}
	}

	return v
}

func matchString(pattern *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(string)
		return ok && pattern.MatchString(value)
	}
}

func normalizeValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}
	first := validationErrs[0]
	return fmt.Errorf("%s %s", jsonPath(first), validationMessage(first))
}

func jsonPath(fe validator.FieldError) string {
	path := fe.Namespace()
	if idx := strings.Index(path, "."); idx >= 0 {
		path = path[idx+1:]
	}
	if path == "" {
		return fe.Field()
	}
	return path
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("cannot exceed %s characters", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be an absolute URL"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "currency":
		return "must be an uppercase 3-letter ISO-4217 code"
	case "handle":
		return "may only contain letters, digits and _ . - @"
	default:
		return fmt.Sprintf("failed validation: %s", fe.Tag())
	}
}
