package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrBinding indicates query binding failed before validation ran.
var ErrBinding = errors.New("binding failed")

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator. Field errors are reported under
// their query parameter names.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("form"), ",")
			if name == "-" {
				return ""
			}

			return name
		})

		_ = validate.RegisterValidation("intlist", validateIntList)
	})

	return validate
}

// BindQuery binds the query string into v and validates it.
func BindQuery(c *gin.Context, v any) error {
	if err := c.ShouldBindQuery(v); err != nil {
		return fmt.Errorf("%w: %w", ErrBinding, err)
	}

	return Validator().Struct(v)
}

// ValidationErrors extracts per-parameter messages from a validator error.
func ValidationErrors(err error) map[string]string {
	fieldErrors := make(map[string]string)

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, fe := range validationErrs {
			fieldErrors[fe.Field()] = validationMessage(fe)
		}
	}

	return fieldErrors
}

var validationMessages = map[string]string{
	"required": "this parameter is required",
	"intlist":  "must be a comma separated list of integers",
	"oneof":    "must be one of: {param}",
	"min":      "must be at least {param}",
	"max":      "must be at most {param}",
}

func validationMessage(fe validator.FieldError) string {
	if msg, ok := validationMessages[fe.Tag()]; ok {
		return strings.ReplaceAll(msg, "{param}", fe.Param())
	}

	return "failed validation: " + fe.Tag()
}

// validateIntList accepts a string or []string whose comma separated parts
// are all integers.
func validateIntList(fl validator.FieldLevel) bool {
	field := fl.Field()

	switch field.Kind() {
	case reflect.String:
		_, err := SplitInts(field.String())
		return err == nil
	case reflect.Slice:
		for i := range field.Len() {
			if _, err := SplitInts(field.Index(i).String()); err != nil {
				return false
			}
		}

		return true
	default:
		return false
	}
}

// SplitInts parses a comma separated list of integers. Empty parts are skipped.
func SplitInts(s string) ([]int, error) {
	var out []int

	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", part)
		}

		out = append(out, n)
	}

	return out, nil
}
