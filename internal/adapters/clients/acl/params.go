package acl

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"github.com/jsamuelsen/go-fdc/pkg/food"
)

// Documented API limits.
const (
	MaxNutrients = 25
	MaxFdcIDs    = 20
	MaxPageSize  = 200
)

// Sort orders sent under the sortOrder key.
const (
	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// QueryParams holds the recognized query arguments of all endpoints. Nil
// pointers and empty lists are absent and never emitted.
type QueryParams struct {
	Format     *food.ReportFormat `query:"format"     validate:"omitnil,fdc_format"`
	Nutrients  []int              `query:"nutrients"  validate:"max=25"`
	FdcIDs     []int              `query:"fdcIds"     validate:"max=20"`
	DataTypes  []food.DataType    `query:"dataType"   validate:"dive,fdc_datatype"`
	PageSize   *int               `query:"pageSize"   validate:"omitnil,min=1"`
	PageNumber *int               `query:"pageNumber" validate:"omitnil,min=1"`
	SortBy     *food.Sorting      `query:"sortBy"     validate:"omitnil,fdc_sort"`
	Query      *string            `query:"query"`
	BrandOwner string             `query:"brandOwner"`
	Reverse    *bool              `query:"sortOrder"`
}

// Advisory is a non-fatal notice about a parameter the API will clamp or
// ignore. The call still proceeds.
type Advisory struct {
	Field   string
	Message string
}

func (a Advisory) String() string {
	return a.Message
}

var (
	paramValidator     *validator.Validate
	paramValidatorOnce sync.Once
)

// ParamValidator returns the validator used for query parameters, with the
// FDC enum tags registered.
func ParamValidator() *validator.Validate {
	paramValidatorOnce.Do(func() {
		paramValidator = validator.New()

		// Report query keys instead of Go field names.
		paramValidator.RegisterTagNameFunc(func(fld reflect.StructField) string {
			return fld.Tag.Get("query")
		})

		_ = paramValidator.RegisterValidation("fdc_format", func(fl validator.FieldLevel) bool {
			return food.ReportFormat(fl.Field().String()).IsValid()
		})
		_ = paramValidator.RegisterValidation("fdc_datatype", func(fl validator.FieldLevel) bool {
			return food.DataType(fl.Field().String()).IsValid()
		})
		_ = paramValidator.RegisterValidation("fdc_sort", func(fl validator.FieldLevel) bool {
			return food.Sorting(fl.Field().String()).IsValid()
		})
	})

	return paramValidator
}

// Validate checks the parameters against the documented limits and returns
// a *food.ValidationError for the first violation.
func (p *QueryParams) Validate() error {
	err := ParamValidator().Struct(p)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return food.NewValidationError("", err.Error())
	}

	return formatFieldError(fieldErrs[0])
}

// Encode validates the parameters and serializes them into query values.
// Advisories are returned for limits the API enforces on its own side.
func (p *QueryParams) Encode() (url.Values, []Advisory, error) {
	if err := p.Validate(); err != nil {
		return nil, nil, err
	}

	var advisories []Advisory

	values := url.Values{}

	if p.Format != nil {
		values.Set("format", p.Format.String())
	}

	if len(p.Nutrients) > 0 {
		values["nutrients"] = lo.Map(p.Nutrients, func(n int, _ int) string { return strconv.Itoa(n) })
	}

	if len(p.FdcIDs) > 0 {
		values["fdcIds"] = lo.Map(p.FdcIDs, func(id int, _ int) string { return strconv.Itoa(id) })
	}

	if len(p.DataTypes) > 0 {
		values["dataType"] = lo.Map(p.DataTypes, func(d food.DataType, _ int) string { return d.String() })
	}

	if p.PageSize != nil {
		if *p.PageSize > MaxPageSize {
			advisories = append(advisories, Advisory{
				Field:   "pageSize",
				Message: fmt.Sprintf("Maximum pageSize is %d. pageSize passed is %d", MaxPageSize, *p.PageSize),
			})
		}

		values.Set("pageSize", strconv.Itoa(*p.PageSize))
	}

	if p.PageNumber != nil {
		values.Set("pageNumber", strconv.Itoa(*p.PageNumber))
	}

	if p.SortBy != nil {
		values.Set("sortBy", p.SortBy.String())
	}

	if p.Query != nil {
		values.Set("query", *p.Query)
	}

	if p.BrandOwner != "" {
		values.Set("brandOwner", p.BrandOwner)
	}

	if p.Reverse != nil {
		values.Set("sortOrder", lo.Ternary(*p.Reverse, SortOrderDesc, SortOrderAsc))
	}

	return values, advisories, nil
}

// formatFieldError turns a validator failure into a readable validation error.
func formatFieldError(e validator.FieldError) error {
	field := formatFieldPath(e.Field())
	value := e.Value()

	var msg string

	switch e.Tag() {
	case "max":
		msg = fmt.Sprintf("accepts at most %s values, received %v", e.Param(), reflect.ValueOf(value).Len())
	case "min":
		msg = fmt.Sprintf("must be at least %s, was %v", e.Param(), value)
	case "fdc_format":
		msg = fmt.Sprintf("unknown report format %q, expected %s or %s", value, food.FormatAbridged, food.FormatFull)
	case "fdc_datatype":
		supported := lo.Map(food.SupportedDataTypes(), func(d food.DataType, _ int) string { return d.String() })
		msg = fmt.Sprintf("unknown data type %q, expected one of: %s", value, strings.Join(supported, ", "))
	case "fdc_sort":
		msg = fmt.Sprintf("unknown sort field %q", value)
	default:
		msg = "failed validation: " + e.Tag()
	}

	return food.NewValidationErrorWithValue(field, msg, value)
}

// formatFieldPath strips the index from "dataType[1]" so the key matches
// the query name.
func formatFieldPath(field string) string {
	if i := strings.IndexByte(field, '['); i > 0 {
		return field[:i]
	}

	return field
}
