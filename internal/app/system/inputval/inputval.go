// Package inputval validates form input with go-playground/validator struct
// tags and turns failures into Persian messages.
//
//	type newCategoryInput struct {
//		Name string `validate:"notblank,max=200" label:"نام"`
//	}
//	res := inputval.Validate(in)
//	if res.HasErrors() { ... res.For("Name") ... }
//
// Besides the stock validator tags, notblank (not empty after trimming) and
// httpurl (absolute http or https URL) are registered. The label tag names
// the field in messages.
package inputval

import (
	"errors"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/dalemusser/liftadmin/internal/app/system/i18n"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("label")
	})
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("httpurl", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || IsValidHTTPURL(s)
	})
	return v
}

// FieldError is one failed rule.
type FieldError struct {
	Field   string
	Message string
}

// Result collects every failed rule, in field order.
type Result struct {
	Errors []FieldError
}

// HasErrors reports whether any rule failed.
func (r *Result) HasErrors() bool { return len(r.Errors) > 0 }

// First returns the first message, or "".
func (r *Result) First() string {
	if len(r.Errors) == 0 {
		return ""
	}
	return r.Errors[0].Message
}

// All joins every message.
func (r *Result) All() string {
	msgs := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		msgs = append(msgs, e.Message)
	}
	return strings.Join(msgs, "؛ ")
}

// For returns the first message for field, or "".
func (r *Result) For(field string) string {
	for _, e := range r.Errors {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}

// Validate checks v, a struct or pointer to struct, against its tags.
// Anything else yields an empty Result.
func Validate(v any) *Result {
	res := &Result{}
	err := validate.Struct(v)
	if err == nil {
		return res
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return res
	}
	for _, fe := range verrs {
		res.Errors = append(res.Errors, FieldError{Field: fe.StructField(), Message: message(fe)})
	}
	return res
}

// message maps a validator failure onto the catalog. fe.Field() is the
// label when one is set.
func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return i18n.T(i18n.MsgFieldRequired, fe.Field())
	case "max":
		n, _ := strconv.Atoi(fe.Param())
		return i18n.T(i18n.MsgFieldTooLong, fe.Field(), n)
	case "httpurl":
		return i18n.T(i18n.MsgFieldURL, fe.Field())
	default:
		return i18n.T(i18n.MsgValidationError)
	}
}

// IsValidHTTPURL reports whether s is an absolute http or https URL.
func IsValidHTTPURL(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
