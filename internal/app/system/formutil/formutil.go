// Package formutil provides helpers for form re-rendering with validation errors.
//
// When a form submission fails validation, the form should be re-rendered with:
// - The user's previously entered values (echoed back)
// - An error message per field explaining what went wrong
// - The dialog the form lives in, still open
//
// Example usage:
//
//	type categoryForm struct {
//		formutil.Base
//		Name        string
//		Description string
//	}
//
//	// In your handler:
//	form := categoryForm{Name: name}
//	form.SetFieldErrors(inputval.Validate(in))
package formutil

import (
	"html/template"

	"github.com/dalemusser/liftadmin/internal/app/system/inputval"
)

// Base contains common fields for forms that can be embedded in form data structs.
type Base struct {
	Error       template.HTML
	FieldErrors map[string]string
}

// SetError sets the form-level error message.
// This is a convenience method for setting Error as template.HTML.
func (b *Base) SetError(msg string) {
	b.Error = template.HTML(template.HTMLEscapeString(msg))
}

// SetFieldErrors copies every failed rule from res, keyed by field name.
func (b *Base) SetFieldErrors(res *inputval.Result) {
	if res == nil || !res.HasErrors() {
		return
	}
	if b.FieldErrors == nil {
		b.FieldErrors = map[string]string{}
	}
	for _, e := range res.Errors {
		if _, ok := b.FieldErrors[e.Field]; !ok {
			b.FieldErrors[e.Field] = e.Message
		}
	}
}

// FieldError returns the message for field, or "".
func (b Base) FieldError(field string) string {
	return b.FieldErrors[field]
}

// HasErrors reports whether any form or field error is set.
func (b Base) HasErrors() bool {
	return b.Error != "" || len(b.FieldErrors) > 0
}
