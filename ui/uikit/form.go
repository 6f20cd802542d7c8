package uikit

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormMode is the mutation modal's mode. View mode disables all inputs
// and turns submit into a no-op close.
type FormMode string

const (
	ModeCreate FormMode = "create"
	ModeUpdate FormMode = "update"
	ModeView   FormMode = "view"
)

// FieldErrors maps each failing field to its message. Validation is
// all-or-nothing: any entry blocks submission.
type FieldErrors map[string]string

func (fe FieldErrors) Add(field, message string) {
	if _, taken := fe[field]; !taken {
		fe[field] = message
	}
}

func (fe FieldErrors) OK() bool { return len(fe) == 0 }

func (fe FieldErrors) Error() string {
	var out []string
	for field, msg := range fe {
		out = append(out, field+": "+msg)
	}
	return strings.Join(out, ", ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report errors under the json field name the screen binds to
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// ValidateStruct runs tag validation and folds the result into
// FieldErrors. Cross-field checks are layered on by each form.
func ValidateStruct(s any) FieldErrors {
	fe := FieldErrors{}
	err := validate.Struct(s)
	if err == nil {
		return fe
	}
	if ve, ok := err.(validator.ValidationErrors); ok {
		for _, f := range ve {
			fe.Add(f.Field(), formatFieldError(f))
		}
		return fe
	}
	fe.Add("form", err.Error())
	return fe
}

func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email"
	case "url":
		return "Must be a valid URL"
	case "min":
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s", fe.Param())
	case "gte":
		return fmt.Sprintf("Must be %s or more", fe.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", fe.Param())
	case "datetime":
		return "Invalid date/time format"
	}
	return fmt.Sprintf("Failed validation for '%s'", fe.Tag())
}
