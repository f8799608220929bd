// Package forms declares the request forms and their validation rules.
// Validation produces user-facing field errors for re-rendering; it never
// reaches into lower layers.
package forms

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RegisterForm carries the registration fields.
type RegisterForm struct {
	Username        string `form:"username" validate:"required,min=2,max=20"`
	Email           string `form:"email" validate:"required,email"`
	Password        string `form:"password" validate:"required"`
	ConfirmPassword string `form:"confirm_password" validate:"required,eqfield=Password"`
}

// LoginForm carries the login fields.
type LoginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// ReviewForm carries the review submission fields.
type ReviewForm struct {
	Rating      int    `form:"rating" validate:"gte=1,lte=5"`
	Description string `form:"description" validate:"required"`
}

// SearchForm carries the directory search fields.
type SearchForm struct {
	SearchType string `form:"search_type" validate:"required,oneof=by_city by_name by_type"`
	Query      string `form:"query" validate:"required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report errors under the form field names the templates know.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// Validate checks the form and returns field-level error messages keyed by
// form field name, or nil when the form is valid.
func Validate(form any) map[string]string {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"form": "Invalid input."}
	}

	messages := make(map[string]string, len(fieldErrors))
	for _, fe := range fieldErrors {
		if _, seen := messages[fe.Field()]; !seen {
			messages[fe.Field()] = message(fe)
		}
	}
	return messages
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "min":
		return fmt.Sprintf("Must be at least %s characters.", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters.", fe.Param())
	case "eqfield":
		return "Passwords must match."
	case "oneof":
		return "Select a valid search type."
	case "gte", "lte":
		return "Rating must be between 1 and 5."
	default:
		return "Invalid value."
	}
}
