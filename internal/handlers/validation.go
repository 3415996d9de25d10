package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

const minPasswordLength = 8

// ValidationErrorResponse lists the fields that failed validation
// swagger:model ValidationErrorResponse
type ValidationErrorResponse struct {
	// Error message
	// default: Input data validation failed
	Error string `json:"error"`

	// Field name to failed rule
	Errors map[string]string `json:"errors"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("strong_password", strongPassword); err != nil {
		panic(err)
	}
	return v
}

// strongPassword requires a lower and upper case letter, a digit and a symbol.
func strongPassword(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len([]rune(s)) < minPasswordLength {
		return false
	}
	var lower, upper, digit, symbol bool
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			symbol = true
		}
	}
	return lower && upper && digit && symbol
}

// validateInput writes a 400 response and returns false when v fails validation.
func validateInput(w http.ResponseWriter, v any) bool {
	err := validate.Struct(v)
	if err == nil {
		return true
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Input data validation failed"})
		return false
	}

	resp := ValidationErrorResponse{Error: "Input data validation failed", Errors: map[string]string{}}
	for _, fe := range fieldErrs {
		resp.Errors[fe.Namespace()[strings.Index(fe.Namespace(), ".")+1:]] = ruleMessage(fe)
	}
	writeJSON(w, http.StatusBadRequest, resp)
	return false
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be an email"
	case "strong_password":
		return fe.Field() + " must be at least 8 characters with upper and lower case letters, a number and a symbol"
	case "gte":
		return fe.Field() + " must be greater than or equal to " + fe.Param()
	case "min":
		return fe.Field() + " must not be empty"
	default:
		return fe.Field() + " is invalid"
	}
}

// decodeJSON decodes the request body into v and writes a 400 response on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return false
	}
	return true
}
