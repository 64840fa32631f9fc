// Package validate wraps go-playground/validator so every request type is
// checked the same way: all fields validated at once, one structured error
// per failing field, field names taken from json tags. Unknown JSON fields
// never reach validation because payloads decode into typed structs.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is one violated constraint, addressed by json field name.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is the full set of violations for a payload. It implements error so
// use cases and handlers can pass it through normal error returns.
type Errors []FieldError

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(e))
	for _, fe := range e {
		fields = append(fields, fe.Field)
	}
	return "validation failed: " + strings.Join(fields, ", ")
}

var (
	pincodeRe = regexp.MustCompile(`^\d{6}$`)
	mobileRe  = regexp.MustCompile(`^\+?[\d\s\-()]+$`)
)

// Validator validates request structs. Construct once and inject; it is safe
// for concurrent use.
type Validator struct {
	v *validator.Validate
}

// New builds the validator with the application's custom rules registered.
func New() *Validator {
	v := validator.New()

	// Report json names, not Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Indian postal code: exactly six digits.
	_ = v.RegisterValidation("pincode", func(fl validator.FieldLevel) bool {
		return pincodeRe.MatchString(fl.Field().String())
	})

	// Phone number: optional +, then digits/spaces/hyphens/parens, 10-15 chars.
	_ = v.RegisterValidation("mobile", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return len(s) >= 10 && len(s) <= 15 && mobileRe.MatchString(s)
	})

	return &Validator{v: v}
}

// Struct validates a request struct and returns every violation at once,
// or nil when the payload is valid.
func (val *Validator) Struct(s interface{}) Errors {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Errors{{Field: "request", Message: "invalid payload"}}
	}
	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.Join(strings.Fields(fe.Param()), ", "))
	case "url":
		return fmt.Sprintf("%s must be a valid URL", fe.Field())
	case "pincode":
		return fmt.Sprintf("%s must be exactly 6 digits", fe.Field())
	case "mobile":
		return fmt.Sprintf("%s must be a valid phone number (10-15 characters)", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
