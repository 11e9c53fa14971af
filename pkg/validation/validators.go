package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	// E164-like phone: optional +, digits 7-15 length
	phoneRegex = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

	// Handle: letters, digits, dots, underscores, hyphens
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]{3,150}$`)
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_phone", ValidPhone)
	_ = v.RegisterValidation("valid_username", ValidUsername)
}

// ValidPhone validates a phone number structure. Empty is allowed; use
// required alongside when the field is mandatory.
func ValidPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return phoneRegex.MatchString(val)
}

// ValidUsername validates the account handle format.
func ValidUsername(fl validator.FieldLevel) bool {
	return usernameRegex.MatchString(fl.Field().String())
}
