package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-facing labels
var FieldLabels = map[string]string{
	// Auth fields
	"Username": "Username",
	"Email":    "Email",
	"Password": "Password",
	"Role":     "Account Type",

	// Profile fields
	"Headline":       "Headline",
	"Skills":         "Skills",
	"Education":      "Education",
	"WorkExperience": "Work Experience",
	"Links":          "Links",
	"Phone":          "Phone Number",

	// Job posting fields
	"Title":          "Job Title",
	"Description":    "Description",
	"RequiredSkills": "Required Skills",
	"Location":       "Location",
	"SalaryMin":      "Minimum Salary",
	"SalaryMax":      "Maximum Salary",

	// Message fields
	"RecipientID": "Recipient",
	"Subject":     "Subject",
	"Body":        "Message Body",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var messages []string

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}

	return messages
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: This field is required", label)
	case "email":
		return fmt.Sprintf("%s: Must be a valid email address", label)
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: Must be at least %s characters", label, param)
		}
		return fmt.Sprintf("%s: Must be at least %s", label, param)
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: Must be at most %s characters", label, param)
		}
		return fmt.Sprintf("%s: Must be at most %s", label, param)
	case "oneof":
		return fmt.Sprintf("%s: Must be one of: %s", label, strings.ReplaceAll(param, " ", ", "))
	case "gtefield":
		return fmt.Sprintf("%s: Must not be less than %s", label, getFieldLabel(param))
	case "valid_phone":
		return fmt.Sprintf("%s: Must be a valid phone number", label)
	case "valid_username":
		return fmt.Sprintf("%s: Must be 3-150 characters using letters, digits, dots, underscores or hyphens", label)
	default:
		return fmt.Sprintf("%s: Invalid value", label)
	}
}

func getFieldLabel(field string) string {
	if label, ok := FieldLabels[field]; ok {
		return label
	}
	return field
}
