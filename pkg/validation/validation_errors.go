package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps json field names to display labels where the default
// spacing of the camelCase name reads badly.
var FieldLabels = map[string]string{
	"firstName":            "First name",
	"lastName":             "Last name",
	"fullName":             "Full name",
	"resumeUrl":            "Resume URL",
	"coverLetter":          "Cover letter",
	"postedBy":             "Posted by",
	"salaryRange":          "Salary range",
	"applicationDeadline":  "Application deadline",
	"educationalDocuments": "Educational documents",
	"documentType":         "Document type",
	"linkedIn":             "LinkedIn",
	"url":                  "URL",
	"userId":               "User ID",
	"jobId":                "Job ID",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

// Message joins the formatted errors into one line.
func Message(err error) string {
	return strings.Join(FormatValidationErrors(err), "; ")
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required", "required_if":
		return fmt.Sprintf("%s is required", label)

	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", label, param)
		}
		return fmt.Sprintf("%s must be at least %s", label, param)

	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", label, param)
		}
		return fmt.Sprintf("%s must be at most %s", label, param)

	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.ReplaceAll(param, " ", ", "))

	case "email":
		return fmt.Sprintf("%s must be a valid email address", label)

	case "url":
		return fmt.Sprintf("%s must be a valid URL", label)

	case "valid_name":
		return fmt.Sprintf("%s may only contain letters, spaces and common punctuation", label)

	case "valid_phone":
		return fmt.Sprintf("%s must be a valid phone number (7-15 digits, optional +)", label)

	case "no_emoji":
		return fmt.Sprintf("%s must not contain emoji or symbols", label)

	case "job_status":
		return fmt.Sprintf("%s must be one of: Active, Closed, Draft", label)

	case "job_type":
		return fmt.Sprintf("%s must be one of: full-time, part-time, contract, internship", label)

	case "application_status":
		return fmt.Sprintf("%s must be one of: Pending, Reviewed, Interview, Accepted, Rejected", label)

	case "document_type":
		return fmt.Sprintf("%s must be one of: 10th, 12th, diploma, bachelors, masters, phd, other", label)

	default:
		return fmt.Sprintf("%s is invalid (%s)", label, e.Tag())
	}
}

func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase turns "companyLogo" into "Company logo".
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		switch {
		case i == 0:
			result.WriteString(strings.ToUpper(string(r)))
		case r >= 'A' && r <= 'Z':
			result.WriteRune(' ')
			result.WriteString(strings.ToLower(string(r)))
		default:
			result.WriteRune(r)
		}
	}
	return result.String()
}
