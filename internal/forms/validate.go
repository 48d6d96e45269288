package forms

import (
	"regexp"
	"strings"
)

// Field names shared by the form controllers and their callers.
const (
	FieldName        = "name"
	FieldEmail       = "email"
	FieldPhoneNumber = "phoneNumber"
	FieldPhone       = "phone"
	FieldPassword    = "password"
	FieldDepartment  = "department"
)

const (
	customerPhoneMinDigits = 10
	customerPhoneMaxDigits = 15
	agentPhoneDigits       = 10
	passwordMinLength      = 6
)

// agentPhonePrefix is the fixed country code implied by the agent phone
// field. The editable value holds only the local part.
const agentPhonePrefix = "+1"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// digitsOnly strips every non-digit rune from s.
func digitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// clampDigits strips non-digits and drops anything past max digits.
func clampDigits(s string, max int) string {
	digits := digitsOnly(s)
	if len(digits) > max {
		return digits[:max]
	}
	return digits
}

// localPhonePart strips the fixed country prefix, if present, and every
// non-digit. Used when seeding the agent phone field from stored values
// like "+15551234567".
func localPhonePart(s string) string {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimPrefix(trimmed, agentPhonePrefix)
	return digitsOnly(trimmed)
}

func validateRequired(value, message string) string {
	if strings.TrimSpace(value) == "" {
		return message
	}
	return ""
}

func validateEmail(value string) string {
	if strings.TrimSpace(value) == "" {
		return "Email is required"
	}
	if !emailPattern.MatchString(value) {
		return "Enter a valid email address"
	}
	return ""
}

func validateCustomerPhone(value string) string {
	digits := digitsOnly(value)
	if digits == "" {
		return "Phone number is required"
	}
	if len(digits) < customerPhoneMinDigits || len(digits) > customerPhoneMaxDigits {
		return "Phone number must be between 10 and 15 digits"
	}
	return ""
}

func validateAgentPhone(value string) string {
	digits := localPhonePart(value)
	if digits == "" {
		return "Phone number is required"
	}
	if len(digits) != agentPhoneDigits {
		return "Phone number must be 10 digits"
	}
	return ""
}

// validatePassword enforces presence and minimum length, except in edit mode
// where a blank value means "keep the existing credential".
func validatePassword(value string, isEdit bool) string {
	if isEdit {
		return ""
	}
	if value == "" {
		return "Password is required"
	}
	if len(value) < passwordMinLength {
		return "Password must be at least 6 characters"
	}
	return ""
}
