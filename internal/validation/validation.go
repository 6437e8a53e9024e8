package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9 \-()]{6,20}$`)
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateEmail checks if an email address is valid
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ValidationError{Field: "email", Message: "email is required"}
	}
	if !emailRegex.MatchString(email) {
		return ValidationError{Field: "email", Message: "invalid email format"}
	}
	return nil
}

// ValidatePassword checks if a password meets requirements
func ValidatePassword(password string) error {
	if password == "" {
		return ValidationError{Field: "password", Message: "password is required"}
	}
	if len(password) < 8 {
		return ValidationError{Field: "password", Message: "password must be at least 8 characters"}
	}
	return nil
}

// ValidateFullName checks if a parent's name is valid
func ValidateFullName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ValidationError{Field: "fullName", Message: "full name is required"}
	}
	if len(name) < 2 {
		return ValidationError{Field: "fullName", Message: "full name must be at least 2 characters"}
	}
	return nil
}

// ValidatePhone checks if a phone number is plausible
func ValidatePhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ValidationError{Field: "phoneNumber", Message: "phone number is required"}
	}
	if !phoneRegex.MatchString(phone) {
		return ValidationError{Field: "phoneNumber", Message: "invalid phone number"}
	}
	return nil
}

// ValidateRequired checks that a free-text field is non-empty
func ValidateRequired(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return ValidationError{Field: field, Message: field + " is required"}
	}
	return nil
}
