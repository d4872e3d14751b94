// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxPasswordBytes is the longest password bcrypt can hash without truncation.
const MaxPasswordBytes = 72

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidatePassword checks that a password is present and fits bcrypt's input limit.
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password is required")
	}
	if len(password) > MaxPasswordBytes {
		return fmt.Errorf("password must not exceed %d bytes", MaxPasswordBytes)
	}
	return nil
}

// ValidateEmail checks basic email format
func ValidateEmail(email string) error {
	if len(email) > 254 {
		return fmt.Errorf("email must not exceed 254 characters")
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}
	return nil
}

// ValidateRequired rejects blank values.
func ValidateRequired(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

// ValidateMaxLength rejects values longer than max characters.
func ValidateMaxLength(field, value string, max int) error {
	if utf8.RuneCountInString(value) > max {
		return fmt.Errorf("%s must not exceed %d characters", field, max)
	}
	return nil
}

// Field pairs a field name with its value and column limit.
type Field struct {
	Name     string
	Value    string
	Max      int
	Required bool
}

// ValidateFields runs the required and length checks over fields and
// returns the first failure.
func ValidateFields(fields ...Field) error {
	for _, f := range fields {
		if f.Required {
			if err := ValidateRequired(f.Name, f.Value); err != nil {
				return err
			}
		}
		if f.Max > 0 {
			if err := ValidateMaxLength(f.Name, f.Value, f.Max); err != nil {
				return err
			}
		}
	}
	return nil
}
