package services

import (
	"errors"
	"unicode"
)

var ErrWeakPassword = errors.New("weak password")

// maxPasswordBytes matches the bcrypt input limit; anything longer would be
// silently truncated by the hash.
const maxPasswordBytes = 72

const minPasswordRunes = 8

// ValidatePasswordStrength requires at least one upper case letter, one
// lower case letter and one digit.
func ValidatePasswordStrength(password string) error {
	if len(password) > maxPasswordBytes {
		return ErrWeakPassword
	}
	if len([]rune(password)) < minPasswordRunes {
		return ErrWeakPassword
	}

	var hasUpper, hasLower, hasDigit bool
	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsDigit(char):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return ErrWeakPassword
	}
	return nil
}
