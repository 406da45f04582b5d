package services

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

const minPasswordRunes = 8

var ErrWeakPassword = errors.New("weak password")

// ValidatePasswordStrength requires at least eight characters mixing letters
// and digits.
func ValidatePasswordStrength(password string) error {
	if utf8.RuneCountInString(password) < minPasswordRunes ||
		!strings.ContainsFunc(password, unicode.IsLetter) ||
		!strings.ContainsFunc(password, unicode.IsDigit) {
		return ErrWeakPassword
	}
	return nil
}
