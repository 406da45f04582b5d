package services

import (
	"errors"
	"net/mail"
	"strings"
	"unicode/utf8"
)

var ErrAuthCredentialsInvalid = errors.New("auth credentials invalid")

const maxDisplayNameLength = 80

// NormalizeAuthEmail lowercases a bare address. Display-name forms such as
// "Ana <ana@example.com>" are rejected and yield "".
func NormalizeAuthEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return ""
	}
	parsed, err := mail.ParseAddress(email)
	if err != nil || parsed.Address != email {
		return ""
	}
	return email
}

func NormalizeCredentialsInput(emailRaw string, passwordRaw string) (string, string, error) {
	email := NormalizeAuthEmail(emailRaw)
	password := strings.TrimSpace(passwordRaw)
	if email == "" || password == "" {
		return "", "", ErrAuthCredentialsInvalid
	}
	return email, password, nil
}

// NormalizeDisplayName trims and caps the name at maxDisplayNameLength runes.
func NormalizeDisplayName(raw string) string {
	name := strings.TrimSpace(raw)
	if utf8.RuneCountInString(name) <= maxDisplayNameLength {
		return name
	}
	return strings.TrimSpace(string([]rune(name)[:maxDisplayNameLength]))
}
