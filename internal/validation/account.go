// Package validation holds input validation rules shared by the HTTP layer
// and services.
package validation

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode"
)

const (
	minPasswordLen = 12
	maxPasswordLen = 128
	maxEmailLen    = 254
	minArtistName  = 2
	maxArtistName  = 50
)

// ValidatePassword enforces the account password policy: length bounds plus
// at least one upper, lower, digit, and special character.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLen {
		return fmt.Errorf("password must be at least %d characters", minPasswordLen)
	}
	if len(password) > maxPasswordLen {
		return fmt.Errorf("password must be at most %d characters", maxPasswordLen)
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit || !hasSpecial {
		return fmt.Errorf("password must contain an uppercase letter, a lowercase letter, a digit, and a special character")
	}
	return nil
}

// ValidateEmail checks RFC 5322 address format and length.
func ValidateEmail(email string) error {
	if len(email) > maxEmailLen {
		return fmt.Errorf("email must be at most %d characters", maxEmailLen)
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("invalid email address")
	}
	if strings.HasSuffix(email, ".") {
		return fmt.Errorf("invalid email address")
	}
	return nil
}

// ValidateArtistName enforces the stage name rules. Artist names are shown
// verbatim on the roster, so anything printable goes, within length bounds.
func ValidateArtistName(name string) error {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) < minArtistName {
		return fmt.Errorf("artist name must be at least %d characters", minArtistName)
	}
	if len(trimmed) > maxArtistName {
		return fmt.Errorf("artist name must be at most %d characters", maxArtistName)
	}
	for _, r := range trimmed {
		if !unicode.IsPrint(r) {
			return fmt.Errorf("artist name contains unprintable characters")
		}
	}
	return nil
}
