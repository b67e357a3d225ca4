package contactformat

import (
	"regexp"
	"strings"
)

var (
	emailRegex    = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,6}$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)
)

// Field caps used by the shipping form.
const (
	StateLength = 2
	ZipLength   = 5
)

// IsValidEmail reports whether raw looks like an email address.
// The empty string is valid since email is optional.
func IsValidEmail(raw string) bool {
	if raw == "" {
		return true
	}
	return emailRegex.MatchString(raw)
}

// IsValidWebsite reports whether raw is empty or starts with "http".
func IsValidWebsite(raw string) bool {
	return raw == "" || strings.HasPrefix(raw, "http")
}

// IsValidUsername reports whether s is 3-20 letters, digits or underscores.
func IsValidUsername(s string) bool {
	return usernameRegex.MatchString(s)
}

// TruncateState keeps the first StateLength characters of raw.
func TruncateState(raw string) string {
	return take(raw, StateLength)
}

// TruncateZip keeps the first ZipLength characters of raw.
func TruncateZip(raw string) string {
	return take(raw, ZipLength)
}

func take(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
