package cardformat

import (
	"strconv"
	"strings"
)

const (
	// MaxExpiryDigits is the number of digits an expiry field accepts (MMYY).
	MaxExpiryDigits = 4
	// ExpiryLength is the length of a fully typed expiry date ("MM/YY").
	ExpiryLength = 5
)

// FormatExpiry strips non-digits and inserts a slash after the month.
// Two digits or fewer are returned unchanged; digits past the fourth are dropped.
func FormatExpiry(raw string) string {
	digits := Digits(raw)
	if len(digits) <= 2 {
		return digits
	}

	year := digits[2:]
	if len(year) > 2 {
		year = year[:2]
	}
	return digits[:2] + "/" + year
}

// AcceptExpiryInput formats raw and reports whether an expiry field should
// take the edit. Edits carrying more than MaxExpiryDigits digits are rejected.
func AcceptExpiryInput(raw string) (string, bool) {
	if len(Digits(raw)) > MaxExpiryDigits {
		return "", false
	}
	return FormatExpiry(raw), true
}

// IsValidExpiry reports whether formatted is an MM/YY pair with month in
// [1,12] and year in [0,99]. Parts that fail to parse make the date invalid.
func IsValidExpiry(formatted string) bool {
	parts := strings.Split(formatted, "/")
	if len(parts) != 2 {
		return false
	}

	month, err := strconv.Atoi(parts[0])
	if err != nil {
		return false
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return false
	}

	return month >= 1 && month <= 12 && year >= 0 && year <= 99
}

// ShouldFlagExpiry reports whether an expiry field should show its error
// state. Partially typed dates are never flagged.
func ShouldFlagExpiry(formatted string) bool {
	return len(formatted) == ExpiryLength && !IsValidExpiry(formatted)
}
