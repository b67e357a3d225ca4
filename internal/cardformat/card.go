package cardformat

import (
	"strings"
)

const (
	// MaxCardDigits is the number of digits a card number field accepts.
	MaxCardDigits = 16
	// MaxCardLength is the formatted length of a full card number (16 digits + 3 spaces).
	MaxCardLength = 19
	// MaxCVVDigits is the maximum length of a security code.
	MaxCVVDigits = 4
	// MinCVVDigits is the minimum length of a security code.
	MinCVVDigits = 3

	cardGroupSize = 4
)

// Digits returns the digit-only projection of s.
// Only ASCII 0-9 are kept; every other rune is discarded.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// FormatCardNumber strips non-digits, groups the digits in blocks of four
// joined by single spaces and truncates the result to MaxCardLength characters.
func FormatCardNumber(raw string) string {
	digits := Digits(raw)
	if digits == "" {
		return ""
	}

	var b strings.Builder
	for i := 0; i < len(digits); i += cardGroupSize {
		if i > 0 {
			b.WriteByte(' ')
		}
		end := i + cardGroupSize
		if end > len(digits) {
			end = len(digits)
		}
		b.WriteString(digits[i:end])
		if b.Len() >= MaxCardLength {
			break
		}
	}

	formatted := b.String()
	if len(formatted) > MaxCardLength {
		formatted = formatted[:MaxCardLength]
	}
	return formatted
}

// AcceptCardInput formats raw and reports whether a card number field
// should take the edit. Edits carrying more than MaxCardDigits digits are
// rejected so the previous value stays in place.
func AcceptCardInput(raw string) (string, bool) {
	if len(Digits(raw)) > MaxCardDigits {
		return "", false
	}
	return FormatCardNumber(raw), true
}

// IsCompleteCardNumber reports whether formatted carries exactly MaxCardDigits digits.
func IsCompleteCardNumber(formatted string) bool {
	return len(Digits(formatted)) == MaxCardDigits
}

// PassesLuhn reports whether the digits of number satisfy the mod-10 checksum.
// Numbers with fewer than 13 or more than 19 digits never pass.
func PassesLuhn(number string) bool {
	digits := Digits(number)
	if len(digits) < 13 || len(digits) > 19 {
		return false
	}

	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// TruncateCVV keeps at most MaxCVVDigits characters of raw.
func TruncateCVV(raw string) string {
	return takeRunes(raw, MaxCVVDigits)
}

// IsValidCVV reports whether cvv is long enough to submit.
func IsValidCVV(cvv string) bool {
	return len([]rune(cvv)) >= MinCVVDigits
}

// takeRunes returns the first n runes of s.
func takeRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
