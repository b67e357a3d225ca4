package contactformat

import (
	"strings"
)

// PhoneMaskLength is the length of a complete masked phone number, "(123) 456-7890".
const PhoneMaskLength = 14

const maxPhoneDigits = 10

// digits returns the digit-only projection of s.
func digits(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// FormatPhone masks the digits of raw as a North American phone number.
//
//	"123"        -> "123"
//	"12345"      -> "(123) 45"
//	"1234567890" -> "(123) 456-7890"
//
// Digits beyond the tenth are dropped.
func FormatPhone(raw string) string {
	d := digits(raw)
	switch {
	case len(d) <= 3:
		return d
	case len(d) <= 6:
		return "(" + d[:3] + ") " + d[3:]
	default:
		if len(d) > maxPhoneDigits {
			d = d[:maxPhoneDigits]
		}
		return "(" + d[:3] + ") " + d[3:6] + "-" + d[6:]
	}
}

// AcceptPhoneInput formats raw and reports whether a phone field should take
// the edit. Formatted values longer than PhoneMaskLength are rejected.
func AcceptPhoneInput(raw string) (string, bool) {
	formatted := FormatPhone(raw)
	if len(formatted) > PhoneMaskLength {
		return "", false
	}
	return formatted, true
}

// IsCompletePhone reports whether a masked phone value may be submitted.
// An empty value is allowed because the field is optional.
func IsCompletePhone(formatted string) bool {
	return formatted == "" || len(formatted) == PhoneMaskLength
}
