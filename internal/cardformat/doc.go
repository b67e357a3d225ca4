// Package cardformat formats and validates payment card fields as they are typed.
//
// Every function in this package is pure and total: any string input, including
// empty strings, strings without digits, or strings far longer than a card
// number, produces a well-defined result. Nothing here returns an error or
// panics. Malformed input yields false or a truncated/empty string.
//
// # Card Number
//
// Card numbers are grouped in blocks of four digits separated by one space
// and capped at 19 characters (16 digits plus 3 separators):
//
//	cardformat.FormatCardNumber("4111-1111 1111 1111") // "4111 1111 1111 1111"
//	cardformat.FormatCardNumber("41111")               // "4111 1"
//
// # Expiry Date
//
// Expiry dates use the MM/YY layout. The slash is inserted once a third digit
// arrives and anything past the fourth digit is dropped:
//
//	cardformat.FormatExpiry("12")     // "12"
//	cardformat.FormatExpiry("123456") // "12/34"
//	cardformat.IsValidExpiry("13/25") // false (month out of range)
//
// Years are checked as a raw two-digit value in [0,99]. There is no century
// inference and no comparison against the current date.
//
// # Input Gates
//
// The Accept* helpers mirror how an input field consumes them: an edit is
// accepted only while the digit projection stays within the field's capacity.
//
//	value, ok := cardformat.AcceptCardInput(next)
//	if ok {
//	    field.SetValue(value)
//	}
//
// # Thread Safety
//
// The package holds no state. All functions are safe for concurrent use.
package cardformat
