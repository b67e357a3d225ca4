package forms

import (
	"fmt"
	"unicode/utf8"
)

// Character limits for the free-text fields.
const (
	ProfileBioLimit  = 160
	SettingsBioLimit = 200
	ReviewTitleLimit = 50
	ReviewBodyLimit  = 500
)

// LengthLimit caps a free-text field at Max characters.
// The field itself keeps accepting input; the limit only drives the counter
// and the submit gate.
type LengthLimit struct {
	Max int
}

// Remaining returns how many characters are left; negative once exceeded.
func (l LengthLimit) Remaining(s string) int {
	return l.Max - utf8.RuneCountInString(s)
}

// Exceeded reports whether s is longer than Max characters.
func (l LengthLimit) Exceeded(s string) bool {
	return l.Remaining(s) < 0
}

// Label returns the supporting text shown under the field, e.g. "12/160 characters".
func (l LengthLimit) Label(s string) string {
	return fmt.Sprintf("%d/%d characters", utf8.RuneCountInString(s), l.Max)
}

// check returns a length error for field when s exceeds the limit.
func (l LengthLimit) check(field, s string) error {
	if l.Exceeded(s) {
		return NewLengthError(field, fmt.Sprintf("must be at most %d characters (%d over)", l.Max, -l.Remaining(s)))
	}
	return nil
}

// limitOr returns a LengthLimit of max, or def when max is not positive.
func limitOr(max, def int) LengthLimit {
	if max <= 0 {
		max = def
	}
	return LengthLimit{Max: max}
}
