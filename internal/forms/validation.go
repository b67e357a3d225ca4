package forms

import (
	"fmt"
	"strings"

	"github.com/muurk/inputshowcase/internal/cardformat"
	"github.com/muurk/inputshowcase/internal/contactformat"
)

// Purchase holds the shipping and payment fields of the checkout screen.
type Purchase struct {
	Name       string
	Street     string
	City       string
	State      string
	Zip        string
	CardNumber string // formatted, e.g. "4111 1111 1111 1111"
	Expiry     string // formatted, e.g. "12/27"
	CVV        string
}

// Settings holds the account settings screen.
type Settings struct {
	DisplayName string
	Email       string
	Phone       string // masked, e.g. "(123) 456-7890"
	Website     string
	Bio         string
	BioLimit    int // 0 means SettingsBioLimit
}

// Profile holds the create-profile screen.
type Profile struct {
	FullName   string
	Username   string
	Bio        string
	Location   string
	Occupation string
	Interests  string
	BioLimit   int // 0 means ProfileBioLimit
}

// Review holds the product review screen.
type Review struct {
	Rating     int // 0 means not rated yet
	Title      string
	Body       string
	TitleLimit int // 0 means ReviewTitleLimit
	BodyLimit  int // 0 means ReviewBodyLimit
}

// Event holds the calendar event screen.
type Event struct {
	Title       string
	Location    string
	Description string
	StartDate   string
	StartTime   string
	EndDate     string
	EndTime     string
}

// ValidatePurchase validates the checkout form.
// Returns a slice of validation errors (empty if the form can be submitted).
// A card number failing the Luhn check is reported as a warning only.
func ValidatePurchase(p Purchase) []error {
	var errs []error

	errs = appendRequired(errs, "Full Name", p.Name)
	errs = appendRequired(errs, "Street Address", p.Street)
	errs = appendRequired(errs, "City", p.City)

	if len([]rune(p.State)) != contactformat.StateLength {
		errs = append(errs, NewLengthError("State", fmt.Sprintf("must be %d characters", contactformat.StateLength)))
	}
	if len([]rune(p.Zip)) != contactformat.ZipLength {
		errs = append(errs, NewLengthError("ZIP Code", fmt.Sprintf("must be %d characters", contactformat.ZipLength)))
	}

	if !cardformat.IsCompleteCardNumber(p.CardNumber) {
		errs = append(errs, NewLengthError("Card Number", fmt.Sprintf("must have %d digits", cardformat.MaxCardDigits)))
	} else if !cardformat.PassesLuhn(p.CardNumber) {
		errs = append(errs, NewWarning("Card Number", "checksum does not match, please double-check the number"))
	}

	switch {
	case len(p.Expiry) != cardformat.ExpiryLength:
		errs = append(errs, NewFormatError("Expiry Date", "use MM/YY"))
	case !cardformat.IsValidExpiry(p.Expiry):
		errs = append(errs, NewFormatError("Expiry Date", "invalid expiry date"))
	}

	if !cardformat.IsValidCVV(p.CVV) {
		errs = append(errs, NewLengthError("CVV", fmt.Sprintf("must be at least %d digits", cardformat.MinCVVDigits)))
	}

	return errs
}

// ValidateSettings validates the account settings form.
func ValidateSettings(s Settings) []error {
	var errs []error

	errs = appendRequired(errs, "Display Name", s.DisplayName)

	if !contactformat.IsValidEmail(s.Email) {
		errs = append(errs, NewFormatError("Email", "invalid email format"))
	}
	if !contactformat.IsCompletePhone(s.Phone) {
		errs = append(errs, NewFormatError("Phone Number", "please enter complete phone number"))
	}
	if !contactformat.IsValidWebsite(s.Website) {
		errs = append(errs, NewFormatError("Website", "website should start with http:// or https://"))
	}
	if err := limitOr(s.BioLimit, SettingsBioLimit).check("Bio", s.Bio); err != nil {
		errs = append(errs, err)
	}

	return errs
}

// ValidateProfile validates the create-profile form.
func ValidateProfile(p Profile) []error {
	var errs []error

	errs = appendRequired(errs, "Full Name", p.FullName)

	if strings.TrimSpace(p.Username) == "" {
		errs = append(errs, NewRequiredError("Username"))
	} else if !contactformat.IsValidUsername(p.Username) {
		errs = append(errs, NewFormatError("Username", "must be 3-20 characters (letters, numbers, underscore)"))
	}

	if err := limitOr(p.BioLimit, ProfileBioLimit).check("Bio", p.Bio); err != nil {
		errs = append(errs, err)
	}

	return errs
}

// ValidateReview validates the product review form.
func ValidateReview(r Review) []error {
	var errs []error

	if r.Rating < 1 || r.Rating > 5 {
		errs = append(errs, NewRequiredError("Rating"))
	}

	errs = appendRequired(errs, "Title", r.Title)
	if err := limitOr(r.TitleLimit, ReviewTitleLimit).check("Title", r.Title); err != nil {
		errs = append(errs, err)
	}

	errs = appendRequired(errs, "Review", r.Body)
	if err := limitOr(r.BodyLimit, ReviewBodyLimit).check("Review", r.Body); err != nil {
		errs = append(errs, err)
	}

	return errs
}

// ValidateEvent validates the calendar event form.
// Location and description are optional.
func ValidateEvent(e Event) []error {
	var errs []error

	errs = appendRequired(errs, "Event Title", e.Title)
	errs = appendRequired(errs, "Start Date", e.StartDate)
	errs = appendRequired(errs, "Start Time", e.StartTime)
	errs = appendRequired(errs, "End Date", e.EndDate)
	errs = appendRequired(errs, "End Time", e.EndTime)

	return errs
}

// RatingLabel returns the caption shown next to a star rating.
func RatingLabel(rating int) string {
	switch rating {
	case 0:
		return "Tap to rate"
	case 1:
		return "Poor"
	case 2:
		return "Fair"
	case 3:
		return "Good"
	case 4:
		return "Very Good"
	default:
		return "Excellent"
	}
}

// CanSubmit reports whether errs holds no blocking errors.
func CanSubmit(errs []error) bool {
	_, critical := SeparateWarningsAndErrors(errs)
	return len(critical) == 0
}

// FormatValidationErrors formats a slice of validation errors into a user-friendly message.
func FormatValidationErrors(errs []error) string {
	if len(errs) == 0 {
		return "No validation errors"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Form validation failed with %d error(s):\n", len(errs)))

	for i, err := range errs {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}

	return sb.String()
}

// SeparateWarningsAndErrors separates validation errors into warnings and errors.
// Warnings are advisory and never block submission.
func SeparateWarningsAndErrors(errs []error) (warnings []error, criticalErrors []error) {
	for _, err := range errs {
		if IsWarning(err) {
			warnings = append(warnings, err)
		} else {
			criticalErrors = append(criticalErrors, err)
		}
	}
	return warnings, criticalErrors
}

// ErrorsFor returns the errors in errs that belong to field.
func ErrorsFor(errs []error, field string) []error {
	var out []error
	for _, err := range errs {
		if FieldOf(err) == field {
			out = append(out, err)
		}
	}
	return out
}

func appendRequired(errs []error, field, value string) []error {
	if strings.TrimSpace(value) == "" {
		return append(errs, NewRequiredError(field))
	}
	return errs
}
