package tui

import (
	"strconv"
	"strings"

	"github.com/muurk/inputshowcase/internal/cardformat"
	"github.com/muurk/inputshowcase/internal/contactformat"
	"github.com/muurk/inputshowcase/internal/forms"
)

func truncateWith(fn func(string) string) func(string) (string, bool) {
	return func(raw string) (string, bool) { return fn(raw), true }
}

func counterHint(limit int) func(string) Hint {
	l := forms.LengthLimit{Max: limit}
	return func(v string) Hint {
		if l.Exceeded(v) {
			return Hint{Text: l.Label(v), Tone: ToneError}
		}
		return Hint{Text: l.Label(v)}
	}
}

// formatHint shows text in error tone once a non-empty value fails ok
func formatHint(text string, ok func(string) bool) func(string) Hint {
	return func(v string) Hint {
		if v != "" && !ok(v) {
			return Hint{Text: text, Tone: ToneError}
		}
		return Hint{}
	}
}

// PurchaseForm is the checkout screen: shipping address then payment card.
func PurchaseForm() FormSpec {
	return FormSpec{
		Title:          "Purchase",
		Subtitle:       "Payment and shipping information",
		SubmitLabel:    "Place Order",
		SuccessMessage: "Order placed",
		Fields: []FieldSpec{
			{Label: "Full Name", Placeholder: "Jane Appleseed"},
			{Label: "Street Address", Placeholder: "1 Infinite Loop"},
			{Label: "City", Placeholder: "Cupertino"},
			{Label: "State", Placeholder: "CA", Accept: truncateWith(contactformat.TruncateState)},
			{Label: "ZIP Code", Placeholder: "95014", Accept: truncateWith(contactformat.TruncateZip)},
			{
				Label:       "Card Number",
				Placeholder: "1234 5678 9012 3456",
				Accept:      cardformat.AcceptCardInput,
				Hint: func(v string) Hint {
					if cardformat.IsCompleteCardNumber(v) && !cardformat.PassesLuhn(v) {
						return Hint{Text: "Card number failed checksum", Tone: ToneWarning}
					}
					return Hint{}
				},
			},
			{
				Label:       "Expiry Date",
				Placeholder: "MM/YY",
				Accept:      cardformat.AcceptExpiryInput,
				Hint: func(v string) Hint {
					if cardformat.ShouldFlagExpiry(v) {
						return Hint{Text: "Invalid expiry date", Tone: ToneError}
					}
					return Hint{}
				},
			},
			{
				Label:       "CVV",
				Placeholder: "123",
				Password:    true,
				Accept: func(raw string) (string, bool) {
					return cardformat.TruncateCVV(cardformat.Digits(raw)), true
				},
			},
		},
		Validate: func(v map[string]string) []error {
			return forms.ValidatePurchase(forms.Purchase{
				Name:       v["Full Name"],
				Street:     v["Street Address"],
				City:       v["City"],
				State:      v["State"],
				Zip:        v["ZIP Code"],
				CardNumber: v["Card Number"],
				Expiry:     v["Expiry Date"],
				CVV:        v["CVV"],
			})
		},
	}
}

// ProfileForm is the create-profile screen.
func ProfileForm(bioLimit int) FormSpec {
	if bioLimit <= 0 {
		bioLimit = forms.ProfileBioLimit
	}
	return FormSpec{
		Title:          "Create Profile",
		Subtitle:       "Multi-field data entry form",
		SubmitLabel:    "Create Profile",
		SuccessMessage: "Profile created",
		Fields: []FieldSpec{
			{Label: "Full Name", Placeholder: "Jane Appleseed"},
			{
				Label:       "Username",
				Placeholder: "jane_a",
				Hint:        formatHint("3-20 characters: letters, numbers, underscore", contactformat.IsValidUsername),
			},
			{Label: "Location", Placeholder: "City, Country"},
			{Label: "Occupation", Placeholder: "Engineer"},
			{Label: "Bio", Placeholder: "Tell us about yourself", Hint: counterHint(bioLimit)},
			{Label: "Interests", Placeholder: "comma separated"},
		},
		Validate: func(v map[string]string) []error {
			return forms.ValidateProfile(forms.Profile{
				FullName:   v["Full Name"],
				Username:   v["Username"],
				Bio:        v["Bio"],
				Location:   v["Location"],
				Occupation: v["Occupation"],
				Interests:  v["Interests"],
				BioLimit:   bioLimit,
			})
		},
	}
}

// acceptRating keeps the last typed digit when it is a valid star count
func acceptRating(raw string) (string, bool) {
	digits := cardformat.Digits(raw)
	if digits == "" {
		return "", true
	}
	last := digits[len(digits)-1:]
	if last < "1" || last > "5" {
		return "", false
	}
	return last, true
}

// Stars renders rating as five filled or empty stars.
func Stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}

func ratingOf(v string) int {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

// ReviewForm is the product review screen.
func ReviewForm(titleLimit, bodyLimit int) FormSpec {
	if titleLimit <= 0 {
		titleLimit = forms.ReviewTitleLimit
	}
	if bodyLimit <= 0 {
		bodyLimit = forms.ReviewBodyLimit
	}
	return FormSpec{
		Title:          "Write a Review",
		Subtitle:       "Review and rating input",
		SubmitLabel:    "Submit Review",
		SuccessMessage: "Review submitted",
		Fields: []FieldSpec{
			{
				Label:       "Rating",
				Placeholder: "1-5",
				Accept:      acceptRating,
				Hint: func(v string) Hint {
					r := ratingOf(v)
					return Hint{Text: Stars(r) + "  " + forms.RatingLabel(r)}
				},
			},
			{Label: "Title", Placeholder: "Summarize your experience", Hint: counterHint(titleLimit)},
			{Label: "Review", Placeholder: "What did you like or dislike?", Hint: counterHint(bodyLimit)},
		},
		Validate: func(v map[string]string) []error {
			return forms.ValidateReview(forms.Review{
				Rating:     ratingOf(v["Rating"]),
				Title:      v["Title"],
				Body:       v["Review"],
				TitleLimit: titleLimit,
				BodyLimit:  bodyLimit,
			})
		},
	}
}

// SettingsForm is the account settings screen.
func SettingsForm(bioLimit int) FormSpec {
	if bioLimit <= 0 {
		bioLimit = forms.SettingsBioLimit
	}
	return FormSpec{
		Title:          "Settings",
		Subtitle:       "Profile editing fields",
		SubmitLabel:    "Save Changes",
		SuccessMessage: "Settings saved",
		Fields: []FieldSpec{
			{Label: "Display Name", Placeholder: "Jane"},
			{
				Label:       "Email",
				Placeholder: "jane@example.com",
				Hint:        formatHint("Invalid email format", contactformat.IsValidEmail),
			},
			{
				Label:       "Phone Number",
				Placeholder: "(123) 456-7890",
				Accept:      contactformat.AcceptPhoneInput,
				Hint:        formatHint("Please enter complete phone number", contactformat.IsCompletePhone),
			},
			{
				Label:       "Website",
				Placeholder: "https://example.com",
				Hint:        formatHint("Website should start with http:// or https://", contactformat.IsValidWebsite),
			},
			{Label: "Bio", Placeholder: "A few words about you", Hint: counterHint(bioLimit)},
		},
		Validate: func(v map[string]string) []error {
			return forms.ValidateSettings(forms.Settings{
				DisplayName: v["Display Name"],
				Email:       v["Email"],
				Phone:       v["Phone Number"],
				Website:     v["Website"],
				Bio:         v["Bio"],
				BioLimit:    bioLimit,
			})
		},
	}
}

// EventForm is the calendar event screen.
func EventForm() FormSpec {
	return FormSpec{
		Title:          "New Event",
		Subtitle:       "Event creation fields",
		SubmitLabel:    "Save Event",
		SuccessMessage: "Event saved",
		Fields: []FieldSpec{
			{Label: "Event Title", Placeholder: "Team sync"},
			{Label: "Location", Placeholder: "Room 1"},
			{Label: "Start Date", Placeholder: "MM/DD/YYYY", CharLimit: 10},
			{Label: "Start Time", Placeholder: "HH:MM", CharLimit: 5},
			{Label: "End Date", Placeholder: "MM/DD/YYYY", CharLimit: 10},
			{Label: "End Time", Placeholder: "HH:MM", CharLimit: 5},
			{Label: "Description", Placeholder: "Agenda, links, notes"},
		},
		Validate: func(v map[string]string) []error {
			return forms.ValidateEvent(forms.Event{
				Title:       v["Event Title"],
				Location:    v["Location"],
				Description: v["Description"],
				StartDate:   v["Start Date"],
				StartTime:   v["Start Time"],
				EndDate:     v["End Date"],
				EndTime:     v["End Time"],
			})
		},
	}
}
