package forms

import (
	"strings"
	"testing"
)

func validPurchase() Purchase {
	return Purchase{
		Name:       "Ada Lovelace",
		Street:     "12 Analytical Way",
		City:       "London",
		State:      "CA",
		Zip:        "94016",
		CardNumber: "4111 1111 1111 1111",
		Expiry:     "12/27",
		CVV:        "123",
	}
}

func TestValidatePurchase(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*Purchase)
		wantFields []string
		wantWarn   bool
	}{
		{"Valid form", func(p *Purchase) {}, nil, false},
		{"Blank name", func(p *Purchase) { p.Name = "   " }, []string{"Full Name"}, false},
		{"Short state", func(p *Purchase) { p.State = "C" }, []string{"State"}, false},
		{"Long zip", func(p *Purchase) { p.Zip = "940161" }, []string{"ZIP Code"}, false},
		{"Incomplete card", func(p *Purchase) { p.CardNumber = "4111 1111" }, []string{"Card Number"}, false},
		{"Luhn failure is a warning", func(p *Purchase) { p.CardNumber = "4111 1111 1111 1112" }, nil, true},
		{"Partial expiry", func(p *Purchase) { p.Expiry = "12/" }, []string{"Expiry Date"}, false},
		{"Bad month", func(p *Purchase) { p.Expiry = "13/27" }, []string{"Expiry Date"}, false},
		{"Short CVV", func(p *Purchase) { p.CVV = "12" }, []string{"CVV"}, false},
		{"Everything empty", func(p *Purchase) { *p = Purchase{} }, []string{
			"Full Name", "Street Address", "City", "State", "ZIP Code", "Card Number", "Expiry Date", "CVV",
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPurchase()
			tt.mutate(&p)

			warnings, critical := SeparateWarningsAndErrors(ValidatePurchase(p))

			if len(critical) != len(tt.wantFields) {
				t.Fatalf("got %d errors, want %d: %v", len(critical), len(tt.wantFields), critical)
			}
			for i, field := range tt.wantFields {
				if got := FieldOf(critical[i]); got != field {
					t.Errorf("error %d field = %q, want %q", i, got, field)
				}
			}
			if (len(warnings) > 0) != tt.wantWarn {
				t.Errorf("warnings = %v, wantWarn %v", warnings, tt.wantWarn)
			}
		})
	}
}

func TestValidateSettings(t *testing.T) {
	valid := Settings{
		DisplayName: "Ada",
		Email:       "ada@example.com",
		Phone:       "(123) 456-7890",
		Website:     "https://example.com",
		Bio:         "Mathematician",
	}

	if errs := ValidateSettings(valid); len(errs) != 0 {
		t.Fatalf("valid settings produced errors: %v", errs)
	}

	optional := Settings{DisplayName: "Ada"}
	if errs := ValidateSettings(optional); len(errs) != 0 {
		t.Errorf("empty optional fields should pass, got %v", errs)
	}

	tests := []struct {
		name   string
		mutate func(*Settings)
		field  string
	}{
		{"Missing display name", func(s *Settings) { s.DisplayName = "" }, "Display Name"},
		{"Bad email", func(s *Settings) { s.Email = "ada@" }, "Email"},
		{"Partial phone", func(s *Settings) { s.Phone = "(123) 45" }, "Phone Number"},
		{"Website without scheme", func(s *Settings) { s.Website = "example.com" }, "Website"},
		{"Bio too long", func(s *Settings) { s.Bio = strings.Repeat("x", SettingsBioLimit+1) }, "Bio"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.mutate(&s)
			errs := ValidateSettings(s)
			if len(errs) != 1 {
				t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
			}
			if FieldOf(errs[0]) != tt.field {
				t.Errorf("field = %q, want %q", FieldOf(errs[0]), tt.field)
			}
			if !IsValidationError(errs[0]) {
				t.Errorf("expected blocking error, got %v", errs[0])
			}
		})
	}
}

func TestValidateProfile(t *testing.T) {
	tests := []struct {
		name     string
		profile  Profile
		wantErrs int
		wantType ErrorType
	}{
		{"Valid", Profile{FullName: "Ada Lovelace", Username: "ada_l"}, 0, 0},
		{"Missing username", Profile{FullName: "Ada"}, 1, ErrTypeRequired},
		{"Username too short", Profile{FullName: "Ada", Username: "ad"}, 1, ErrTypeFormat},
		{"Username with dash", Profile{FullName: "Ada", Username: "ada-l"}, 1, ErrTypeFormat},
		{"Bio at limit", Profile{FullName: "Ada", Username: "ada", Bio: strings.Repeat("b", ProfileBioLimit)}, 0, 0},
		{"Bio over limit", Profile{FullName: "Ada", Username: "ada", Bio: strings.Repeat("b", ProfileBioLimit+1)}, 1, ErrTypeLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateProfile(tt.profile)
			if len(errs) != tt.wantErrs {
				t.Fatalf("got %d errors, want %d: %v", len(errs), tt.wantErrs, errs)
			}
			if tt.wantErrs > 0 {
				fe, ok := errs[0].(*FieldError)
				if !ok {
					t.Fatalf("expected *FieldError, got %T", errs[0])
				}
				if fe.Type != tt.wantType {
					t.Errorf("type = %v, want %v", fe.Type, tt.wantType)
				}
			}
		})
	}
}

func TestValidateReview(t *testing.T) {
	valid := Review{Rating: 4, Title: "Great", Body: "Works well"}
	if errs := ValidateReview(valid); len(errs) != 0 {
		t.Fatalf("valid review produced errors: %v", errs)
	}

	unrated := valid
	unrated.Rating = 0
	if errs := ErrorsFor(ValidateReview(unrated), "Rating"); len(errs) != 1 {
		t.Errorf("unrated review should report Rating, got %v", errs)
	}

	long := valid
	long.Title = strings.Repeat("t", ReviewTitleLimit+1)
	long.Body = strings.Repeat("r", ReviewBodyLimit+1)
	errs := ValidateReview(long)
	if len(ErrorsFor(errs, "Title")) != 1 || len(ErrorsFor(errs, "Review")) != 1 {
		t.Errorf("expected one Title and one Review error, got %v", errs)
	}

	blank := Review{Rating: 5}
	if errs := ValidateReview(blank); len(errs) != 2 {
		t.Errorf("blank title and body should give 2 errors, got %v", errs)
	}
}

func TestValidateEvent(t *testing.T) {
	valid := Event{Title: "Launch", StartDate: "10/16/2026", StartTime: "09:00", EndDate: "10/16/2026", EndTime: "10:00"}
	if errs := ValidateEvent(valid); len(errs) != 0 {
		t.Fatalf("valid event produced errors: %v", errs)
	}

	errs := ValidateEvent(Event{Location: "Room 1"})
	if len(errs) != 5 {
		t.Errorf("empty event should give 5 errors, got %d: %v", len(errs), errs)
	}
}

func TestLimitOverrides(t *testing.T) {
	if errs := ValidateSettings(Settings{DisplayName: "Ada", Bio: "12345", BioLimit: 4}); len(errs) != 1 {
		t.Errorf("settings bio over custom limit should fail, got %v", errs)
	}
	if errs := ValidateProfile(Profile{FullName: "Ada", Username: "ada", Bio: strings.Repeat("b", 300), BioLimit: 300}); len(errs) != 0 {
		t.Errorf("profile bio within custom limit should pass, got %v", errs)
	}
	r := Review{Rating: 3, Title: "abc", Body: "abcdef", TitleLimit: 2, BodyLimit: 5}
	if errs := ValidateReview(r); len(errs) != 2 {
		t.Errorf("review over custom limits should give 2 errors, got %v", errs)
	}
}

func TestRatingLabel(t *testing.T) {
	want := []string{"Tap to rate", "Poor", "Fair", "Good", "Very Good", "Excellent"}
	for rating, label := range want {
		if got := RatingLabel(rating); got != label {
			t.Errorf("RatingLabel(%d) = %q, want %q", rating, got, label)
		}
	}
}

func TestCanSubmit(t *testing.T) {
	if !CanSubmit(nil) {
		t.Error("no errors should allow submission")
	}
	if !CanSubmit([]error{NewWarning("Card Number", "checksum")}) {
		t.Error("warnings alone should allow submission")
	}
	if CanSubmit([]error{NewRequiredError("City")}) {
		t.Error("required error should block submission")
	}
}

func TestFormatValidationErrors(t *testing.T) {
	if got := FormatValidationErrors(nil); got != "No validation errors" {
		t.Errorf("empty = %q", got)
	}

	got := FormatValidationErrors([]error{NewRequiredError("City"), NewFormatError("Email", "invalid email format")})
	for _, want := range []string{"2 error(s)", "1. City: is required", "2. Email: invalid email format"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestLengthLimit(t *testing.T) {
	l := LengthLimit{Max: 5}
	if got := l.Label("héllo"); got != "5/5 characters" {
		t.Errorf("Label = %q", got)
	}
	if l.Exceeded("héllo") {
		t.Error("5 runes should not exceed 5")
	}
	if got := l.Remaining("héllo!"); got != -1 {
		t.Errorf("Remaining = %d, want -1", got)
	}
	if err := l.check("Bio", "abcdef"); err == nil || !strings.Contains(err.Error(), "1 over") {
		t.Errorf("check = %v", err)
	}
}
