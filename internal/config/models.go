package config

import "strings"

// Registry represents the entire user configuration file.
// This stores the suggestion data fed to the input screens plus limits and
// application preferences.
type Registry struct {
	Version     int          `yaml:"version"`
	Suggestions *Suggestions `yaml:"suggestions,omitempty"`
	Limits      *Limits      `yaml:"limits,omitempty"`
	Preferences *Preferences `yaml:"preferences,omitempty"`
}

// Suggestions holds the candidate lists offered while typing.
// Hashtags and mentions are stored without their leading marker.
type Suggestions struct {
	Hashtags    []string `yaml:"hashtags"`
	Mentions    []string `yaml:"mentions"`
	SearchItems []string `yaml:"search_items"`
	Recent      []string `yaml:"recent,omitempty"`
	Popular     []string `yaml:"popular,omitempty"`
}

// Limits holds the character limits of the free-text fields.
// Zero means "use the built-in default".
type Limits struct {
	Post        int `yaml:"post"`
	ProfileBio  int `yaml:"profile_bio"`
	SettingsBio int `yaml:"settings_bio"`
	ReviewTitle int `yaml:"review_title"`
	ReviewBody  int `yaml:"review_body"`
}

// Preferences represents application-wide user preferences.
type Preferences struct {
	AltScreen     bool   `yaml:"alt_screen"`               // Run the TUI in the alternate screen buffer
	DefaultScreen string `yaml:"default_screen,omitempty"` // Screen to open on start (e.g. "social")
	MaxRecent     int    `yaml:"max_recent"`               // How many recent searches to remember
}

// Default character limits.
const (
	DefaultPostLimit        = 280
	DefaultProfileBioLimit  = 160
	DefaultSettingsBioLimit = 200
	DefaultReviewTitleLimit = 50
	DefaultReviewBodyLimit  = 500
	DefaultMaxRecent        = 5
)

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version:     1,
		Suggestions: defaultSuggestions(),
		Limits:      defaultLimits(),
		Preferences: defaultPreferences(),
	}
}

func defaultSuggestions() *Suggestions {
	return &Suggestions{
		Hashtags: []string{
			"TextInput", "Compose", "Android", "iOS", "Mobile",
			"Development", "UX", "Design", "Programming",
		},
		Mentions: []string{
			"alice_dev", "bob_designer", "charlie_pm",
			"diana_engineer", "evan_mobile", "fiona_ux",
		},
		SearchItems: []string{
			"Text Input Best Practices",
			"iOS Keyboard Handling",
			"Android Text Input",
			"Form Design Patterns",
			"Password Field Security",
			"Search Bar Implementation",
			"Chat Input Features",
			"Text Field Validation",
			"Autocomplete Patterns",
			"Copy and Paste Handling",
		},
		Recent:  []string{"Text input patterns", "iOS keyboard types", "Material 3 text fields"},
		Popular: []string{"Form validation", "Password fields", "Autofill support"},
	}
}

func defaultLimits() *Limits {
	return &Limits{
		Post:        DefaultPostLimit,
		ProfileBio:  DefaultProfileBioLimit,
		SettingsBio: DefaultSettingsBioLimit,
		ReviewTitle: DefaultReviewTitleLimit,
		ReviewBody:  DefaultReviewBodyLimit,
	}
}

func defaultPreferences() *Preferences {
	return &Preferences{
		AltScreen: true,
		MaxRecent: DefaultMaxRecent,
	}
}

// applyDefaults fills sections missing from a loaded file.
func (r *Registry) applyDefaults() {
	if r.Suggestions == nil {
		r.Suggestions = defaultSuggestions()
	}
	if r.Limits == nil {
		r.Limits = defaultLimits()
	}
	if r.Preferences == nil {
		r.Preferences = defaultPreferences()
	}

	l := r.Limits
	l.Post = orDefault(l.Post, DefaultPostLimit)
	l.ProfileBio = orDefault(l.ProfileBio, DefaultProfileBioLimit)
	l.SettingsBio = orDefault(l.SettingsBio, DefaultSettingsBioLimit)
	l.ReviewTitle = orDefault(l.ReviewTitle, DefaultReviewTitleLimit)
	l.ReviewBody = orDefault(l.ReviewBody, DefaultReviewBodyLimit)
	r.Preferences.MaxRecent = orDefault(r.Preferences.MaxRecent, DefaultMaxRecent)
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

// AddHashtag adds a hashtag suggestion, ignoring a leading '#' and duplicates
// (case-insensitive). Returns false if nothing was added.
func (r *Registry) AddHashtag(tag string) bool {
	return addUnique(&r.ensureSuggestions().Hashtags, strings.TrimPrefix(strings.TrimSpace(tag), "#"))
}

// AddMention adds a mention suggestion, ignoring a leading '@' and duplicates
// (case-insensitive). Returns false if nothing was added.
func (r *Registry) AddMention(user string) bool {
	return addUnique(&r.ensureSuggestions().Mentions, strings.TrimPrefix(strings.TrimSpace(user), "@"))
}

// RecordSearch pushes query to the front of the recent list, moving an
// existing entry instead of duplicating it, and trims the list to MaxRecent.
func (r *Registry) RecordSearch(query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		return
	}

	s := r.ensureSuggestions()
	recent := []string{query}
	for _, q := range s.Recent {
		if !strings.EqualFold(q, query) {
			recent = append(recent, q)
		}
	}

	max := DefaultMaxRecent
	if r.Preferences != nil && r.Preferences.MaxRecent > 0 {
		max = r.Preferences.MaxRecent
	}
	if len(recent) > max {
		recent = recent[:max]
	}
	s.Recent = recent
}

func (r *Registry) ensureSuggestions() *Suggestions {
	if r.Suggestions == nil {
		r.Suggestions = &Suggestions{}
	}
	return r.Suggestions
}

func addUnique(list *[]string, item string) bool {
	if item == "" {
		return false
	}
	for _, existing := range *list {
		if strings.EqualFold(existing, item) {
			return false
		}
	}
	*list = append(*list, item)
	return true
}

// ScreenNames lists the values accepted by Preferences.DefaultScreen.
var ScreenNames = []string{
	"home", "purchase", "profile", "chat", "search",
	"review", "settings", "calendar", "social", "copypaste",
}
