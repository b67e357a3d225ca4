package search

import (
	"reflect"
	"testing"
)

var catalogue = []string{
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
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"Blank query", "   ", nil},
		{"Empty query", "", nil},
		{"Case-insensitive substring", "INPUT", []string{"Text Input Best Practices", "Android Text Input", "Chat Input Features"}},
		{"Mid-word match", "word", []string{"Password Field Security"}},
		{"Order preserved", "patterns", []string{"Form Design Patterns", "Autocomplete Patterns"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(catalogue, tt.query)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Filter(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestResults(t *testing.T) {
	got := Results(catalogue, "handling")
	want := []Suggestion{
		{Text: "iOS Keyboard Handling", Type: Result},
		{Text: "Copy and Paste Handling", Type: Result},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Results = %+v, want %+v", got, want)
	}
}

func TestIdle(t *testing.T) {
	got := Idle([]string{"Text input patterns"}, []string{"Form validation", "Autofill support"})
	want := []Suggestion{
		{Text: "Text input patterns", Type: Recent},
		{Text: "Form validation", Type: Popular},
		{Text: "Autofill support", Type: Popular},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Idle = %+v, want %+v", got, want)
	}
}

func TestClosest(t *testing.T) {
	got := Closest(catalogue, "pasword", 1)
	if len(got) != 1 || got[0] != "Password Field Security" {
		t.Errorf("Closest(pasword) = %v, want [Password Field Security]", got)
	}

	got = Closest(catalogue, "keybord", 2)
	if len(got) != 2 || got[0] != "iOS Keyboard Handling" {
		t.Errorf("Closest(keybord) = %v, want iOS Keyboard Handling first", got)
	}

	if got := Closest(catalogue, "", 3); got != nil {
		t.Errorf("Closest with blank query = %v, want nil", got)
	}
	if got := Closest(nil, "x", 3); got != nil {
		t.Errorf("Closest with no items = %v, want nil", got)
	}
	if got := Closest([]string{"a"}, "a", 5); len(got) != 1 {
		t.Errorf("Closest should cap n at len(items), got %v", got)
	}
}

func TestSuggestionTypeString(t *testing.T) {
	if Recent.String() != "Recent Searches" || Popular.String() != "Popular Searches" || Result.String() != "Results" {
		t.Error("unexpected section headings")
	}
}
