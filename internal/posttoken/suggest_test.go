package posttoken

import (
	"reflect"
	"testing"
)

var (
	testHashtags = []string{"TextInput", "Compose", "Android", "iOS", "Mobile", "Development", "UX", "Design", "Programming"}
	testMentions = []string{"alice_dev", "bob_designer", "charlie_pm", "diana_engineer", "evan_mobile", "fiona_ux"}
)

func TestFilterSuggestions(t *testing.T) {
	tests := []struct {
		name       string
		candidates []string
		word       Word
		want       []string
	}{
		{"Single letter hashtag", []string{"Android", "iOS"}, Word{"#A", Hashtag}, []string{"Android"}},
		{"Case-insensitive", testHashtags, Word{"#ios", Hashtag}, []string{"iOS"}},
		{"Order preserved", testHashtags, Word{"#d", Hashtag}, []string{"Development", "Design"}},
		{"Mention prefix", testMentions, Word{"@B", Mention}, []string{"bob_designer"}},
		{"No match", testHashtags, Word{"#zzz", Hashtag}, []string{}},
		{"Bare marker matches all", []string{"a", "b"}, Word{"#", Hashtag}, []string{"a", "b"}},
		{"Plain word keeps first char", []string{"ux", "xu"}, Word{"u", Plain}, []string{"ux"}},
		{"Empty candidates", nil, Word{"#a", Hashtag}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterSuggestions(tt.candidates, tt.word)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FilterSuggestions(%v, %+v) = %v, want %v", tt.candidates, tt.word, got, tt.want)
			}
		})
	}
}

func TestFilterSuggestions_DoesNotMutate(t *testing.T) {
	candidates := []string{"Compose", "Android", "Design"}
	snapshot := append([]string(nil), candidates...)

	FilterSuggestions(candidates, Word{"#a", Hashtag})

	if !reflect.DeepEqual(candidates, snapshot) {
		t.Errorf("candidates mutated: %v, want %v", candidates, snapshot)
	}
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		name string
		word Word
		want []string
	}{
		{"Hashtag uses hashtag list", Word{"#mo", Hashtag}, []string{"Mobile"}},
		{"Mention uses mention list", Word{"@ev", Mention}, []string{"evan_mobile"}},
		{"Bare marker shows nothing", Word{"#", Hashtag}, nil},
		{"Plain shows nothing", Word{"mo", Plain}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Suggest(tt.word, testHashtags, testMentions)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Suggest(%+v) = %v, want %v", tt.word, got, tt.want)
			}
		})
	}
}
