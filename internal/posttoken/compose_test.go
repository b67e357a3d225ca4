package posttoken

import (
	"strings"
	"testing"
)

func TestInsertSuggestion(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		cursor      int
		word        string
		replacement string
		marker      string
		wantText    string
		wantCursor  int
	}{
		{
			name: "Hashtag at end", text: "hello #and", cursor: 10,
			word: "#and", replacement: "Android", marker: "#",
			wantText: "hello #Android", wantCursor: 14,
		},
		{
			name: "Mention mid-text keeps tail", text: "hey @al how are you", cursor: 7,
			word: "@al", replacement: "alice_dev", marker: "@",
			wantText: "hey @alice_dev how are you", wantCursor: 14,
		},
		{
			name: "Replaces occurrence before cursor only", text: "#de x #de", cursor: 3,
			word: "#de", replacement: "Design", marker: "#",
			wantText: "#Design x #de", wantCursor: 7,
		},
		{
			name: "Replaces last occurrence before cursor", text: "#de #de tail", cursor: 7,
			word: "#de", replacement: "Design", marker: "#",
			wantText: "#de #Design tail", wantCursor: 11,
		},
		{
			name: "Word missing leaves text", text: "plain text", cursor: 5,
			word: "#zz", replacement: "UX", marker: "#",
			wantText: "plain text", wantCursor: 5,
		},
		{
			name: "Cursor beyond text clamped", text: "go #mo", cursor: 50,
			word: "#mo", replacement: "Mobile", marker: "#",
			wantText: "go #Mobile", wantCursor: 10,
		},
		{
			name: "Multi-byte text before word", text: "naïve @bo", cursor: 9,
			word: "@bo", replacement: "bob_designer", marker: "@",
			wantText: "naïve @bob_designer", wantCursor: 19,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InsertSuggestion(tt.text, tt.cursor, tt.word, tt.replacement, tt.marker)
			if got.Text != tt.wantText {
				t.Errorf("InsertSuggestion text = %q, want %q", got.Text, tt.wantText)
			}
			if got.Cursor != tt.wantCursor {
				t.Errorf("InsertSuggestion cursor = %d, want %d", got.Cursor, tt.wantCursor)
			}
		})
	}
}

func TestInsertSuggestion_FollowsCurrentWord(t *testing.T) {
	text := "shipping #comp today"
	cursor := 14

	word := CurrentWord(text, cursor)
	if word.Text != "#comp" || word.Kind != Hashtag {
		t.Fatalf("CurrentWord = %+v, want #comp hashtag", word)
	}

	matches := FilterSuggestions(testHashtags, word)
	if len(matches) != 1 || matches[0] != "Compose" {
		t.Fatalf("FilterSuggestions = %v, want [Compose]", matches)
	}

	edit := InsertSuggestion(text, cursor, word.Text, matches[0], word.Kind.Marker())
	if edit.Text != "shipping #Compose today" {
		t.Errorf("text = %q", edit.Text)
	}
	if edit.Cursor != len("shipping #Compose") {
		t.Errorf("cursor = %d, want %d", edit.Cursor, len("shipping #Compose"))
	}
}

func TestAppendMarker(t *testing.T) {
	edit := AppendMarker("hello ", HashtagMarker)
	if edit.Text != "hello #" || edit.Cursor != 7 {
		t.Errorf("AppendMarker = %+v, want {hello # 7}", edit)
	}

	edit = AppendMarker("", MentionMarker)
	if edit.Text != "@" || edit.Cursor != 1 {
		t.Errorf("AppendMarker = %+v, want {@ 1}", edit)
	}
}

func TestCounter(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		limit     int
		wantUsed  int
		wantLimit int
		wantWarn  bool
		wantOver  bool
		wantLabel string
	}{
		{"Empty", "", 0, 0, MaxPostLength, false, false, "0/280"},
		{"At warning threshold", strings.Repeat("a", 252), 0, 252, 280, false, false, "252/280"},
		{"Past warning threshold", strings.Repeat("a", 253), 0, 253, 280, true, false, "253/280"},
		{"At limit", strings.Repeat("a", 280), 0, 280, 280, true, false, "280/280"},
		{"Over limit", strings.Repeat("a", 281), 0, 281, 280, true, true, "281/280"},
		{"Custom limit", "abcdef", 5, 6, 5, true, true, "6/5"},
		{"Runes not bytes", "😀😀", 0, 2, 280, false, false, "2/280"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Counter(tt.text, tt.limit)
			if c.Used != tt.wantUsed || c.Limit != tt.wantLimit {
				t.Errorf("Counter = %+v, want used %d limit %d", c, tt.wantUsed, tt.wantLimit)
			}
			if c.Warn() != tt.wantWarn {
				t.Errorf("Warn() = %v, want %v", c.Warn(), tt.wantWarn)
			}
			if c.Over() != tt.wantOver {
				t.Errorf("Over() = %v, want %v", c.Over(), tt.wantOver)
			}
			if c.Label() != tt.wantLabel {
				t.Errorf("Label() = %q, want %q", c.Label(), tt.wantLabel)
			}
		})
	}
}

func TestAcceptEditAndCanPost(t *testing.T) {
	if !AcceptEdit(strings.Repeat("x", 280), MaxPostLength) {
		t.Error("280 chars should be accepted")
	}
	if AcceptEdit(strings.Repeat("x", 281), MaxPostLength) {
		t.Error("281 chars should be rejected")
	}
	if CanPost("   ", MaxPostLength) {
		t.Error("blank post should not be postable")
	}
	if !CanPost("hello #go", MaxPostLength) {
		t.Error("short post should be postable")
	}
}

func BenchmarkCurrentWord(b *testing.B) {
	text := strings.Repeat("word ", 50) + "#tag"
	for i := 0; i < b.N; i++ {
		CurrentWord(text, len(text))
	}
}
