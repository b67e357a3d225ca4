package posttoken

import (
	"reflect"
	"strings"
	"testing"
)

func TestHighlight(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Span
	}{
		{
			name: "Mixed spans",
			text: "hi @bob #tag",
			want: []Span{
				{Text: "hi"},
				{Text: "@bob", Mention: true},
				{Text: "#tag", Hashtag: true},
			},
		},
		{
			name: "Empty text",
			text: "",
			want: []Span{{Text: ""}},
		},
		{
			name: "Double space keeps empty span",
			text: "a  #b",
			want: []Span{{Text: "a"}, {Text: ""}, {Text: "#b", Hashtag: true}},
		},
		{
			name: "Marker inside word is plain",
			text: "mail@host c#",
			want: []Span{{Text: "mail@host"}, {Text: "c#"}},
		},
		{
			name: "Newline stays inside span",
			text: "x\n#y",
			want: []Span{{Text: "x\n#y"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Highlight(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Highlight(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestHighlight_RoundTrip(t *testing.T) {
	texts := []string{"", " ", "  lead", "trail  ", "#a @b c", "😀 #emoji @üser"}
	for _, text := range texts {
		if got := Join(Highlight(text)); got != text {
			t.Errorf("Join(Highlight(%q)) = %q", text, got)
		}
	}
}

func TestSpanKind(t *testing.T) {
	if (Span{Text: "#a", Hashtag: true}).Kind() != Hashtag {
		t.Error("hashtag span should report Hashtag")
	}
	if (Span{Text: "@a", Mention: true}).Kind() != Mention {
		t.Error("mention span should report Mention")
	}
	if (Span{Text: "a"}).Kind() != Plain {
		t.Error("plain span should report Plain")
	}
}

func TestRender(t *testing.T) {
	spans := Highlight("hi @bob #tag")
	got := Render(spans, func(s Span) string {
		if s.Kind() == Plain {
			return s.Text
		}
		return "[" + strings.ToUpper(s.Text) + "]"
	})
	if got != "hi [@BOB] [#TAG]" {
		t.Errorf("Render = %q, want %q", got, "hi [@BOB] [#TAG]")
	}
}
