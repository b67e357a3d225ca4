package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/muurk/inputshowcase/internal/posttoken"
	"github.com/muurk/inputshowcase/internal/search"
)

func TestResultRender(t *testing.T) {
	tests := []struct {
		name   string
		result *Result
		want   []string
	}{
		{
			name:   "Success with ordered details",
			result: NewSuccessResult("Formatted", Detail{"Result", "4111 1111"}, Detail{"Digits", "8"}),
			want:   []string{"OK", "Formatted", "4111 1111", "Digits"},
		},
		{
			name:   "Failure lists errors and hints",
			result: NewFailureResult("Invalid expiry", []error{errors.New("month out of range")}, "use MM/YY"),
			want:   []string{"INVALID", "Invalid expiry", "month out of range", "Hints:", "use MM/YY"},
		},
		{
			name:   "Warning",
			result: NewWarningResult("Checksum", Detail{"Luhn", "failed"}),
			want:   []string{"WARNING", "Checksum", "failed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.result.SetWidth(80).Render()
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("render missing %q:\n%s", w, out)
				}
			}
		})
	}
}

func TestResultDetailOrder(t *testing.T) {
	r := NewSuccessResult("t").AddDetail("First", "1").AddDetail("Second", "2").SetWidth(80)
	out := r.Render()
	if strings.Index(out, "First") > strings.Index(out, "Second") {
		t.Error("details should render in insertion order")
	}
}

func TestHeaderRender(t *testing.T) {
	out := NewHeader("format card", "inputshowcase format card", Detail{"Input", "4111"}).SetWidth(70).Render()
	for _, w := range []string{"FORMAT CARD", "inputshowcase format card", "Input:", "4111"} {
		if !strings.Contains(out, w) {
			t.Errorf("header missing %q:\n%s", w, out)
		}
	}
}

func TestSpanTable(t *testing.T) {
	out := strings.ToLower(SpanTable(posttoken.Highlight("Hi  #go @bob")))
	for _, w := range []string{"hi", "(empty)", "#go", "hashtag", "@bob", "mention", "total"} {
		if !strings.Contains(out, w) {
			t.Errorf("table missing %q:\n%s", w, out)
		}
	}
}

func TestSuggestionTable(t *testing.T) {
	word := posttoken.Word{Text: "#an", Kind: posttoken.Hashtag}
	out := SuggestionTable(word, []string{"Android"})
	if !strings.Contains(out, "#Android") {
		t.Errorf("suggestion should carry marker:\n%s", out)
	}
}

func TestSearchTable(t *testing.T) {
	out := SearchTable(search.Idle([]string{"recent one"}, []string{"popular one"}))
	for _, w := range []string{"Recent Searches", "recent one", "Popular Searches", "popular one"} {
		if !strings.Contains(out, w) {
			t.Errorf("table missing %q:\n%s", w, out)
		}
	}
}

func TestListTable(t *testing.T) {
	out := ListTable("did you mean", []string{" Password Field Security ", "Keyboard Types"})
	for _, want := range []string{"Password Field Security", "Keyboard Types"} {
		if !strings.Contains(out, want) {
			t.Errorf("ListTable() missing %q:\n%s", want, out)
		}
	}
}

func TestRenderHighlightedKeepsText(t *testing.T) {
	out := RenderHighlighted("hello #go @bob")
	for _, w := range []string{"hello", "#go", "@bob"} {
		if !strings.Contains(out, w) {
			t.Errorf("highlighted output missing %q: %q", w, out)
		}
	}
}

func TestPrinterPlain(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf).SetPlain(true)

	p.PrintHeader("ignored", "ignored")
	p.PrintValue("Formatted", "12/34")
	p.PrintFailure("Invalid", []error{errors.New("bad")})

	want := "12/34\ninvalid: Invalid\n  bad\n"
	if buf.String() != want {
		t.Errorf("plain output = %q, want %q", buf.String(), want)
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"yes", true},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var out bytes.Buffer
			got := Confirm(strings.NewReader(tt.input), &out, "overwrite", "Continue?")
			if got != tt.want {
				t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if !strings.Contains(out.String(), "Continue? [y/N]") {
				t.Errorf("prompt missing: %q", out.String())
			}
		})
	}
}
