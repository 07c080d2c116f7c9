package richtext

import (
	"testing"
)

func TestParse_PlainText(t *testing.T) {
	runs := Parse("hello world")
	if len(runs) != 1 {
		t.Fatalf("Parse() runs = %d, want 1", len(runs))
	}
	if runs[0].Text != "hello world" || runs[0].Bold || runs[0].Italic || runs[0].Colored {
		t.Errorf("Parse() = %+v, want plain run", runs[0])
	}
}

func TestParse_Empty(t *testing.T) {
	if runs := Parse(""); runs != nil {
		t.Errorf("Parse(\"\") = %v, want nil", runs)
	}
}

func TestParse_Toggles(t *testing.T) {
	runs := Parse("a<b>b</b><i>c</i><c>d</c>")
	want := []Run{
		{Text: "a"},
		{Text: "b", Bold: true},
		{Text: "c", Italic: true},
		{Text: "d", Colored: true},
	}
	if len(runs) != len(want) {
		t.Fatalf("Parse() runs = %d, want %d", len(runs), len(want))
	}
	for i := range want {
		if runs[i] != want[i] {
			t.Errorf("Parse() run[%d] = %+v, want %+v", i, runs[i], want[i])
		}
	}
}

func TestParse_Nested(t *testing.T) {
	runs := Parse("<b>bold <i>both</i> bold</b>")
	want := []Run{
		{Text: "bold ", Bold: true},
		{Text: "both", Bold: true, Italic: true},
		{Text: " bold", Bold: true},
	}
	if len(runs) != len(want) {
		t.Fatalf("Parse() runs = %d, want %d", len(runs), len(want))
	}
	for i := range want {
		if runs[i] != want[i] {
			t.Errorf("Parse() run[%d] = %+v, want %+v", i, runs[i], want[i])
		}
	}
}

// Closing tags are independent toggles, not a stack. Out of order closers
// desynchronize state exactly like the editing surface does.
func TestParse_OutOfOrderClosers(t *testing.T) {
	runs := Parse("<b><i>x</b>y</i>z")
	want := []Run{
		{Text: "x", Bold: true, Italic: true},
		{Text: "y", Italic: true},
		{Text: "z"},
	}
	if len(runs) != len(want) {
		t.Fatalf("Parse() runs = %d, want %d", len(runs), len(want))
	}
	for i := range want {
		if runs[i] != want[i] {
			t.Errorf("Parse() run[%d] = %+v, want %+v", i, runs[i], want[i])
		}
	}
}

func TestParse_UnclosedTag(t *testing.T) {
	runs := Parse("a<b>rest")
	want := []Run{
		{Text: "a"},
		{Text: "rest", Bold: true},
	}
	if len(runs) != len(want) {
		t.Fatalf("Parse() runs = %d, want %d", len(runs), len(want))
	}
	for i := range want {
		if runs[i] != want[i] {
			t.Errorf("Parse() run[%d] = %+v, want %+v", i, runs[i], want[i])
		}
	}
}

func TestParse_StrayCloser(t *testing.T) {
	// closing a tag that was never opened is a no-op on state
	runs := Parse("a</b>b")
	want := []Run{
		{Text: "a"},
		{Text: "b"},
	}
	if len(runs) != len(want) {
		t.Fatalf("Parse() runs = %d, want %d", len(runs), len(want))
	}
	for i := range want {
		if runs[i] != want[i] {
			t.Errorf("Parse() run[%d] = %+v, want %+v", i, runs[i], want[i])
		}
	}
}

func TestParse_UnknownTagsKeptAsText(t *testing.T) {
	runs := Parse("a<u>b</u>c")
	if len(runs) != 1 {
		t.Fatalf("Parse() runs = %d, want 1", len(runs))
	}
	if runs[0].Text != "a<u>b</u>c" {
		t.Errorf("Parse() text = %q, unknown tags must stay verbatim", runs[0].Text)
	}
}

func TestParse_AdjacentTagsDropEmptySegments(t *testing.T) {
	runs := Parse("<b></b><i>x</i>")
	if len(runs) != 1 {
		t.Fatalf("Parse() runs = %d, want 1", len(runs))
	}
	if runs[0].Text != "x" || !runs[0].Italic || runs[0].Bold {
		t.Errorf("Parse() = %+v, want italic x", runs[0])
	}
}

func TestParseWith_BaseState(t *testing.T) {
	runs := ParseWith("a<b>b</b>", Base{Bold: true})
	// base bold applies to everything, </b> clears it
	want := []Run{
		{Text: "a", Bold: true},
		{Text: "b", Bold: true},
	}
	if len(runs) != len(want) {
		t.Fatalf("ParseWith() runs = %d, want %d", len(runs), len(want))
	}
	for i := range want {
		if runs[i] != want[i] {
			t.Errorf("ParseWith() run[%d] = %+v, want %+v", i, runs[i], want[i])
		}
	}
}

func TestConcat_RoundTrip(t *testing.T) {
	inputs := []string{
		"plain",
		"a<b>b</b>c",
		"<b><i><c>all</c></i></b>",
		"multi\nline <b>with\nbreaks</b>",
		"<b>unclosed",
		"dangling</i> closer",
	}
	for _, in := range inputs {
		if got, want := Concat(Parse(in)), Plain(in); got != want {
			t.Errorf("Concat(Parse(%q)) = %q, want %q", in, got, want)
		}
	}
}

func TestPlain(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"<b>x</b>", "x"},
		{"a<i>b</i>c<c>d</c>", "abcd"},
		{"<u>kept</u>", "<u>kept</u>"},
	}
	for _, tt := range tests {
		if got := Plain(tt.in); got != tt.want {
			t.Errorf("Plain(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
