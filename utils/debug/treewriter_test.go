package debug

import (
	"strings"
	"testing"
)

func TestTreeWriter_Line(t *testing.T) {
	tests := []struct {
		name   string
		depth  int
		format string
		args   []any
		want   string
	}{
		{"no depth", 0, "Document", nil, "Document\n"},
		{"depth 1", 1, "Profile", nil, "  Profile\n"},
		{"depth 2", 2, "Section", nil, "    Section\n"},
		{"formatted", 1, "blocks: %d", []any{5}, "  blocks: 5\n"},
		{"multiple args", 0, "%s = %d", []any{"pages", 2}, "pages = 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.Line(tt.depth, tt.format, tt.args...)
			if got := tw.String(); got != tt.want {
				t.Errorf("Line() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_TextBlock(t *testing.T) {
	tests := []struct {
		name  string
		depth int
		label string
		value string
		want  string
	}{
		{"empty value", 0, "summary", "", "summary: \n"},
		{"plain value", 0, "name", "张伟", "name: \"张伟\"\n"},
		{"indented", 1, "title", "后端工程师", "  title: \"后端工程师\"\n"},
		{"with quotes", 0, "body", "said \"hi\"", "body: \"said \\\"hi\\\"\"\n"},
		{"with newline", 0, "body", "line1\nline2", "body: \"line1\\nline2\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.TextBlock(tt.depth, tt.label, tt.value)
			if got := tw.String(); got != tt.want {
				t.Errorf("TextBlock() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncodeText(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"hello", `"hello"`},
		{`say "hi"`, `"say \"hi\""`},
		{"line1\nline2", `"line1\nline2"`},
		{"col1\tcol2", `"col1\tcol2"`},
		{`path\to\file`, `"path\\to\\file"`},
	}

	for _, tt := range tests {
		if got := encodeText(tt.input); got != tt.want {
			t.Errorf("encodeText(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTreeWriter_DocumentDump(t *testing.T) {
	// the shape content debug dumps take
	tw := NewTreeWriter()
	tw.Line(0, "document")
	tw.TextBlock(1, "name", "张伟")
	tw.Line(1, "sections")
	tw.Line(2, "section id=%s", "education")
	tw.TextBlock(3, "title", "教育背景")
	tw.Line(2, "section id=%s", "experience")

	result := tw.String()
	for _, want := range []string{
		"document\n",
		"  name: \"张伟\"\n",
		"    section id=education\n",
		"      title: \"教育背景\"\n",
	} {
		if !strings.Contains(result, want) {
			t.Errorf("dump missing %q:\n%s", want, result)
		}
	}
}
