// Package richtext tokenizes the inline mini markup used in description
// fields. Three paired tags are recognized: <b> bold, <i> italic and <c>
// theme colored. State is tracked as three independent toggles, not a tag
// stack: closing tags out of order silently desynchronize the state. That
// mirrors the editing surface exactly and is kept on purpose.
package richtext

import (
	"regexp"
	"strings"
)

var tagRe = regexp.MustCompile(`</?(?:b|i|c)>`)

// Run is a maximal stretch of text with uniform styling.
type Run struct {
	Text    string
	Bold    bool
	Italic  bool
	Colored bool
}

// Base is the caller supplied starting toggle state, used when the
// surrounding block is already bold or italic (e.g. subtitles).
type Base struct {
	Bold   bool
	Italic bool
}

// Parse tokenizes text with default base state.
func Parse(text string) []Run {
	return ParseWith(text, Base{})
}

// ParseWith tokenizes text into styled runs. Empty segments between adjacent
// tags are dropped. Concatenating the run texts reproduces the input with
// all tags removed.
func ParseWith(text string, base Base) []Run {
	if text == "" {
		return nil
	}

	var (
		runs    []Run
		bold    = base.Bold
		italic  = base.Italic
		colored bool
	)

	emit := func(segment string) {
		if segment == "" {
			return
		}
		runs = append(runs, Run{Text: segment, Bold: bold, Italic: italic, Colored: colored})
	}

	pos := 0
	for _, loc := range tagRe.FindAllStringIndex(text, -1) {
		emit(text[pos:loc[0]])
		switch text[loc[0]:loc[1]] {
		case "<b>":
			bold = true
		case "</b>":
			bold = false
		case "<i>":
			italic = true
		case "</i>":
			italic = false
		case "<c>":
			colored = true
		case "</c>":
			colored = false
		}
		pos = loc[1]
	}
	emit(text[pos:])
	return runs
}

// Plain returns text with all markup tags removed.
func Plain(text string) string {
	return tagRe.ReplaceAllString(text, "")
}

// Concat joins the text of all runs.
func Concat(runs []Run) string {
	var sb strings.Builder
	for _, r := range runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}
