// Package importer builds a resume document skeleton from unstructured
// plain text. Extraction is best effort, whatever the patterns miss is
// simply left for the user to fill in.
package importer

import (
	"regexp"
	"strings"

	"resumec/resume"
)

// summaryMarker prefixes imported summary text so the user knows it needs
// manual cleanup.
const (
	summaryMarker  = "【从文档导入的文本摘要，请手动整理】"
	summaryTrailer = "...(更多内容请查看原文档)"

	// how many lines after the name go into the summary candidate
	summaryLines = 5
)

var (
	emailRe = regexp.MustCompile(`([a-zA-Z0-9._-]+@[a-zA-Z0-9._-]+\.[a-zA-Z0-9._-]+)`)
	phoneRe = regexp.MustCompile(`(1\d{10})`)
)

// Import extracts name, email and phone from text and stuffs the leading
// lines into the summary. Failed matches leave fields empty, never error.
func Import(text string) *resume.Document {
	doc := &resume.Document{}

	var lines []string
	for _, l := range strings.Split(text, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}

	if len(lines) > 0 {
		doc.Profile.Name = lines[0]

		end := min(1+summaryLines, len(lines))
		doc.Profile.Summary = summaryMarker + "\n" + strings.Join(lines[1:end], "\n") + summaryTrailer
	}

	if m := emailRe.FindString(text); m != "" {
		doc.Profile.Email = m
	}
	if m := phoneRe.FindString(text); m != "" {
		doc.Profile.Phone = m
	}

	doc.Normalize()
	return doc
}
