package style

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var upper = cases.Upper(language.Und)

// TitleText returns the section title text the way the template displays it.
func (r Resolved) TitleText(s string) string {
	if r.UppercaseTitles() {
		return upper.String(s)
	}
	return s
}
