package content

import (
	"resumec/utils/debug"
)

// String returns a readable tree of the prepared content. It exists solely
// for manual inspection during debugging.
func (c *Content) String() string {
	if c == nil {
		return "<nil Content>"
	}

	tw := debug.NewTreeWriter()

	tw.Line(0, "Source: %s", c.SrcName)
	tw.Line(0, "Format: %s", c.OutputFormat)
	tw.Line(0, "Template: %s font[%s] base[%.1fpt] theme[%s]",
		c.Style.Template, c.Style.FontName, c.Style.BaseSize, c.Style.ThemeColor)
	tw.Line(0, "Budget: %.1fpx, %d blocks on %d pages",
		c.Layout.Budget, len(c.Seq), len(c.Pages))

	for p, page := range c.Pages {
		tw.Line(0, "Page[%d]: %d blocks", p, len(page))
		for i, b := range page {
			idx := c.Layout.PageStarts[p] + i
			tw.Line(1, "Block[%q] kind=%s height=%.1f", b.ID, b.Kind, c.Layout.Heights[idx])
			if b.Name != "" {
				tw.TextBlock(2, "Name", b.Name)
			}
			if b.Title != "" {
				tw.TextBlock(2, "Title", b.Title)
			}
			if b.Date != "" {
				tw.TextBlock(2, "Date", b.Date)
			}
			if b.Subtitle != "" {
				tw.TextBlock(2, "Subtitle", b.Subtitle)
			}
			if b.Body != "" {
				tw.TextBlock(2, "Body", b.Body)
			}
			for _, line := range b.MetaLines {
				tw.TextBlock(2, "Meta", line)
			}
		}
	}

	return tw.String()
}
