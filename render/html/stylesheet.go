package html

import (
	"fmt"
	"strings"

	"resumec/common"
	"resumec/layout"
	"resumec/style"
)

// buildStylesheet generates the preview CSS from the resolved style. The
// page is a fixed A4 footprint at 96 DPI, so what the browser shows is what
// pagination computed.
func buildStylesheet(r style.Resolved) string {
	var sb strings.Builder

	pad := fmt.Sprintf("%gmm", r.PagePadding)
	if !r.Template.UniformPadding() {
		pad = fmt.Sprintf("%gmm", style.CurveContentPaddingMm)
	}

	fmt.Fprintf(&sb, `body {
  margin: 0;
  background: #EEEEEE;
  font-family: %s;
  font-size: %gpt;
  line-height: %g;
  color: #%s;
}
.page {
  position: relative;
  width: %dpx;
  height: %dpx;
  margin: 16px auto;
  padding: %s;
  box-sizing: border-box;
  background: #FFFFFF;
  box-shadow: 0 1px 4px rgba(0, 0, 0, 0.25);
  overflow: hidden;
}
`, r.CSSFontStack, r.BaseSize, r.LineHeight, r.TextColor, style.PageWidthPx, style.PageHeightPx, pad)

	fmt.Fprintf(&sb, `.header { overflow: hidden; margin-bottom: %gpt; }
.avatar { float: right; max-width: 100pt; max-height: %gpt; margin-left: 20pt; }
h1.name { font-size: %gpt; color: #%s; margin: 0 0 %gpt 0; }
p.meta { font-size: %gpt; color: #%s; margin: 0 0 %gpt 0; }
`, r.BaseSize*1.5, layout.AvatarMaxHeightPt,
		r.HeadingSize, r.NameColor(), r.BaseSize*0.4,
		r.MetaSize, r.SubtitleColor, layout.MetaLineGapPt)

	if r.Template == common.TemplateKindClassic {
		sb.WriteString(".header, h2.section-title { text-align: center; }\n")
	}
	if r.UppercaseTitles() {
		fmt.Fprintf(&sb, ".header { border-bottom: %gpt solid #%s; padding-bottom: %gpt; }\n",
			layout.RulePt, r.TextColor, layout.MinimalRulePadPt)
	}

	fmt.Fprintf(&sb, `h2.section-title {
  font-size: %gpt;
  color: #%s;
  margin: %gpt 0 %gpt 0;
  padding-bottom: %gpt;
`, r.SectionTitleSize, r.SectionTitleColor(), r.BaseSize*1.4, r.BaseSize*0.6, layout.SectionTitlePadPt)
	if ruleColor, ok := r.SectionRuleColor(); ok {
		fmt.Fprintf(&sb, "  border-bottom: %gpt solid #%s;\n", layout.RulePt, ruleColor)
	}
	if r.UppercaseTitles() {
		sb.WriteString("  text-transform: uppercase;\n")
	}
	sb.WriteString("}\n")

	fmt.Fprintf(&sb, `.band {
  background: #%s;
  color: #FFFFFF;
  height: %gpx;
  margin: -%s -%s %gpx -%s;
  padding: 0 %s;
  display: flex;
  flex-direction: column;
  justify-content: center;
}
.band h1 { font-size: %gpt; margin: 0; color: #FFFFFF; }
.band p { font-size: %gpt; margin: 0; color: #FFFFFF; }
`, r.ThemeColor, layout.BandHeightPx,
		pad, pad, layout.BandSpacingAfterPx, pad, pad,
		r.HeadingSize, r.MetaSize)

	fmt.Fprintf(&sb, `.summary, .item-body { margin: 0 0 %gpt 0; white-space: pre-wrap; }
.item-row { display: flex; justify-content: space-between; align-items: baseline; }
.item-title { flex: 0 0 75%%; font-size: %gpt; font-weight: bold; }
.item-date { font-size: %gpt; color: #%s; text-align: right; }
.item-subtitle { margin: 0 0 %gpt 0; color: #%s; white-space: pre-wrap; }
.accent { color: #%s; }
`, r.ParagraphSpacing,
		r.ItemTitleSize,
		r.DateSize, r.SubtitleColor,
		layout.SubtitleGapPt, r.SubtitleColor,
		r.ThemeColor)

	fmt.Fprintf(&sb, `@media print {
  body { background: none; }
  .page { margin: 0; box-shadow: none; page-break-after: always; }
}
`)

	return sb.String()
}
