package layout

import (
	"resumec/blocks"
	"resumec/richtext"
	"resumec/style"
)

// Geometry constants of the preview, in the units the preview uses. The
// raster backend draws with the same values, so estimated heights and drawn
// heights never diverge.
const (
	MetaLineGapPt      = 2.0   // gap under each meta line
	SectionTitlePadPt  = 2.0   // padding under section title text
	SubtitleGapPt      = 2.0   // gap under item subtitle
	MinimalRulePadPt   = 12.0  // padding above the minimal template rule
	RulePt             = 1.0   // rule thickness
	AvatarMaxHeightPt  = 130.0 // header avatar cap
	AvatarColumnPt     = 120.0 // avatar column incl. its left gap
	BandHeightPx       = 128.0 // curve template decorative band
	BandSpacingAfterPx = 16.0
)

// BlockHeight estimates the rendered height of a block in CSS pixels,
// including its margins, at the content width of the resolved style.
func BlockHeight(b blocks.Block, r style.Resolved, m *Measurer) float64 {
	width := r.ContentWidthPx()
	lineH := func(sizePt float64) float64 {
		return style.PtToPx(sizePt) * r.LineHeight
	}

	switch b.Kind {
	case blocks.KindHeader:
		h := lineH(r.HeadingSize) + style.PtToPx(r.BaseSize*0.4)
		textWidth := width
		if b.ShowAvatar {
			textWidth -= style.PtToPx(AvatarColumnPt)
		}
		var meta float64
		for _, line := range b.MetaLines {
			n := m.LineCount(line, r.MetaSize, false, textWidth)
			meta += float64(n)*lineH(r.MetaSize) + style.PtToPx(MetaLineGapPt)
		}
		h += meta
		if b.ShowAvatar {
			if a := style.PtToPx(AvatarMaxHeightPt); a > h {
				h = a
			}
		}
		if r.UppercaseTitles() {
			// minimal rule under the meta area
			h += style.PtToPx(MinimalRulePadPt) + style.PtToPx(RulePt)
		}
		return h + style.PtToPx(r.BaseSize*1.5)

	case blocks.KindBand:
		return BandHeightPx + BandSpacingAfterPx

	case blocks.KindProfileGrid:
		var h float64
		for _, line := range b.MetaLines {
			n := m.LineCount(line, r.MetaSize, false, width)
			h += float64(n)*lineH(r.MetaSize) + style.PtToPx(MetaLineGapPt)
		}
		if b.ShowAvatar {
			if a := style.PtToPx(AvatarMaxHeightPt); a > h {
				h = a
			}
		}
		return h + style.PtToPx(r.BaseSize*1.5)

	case blocks.KindSectionTitle:
		n := m.LineCount(b.Title, r.SectionTitleSize, true, width)
		if n == 0 {
			n = 1
		}
		h := float64(n)*lineH(r.SectionTitleSize) + style.PtToPx(SectionTitlePadPt)
		if _, ruled := r.SectionRuleColor(); ruled {
			h += style.PtToPx(RulePt)
		}
		return h + style.PtToPx(r.BaseSize*1.4) + style.PtToPx(r.BaseSize*0.6)

	case blocks.KindSummary:
		body := richtext.Plain(b.Body)
		n := m.LineCount(body, r.BaseSize, false, width)
		return float64(n)*lineH(r.BaseSize) + style.PtToPx(r.ParagraphSpacing)

	case blocks.KindItem:
		// title and date share one row, date never wraps
		n := m.LineCount(b.Title, r.ItemTitleSize, true, width*0.75)
		if n == 0 {
			n = 1
		}
		h := float64(n) * lineH(r.ItemTitleSize)
		if b.Subtitle != "" {
			sn := m.LineCount(richtext.Plain(b.Subtitle), r.BaseSize, false, width)
			h += float64(sn)*lineH(r.BaseSize) + style.PtToPx(SubtitleGapPt)
		}
		if b.Body != "" {
			bn := m.LineCount(richtext.Plain(b.Body), r.BaseSize, false, width)
			h += float64(bn) * lineH(r.BaseSize)
		}
		return h + style.PtToPx(r.ParagraphSpacing)

	default:
		return 0
	}
}

// Heights measures the whole sequence.
func Heights(seq []blocks.Block, r style.Resolved, m *Measurer) []float64 {
	out := make([]float64, len(seq))
	for i, b := range seq {
		out[i] = BlockHeight(b, r, m)
	}
	return out
}
