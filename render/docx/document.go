package docx

import (
	"fmt"

	"github.com/beevik/etree"

	"resumec/blocks"
	"resumec/common"
	"resumec/content"
	"resumec/richtext"
	"resumec/style"
)

// A4 page in twips.
const (
	pageWidthTwips  = 11906
	pageHeightTwips = 16838
)

const (
	stylesRelID = "rId1"
	avatarRelID = "rIdAvatar"

	// item row split, in fiftieths of a percent of the content width
	itemTitlePct = 3750
	itemDatePct  = 1250

	// header split when an avatar is present
	headerTextPct   = 4000
	headerAvatarPct = 1000

	// avatar box in points
	avatarMaxWidthPt  = 100.0
	avatarMaxHeightPt = 130.0

	subtitleSpacingAfter = 40 // twips
	metaLineSpacing      = 40

	ruleSizeEighths = 8 // 1pt
	minimalRulePad  = 12
)

type builder struct {
	c *content.Content
	r style.Resolved
}

// buildDocument lays out the block sequence as WordprocessingML. Blocks are
// emitted linearly without explicit page breaks, the word processor flows
// them with its own fonts and metrics. Preview pagination is an estimate
// computed with different fonts, forcing it here would leave stray
// near-empty pages.
func buildDocument(c *content.Content) *etree.Document {
	doc, body := newDocumentRoot()
	b := &builder{c: c, r: c.Style}

	for _, blk := range c.Seq {
		b.writeBlock(body, blk)
	}

	b.writeSectPr(body)
	return doc
}

func (b *builder) writeBlock(body *etree.Element, blk blocks.Block) {
	switch blk.Kind {
	case blocks.KindHeader:
		b.writeHeader(body, blk)
	case blocks.KindBand:
		b.writeBand(body, blk)
	case blocks.KindProfileGrid:
		b.writeProfileGrid(body, blk)
	case blocks.KindSectionTitle:
		b.writeSectionTitle(body, blk)
	case blocks.KindSummary:
		b.writeSummary(body, blk)
	case blocks.KindItem:
		b.writeItem(body, blk)
	}
}

// headerJustification matches the preview, classic centers the identity
// area, every other template keeps it left aligned.
func (b *builder) headerJustification() string {
	if b.r.Template == common.TemplateKindClassic {
		return "center"
	}
	return "left"
}

func (b *builder) writeHeader(body *etree.Element, blk blocks.Block) {
	target := body
	if b.c.Avatar != nil && blk.ShowAvatar {
		tbl := addTable(body, []int{headerTextPct, headerAvatarPct})
		row := tbl.CreateElement("w:tr")
		target = addCell(row, headerTextPct)
		b.writeAvatarCell(addCell(row, headerAvatarPct))
	}

	p, pPr := addParagraph(target)
	addSpacing(pPr, 0, b.r.NameSpacingAfter, b.r.LineSpacing)
	addJustification(pPr, b.headerJustification())
	addRun(p, blk.Name, runProps{Size: b.r.SizeH1, Bold: true, Color: b.r.NameColor()})

	b.writeMetaLines(target, blk.MetaLines)

	if b.r.UppercaseTitles() {
		// rule under the whole identity area
		_, pPr := addParagraph(body)
		addBottomBorder(pPr, b.r.TextColor, ruleSizeEighths, minimalRulePad)
		addSpacing(pPr, 0, b.r.MetaSpacingAfter, 0)
	}
}

func (b *builder) writeBand(body *etree.Element, blk blocks.Block) {
	p, pPr := addParagraph(body)
	addShading(pPr, b.r.ThemeColor)
	addSpacing(pPr, 0, b.r.MetaSpacingAfter, b.r.LineSpacing)
	addRun(p, blk.Name, runProps{Size: b.r.SizeH1, Bold: true, Color: "FFFFFF"})
	if blk.Title != "" {
		br := p.CreateElement("w:r")
		br.CreateElement("w:br")
		addRun(p, blk.Title, runProps{Size: b.r.SizeMeta, Color: "FFFFFF"})
	}
}

func (b *builder) writeProfileGrid(body *etree.Element, blk blocks.Block) {
	target := body
	if b.c.Avatar != nil && blk.ShowAvatar {
		tbl := addTable(body, []int{headerTextPct, headerAvatarPct})
		row := tbl.CreateElement("w:tr")
		target = addCell(row, headerTextPct)
		b.writeAvatarCell(addCell(row, headerAvatarPct))
	}
	b.writeMetaLines(target, blk.MetaLines)
}

func (b *builder) writeMetaLines(target *etree.Element, lines []string) {
	for i, line := range lines {
		after := metaLineSpacing
		if i == len(lines)-1 && !b.r.UppercaseTitles() {
			after = b.r.MetaSpacingAfter
		}
		p, pPr := addParagraph(target)
		addSpacing(pPr, 0, after, b.r.LineSpacing)
		addJustification(pPr, b.headerJustification())
		addRun(p, line, runProps{Size: b.r.SizeMeta, Color: b.r.SubtitleColor})
	}
}

func (b *builder) titleJustification() string {
	if b.r.Template == common.TemplateKindClassic {
		return "center"
	}
	return "left"
}

func (b *builder) writeSectionTitle(body *etree.Element, blk blocks.Block) {
	p, pPr := addParagraph(body)
	addStyleRef(pPr, "Heading2")
	addSpacing(pPr, b.r.SectionSpacingBefore, b.r.SectionSpacingAfter, b.r.LineSpacing)
	addJustification(pPr, b.titleJustification())
	if color, ok := b.r.SectionRuleColor(); ok {
		addBottomBorder(pPr, color, ruleSizeEighths, 2)
	}
	addRun(p, b.r.TitleText(blk.Title), runProps{Size: b.r.SizeH2, Bold: true, Color: b.r.SectionTitleColor()})
}

func (b *builder) writeSummary(body *etree.Element, blk blocks.Block) {
	p, pPr := addParagraph(body)
	addSpacing(pPr, -1, b.r.ParaSpacingAfter, b.r.LineSpacing)
	b.writeRichRuns(p, blk.Body, b.r.SizeNormal, b.r.TextColor)
}

func (b *builder) writeItem(body *etree.Element, blk blocks.Block) {
	if blk.Date == "" {
		// dateless custom item keeps a plain bold title line
		p, pPr := addParagraph(body)
		addSpacing(pPr, -1, 0, b.r.LineSpacing)
		addRun(p, blk.Title, runProps{Size: b.r.SizeItemTitle, Bold: true})
	} else {
		tbl := addTable(body, []int{itemTitlePct, itemDatePct})
		row := tbl.CreateElement("w:tr")

		tc := addCell(row, itemTitlePct)
		p, pPr := addParagraph(tc)
		addSpacing(pPr, 0, 0, b.r.LineSpacing)
		addRun(p, blk.Title, runProps{Size: b.r.SizeItemTitle, Bold: true})

		tc = addCell(row, itemDatePct)
		p, pPr = addParagraph(tc)
		addSpacing(pPr, 0, 0, b.r.LineSpacing)
		addJustification(pPr, "right")
		addRun(p, blk.Date, runProps{Size: b.r.SizeDate, Color: b.r.SubtitleColor})
	}

	if blk.Subtitle != "" {
		p, pPr := addParagraph(body)
		addSpacing(pPr, 0, subtitleSpacingAfter, b.r.LineSpacing)
		b.writeRichRuns(p, blk.Subtitle, b.r.SizeNormal, b.r.SubtitleColor)
	}

	if blk.Body != "" {
		p, pPr := addParagraph(body)
		addSpacing(pPr, 0, b.r.ParaSpacingAfter, b.r.LineSpacing)
		b.writeRichRuns(p, blk.Body, b.r.SizeNormal, b.r.TextColor)
	}
}

// writeRichRuns emits the runs of a rich text string, mapping the color
// toggle to the theme color.
func (b *builder) writeRichRuns(p *etree.Element, text string, size int, color string) {
	for _, run := range richtext.Parse(text) {
		rp := runProps{Size: size, Color: color, Bold: run.Bold, Italic: run.Italic}
		if run.Colored {
			rp.Color = b.r.ThemeColor
		}
		addRun(p, run.Text, rp)
	}
}

func (b *builder) writeAvatarCell(tc *etree.Element) {
	p, pPr := addParagraph(tc)
	addSpacing(pPr, 0, 0, 0)
	addJustification(pPr, "right")

	w, h := b.c.Avatar.Fit(avatarMaxWidthPt, avatarMaxHeightPt)
	addInlineImage(p, avatarRelID, "avatar", int64(w*emuPerPt), int64(h*emuPerPt))
}

func (b *builder) writeSectPr(body *etree.Element) {
	sectPr := body.CreateElement("w:sectPr")

	pgSz := sectPr.CreateElement("w:pgSz")
	pgSz.CreateAttr("w:w", fmt.Sprintf("%d", pageWidthTwips))
	pgSz.CreateAttr("w:h", fmt.Sprintf("%d", pageHeightTwips))

	margin := b.r.PageMargin
	pgMar := sectPr.CreateElement("w:pgMar")
	pgMar.CreateAttr("w:top", fmt.Sprintf("%d", margin))
	pgMar.CreateAttr("w:right", fmt.Sprintf("%d", margin))
	pgMar.CreateAttr("w:bottom", fmt.Sprintf("%d", margin))
	pgMar.CreateAttr("w:left", fmt.Sprintf("%d", margin))
	pgMar.CreateAttr("w:header", "720")
	pgMar.CreateAttr("w:footer", "720")
	pgMar.CreateAttr("w:gutter", "0")
}
