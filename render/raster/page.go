package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"resumec/blocks"
	"resumec/common"
	"resumec/content"
	"resumec/layout"
	"resumec/richtext"
	"resumec/style"
)

// pageRenderer draws one page onto a bitmap. All geometry is computed in
// CSS pixels with the shared layout measurer and only multiplied by the
// capture scale when pixels are actually touched, so the drawn page and the
// estimated block heights cannot drift apart.
type pageRenderer struct {
	c     *content.Content
	r     style.Resolved
	m     *layout.Measurer
	fs    *fontSet
	scale float64
	img   *image.RGBA

	y           float64
	left, width float64
}

func renderPage(c *content.Content, page []blocks.Block, fs *fontSet, scale float64) *image.RGBA {
	w := int(math.Round(style.PageWidthPx * scale))
	h := int(math.Round(style.PageHeightPx * scale))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	pad := style.MmToPx(c.Style.PagePadding)
	if !c.Style.Template.UniformPadding() {
		pad = style.MmToPx(style.CurveContentPaddingMm)
	}

	pr := &pageRenderer{
		c: c, r: c.Style, m: c.Measurer, fs: fs,
		scale: scale, img: img,
		y: pad, left: pad, width: style.PageWidthPx - 2*pad,
	}

	for _, b := range page {
		pr.drawBlock(b)
	}
	return img
}

func (pr *pageRenderer) drawBlock(b blocks.Block) {
	switch b.Kind {
	case blocks.KindHeader:
		pr.drawHeader(b)
	case blocks.KindBand:
		pr.drawBand(b)
	case blocks.KindProfileGrid:
		pr.drawProfileGrid(b)
	case blocks.KindSectionTitle:
		pr.drawSectionTitle(b)
	case blocks.KindSummary:
		pr.drawRich(b.Body, pr.r.BaseSize, pr.r.TextColor)
		pr.y += style.PtToPx(pr.r.ParagraphSpacing)
	case blocks.KindItem:
		pr.drawItem(b)
	}
}

func (pr *pageRenderer) lineH(sizePt float64) float64 {
	return style.PtToPx(sizePt) * pr.r.LineHeight
}

// baseline is the offset of the text baseline inside its line box.
func (pr *pageRenderer) baseline(sizePt float64) float64 {
	return (pr.lineH(sizePt) + style.PtToPx(sizePt)*0.72) / 2
}

func (pr *pageRenderer) centered() bool {
	return pr.r.Template == common.TemplateKindClassic
}

func (pr *pageRenderer) drawHeader(b blocks.Block) {
	startY := pr.y
	textWidth := pr.width
	avatar := pr.c.Avatar != nil && b.ShowAvatar
	if avatar {
		textWidth -= style.PtToPx(layout.AvatarColumnPt)
	}

	pr.drawAligned(b.Name, pr.r.HeadingSize, true, pr.r.NameColor(), textWidth)
	pr.y += pr.lineH(pr.r.HeadingSize) + style.PtToPx(pr.r.BaseSize*0.4)

	pr.drawMetaLines(b.MetaLines, textWidth)

	if avatar {
		pr.drawAvatar(startY)
		if bottom := startY + style.PtToPx(layout.AvatarMaxHeightPt); bottom > pr.y {
			pr.y = bottom
		}
	}

	if pr.r.UppercaseTitles() {
		pr.y += style.PtToPx(layout.MinimalRulePadPt)
		pr.fillRect(pr.left, pr.y, pr.width, style.PtToPx(layout.RulePt), pr.r.TextColor)
		pr.y += style.PtToPx(layout.RulePt)
	}
	pr.y += style.PtToPx(pr.r.BaseSize * 1.5)
}

func (pr *pageRenderer) drawProfileGrid(b blocks.Block) {
	startY := pr.y
	textWidth := pr.width
	avatar := pr.c.Avatar != nil && b.ShowAvatar
	if avatar {
		textWidth -= style.PtToPx(layout.AvatarColumnPt)
	}

	pr.drawMetaLines(b.MetaLines, textWidth)

	if avatar {
		pr.drawAvatar(startY)
		if bottom := startY + style.PtToPx(layout.AvatarMaxHeightPt); bottom > pr.y {
			pr.y = bottom
		}
	}
	pr.y += style.PtToPx(pr.r.BaseSize * 1.5)
}

func (pr *pageRenderer) drawMetaLines(lines []string, textWidth float64) {
	for _, line := range lines {
		for _, wl := range pr.m.WrapLines(line, pr.r.MetaSize, false, textWidth) {
			pr.drawAligned(wl, pr.r.MetaSize, false, pr.r.SubtitleColor, textWidth)
			pr.y += pr.lineH(pr.r.MetaSize)
		}
		pr.y += style.PtToPx(layout.MetaLineGapPt)
	}
}

// drawAligned draws one line at the cursor, centered for the classic
// template, left aligned otherwise, and leaves the cursor alone.
func (pr *pageRenderer) drawAligned(text string, sizePt float64, bold bool, hex string, width float64) {
	x := pr.left
	if pr.centered() {
		x = pr.left + (width-pr.m.LineWidth(text, sizePt, bold))/2
	}
	pr.drawString(text, x, pr.y+pr.baseline(sizePt), sizePt, bold, hex)
}

func (pr *pageRenderer) drawBand(b blocks.Block) {
	pr.fillRect(0, 0, style.PageWidthPx, layout.BandHeightPx, pr.r.ThemeColor)

	nameLH := pr.lineH(pr.r.HeadingSize)
	total := nameLH
	if b.Title != "" {
		total += pr.lineH(pr.r.MetaSize)
	}

	y := (layout.BandHeightPx - total) / 2
	pr.drawString(b.Name, pr.left, y+pr.baseline(pr.r.HeadingSize), pr.r.HeadingSize, true, "FFFFFF")
	if b.Title != "" {
		y += nameLH
		pr.drawString(b.Title, pr.left, y+pr.baseline(pr.r.MetaSize), pr.r.MetaSize, false, "FFFFFF")
	}

	pr.y = layout.BandHeightPx + layout.BandSpacingAfterPx
}

func (pr *pageRenderer) drawSectionTitle(b blocks.Block) {
	pr.y += style.PtToPx(pr.r.BaseSize * 1.4)

	title := pr.r.TitleText(b.Title)
	for _, wl := range pr.m.WrapLines(title, pr.r.SectionTitleSize, true, pr.width) {
		pr.drawAligned(wl, pr.r.SectionTitleSize, true, pr.r.SectionTitleColor(), pr.width)
		pr.y += pr.lineH(pr.r.SectionTitleSize)
	}
	pr.y += style.PtToPx(layout.SectionTitlePadPt)

	if ruleColor, ok := pr.r.SectionRuleColor(); ok {
		pr.fillRect(pr.left, pr.y, pr.width, style.PtToPx(layout.RulePt), ruleColor)
		pr.y += style.PtToPx(layout.RulePt)
	}
	pr.y += style.PtToPx(pr.r.BaseSize * 0.6)
}

func (pr *pageRenderer) drawItem(b blocks.Block) {
	if b.Date != "" {
		dw := pr.m.LineWidth(b.Date, pr.r.DateSize, false)
		pr.drawString(b.Date, pr.left+pr.width-dw, pr.y+pr.baseline(pr.r.ItemTitleSize),
			pr.r.DateSize, false, pr.r.SubtitleColor)
	}

	// title column keeps three quarters of the row, the date never wraps
	for _, wl := range pr.m.WrapLines(b.Title, pr.r.ItemTitleSize, true, pr.width*0.75) {
		pr.drawString(wl, pr.left, pr.y+pr.baseline(pr.r.ItemTitleSize), pr.r.ItemTitleSize, true, pr.r.TextColor)
		pr.y += pr.lineH(pr.r.ItemTitleSize)
	}

	if b.Subtitle != "" {
		pr.drawRich(b.Subtitle, pr.r.BaseSize, pr.r.SubtitleColor)
		pr.y += style.PtToPx(layout.SubtitleGapPt)
	}
	if b.Body != "" {
		pr.drawRich(b.Body, pr.r.BaseSize, pr.r.TextColor)
	}
	pr.y += style.PtToPx(pr.r.ParagraphSpacing)
}

// seg is a styled fragment of a wrapped line with its x offset.
type seg struct {
	text    string
	x       float64
	bold    bool
	colored bool
}

// layoutRich wraps marked up text into styled line segments using the same
// break-anywhere rule the height estimator counts with.
func (pr *pageRenderer) layoutRich(text string, sizePt, width float64) [][]seg {
	var lines [][]seg
	var cur []seg
	var x float64

	flush := func(s *seg) *seg {
		if s != nil && s.text != "" {
			cur = append(cur, *s)
		}
		return nil
	}

	for _, run := range richtext.Parse(text) {
		var s *seg
		for _, rr := range run.Text {
			if rr == '\n' {
				s = flush(s)
				lines = append(lines, cur)
				cur, x = nil, 0
				continue
			}
			a := pr.m.RuneWidth(rr, sizePt, run.Bold)
			if x > 0 && x+a > width {
				s = flush(s)
				lines = append(lines, cur)
				cur, x = nil, 0
			}
			if s == nil {
				s = &seg{x: x, bold: run.Bold, colored: run.Colored}
			}
			s.text += string(rr)
			x += a
		}
		flush(s)
	}
	if len(cur) > 0 {
		lines = append(lines, cur)
	}
	return lines
}

func (pr *pageRenderer) drawRich(text string, sizePt float64, defColor string) {
	lh := pr.lineH(sizePt)
	for _, line := range pr.layoutRich(text, sizePt, pr.width) {
		baseline := pr.y + pr.baseline(sizePt)
		for _, s := range line {
			col := defColor
			if s.colored {
				col = pr.r.ThemeColor
			}
			pr.drawString(s.text, pr.left+s.x, baseline, sizePt, s.bold, col)
		}
		pr.y += lh
	}
}

func (pr *pageRenderer) drawAvatar(topY float64) {
	maxW := style.PtToPx(avatarBoxWidthPt)
	maxH := style.PtToPx(layout.AvatarMaxHeightPt)
	w, h := pr.c.Avatar.Fit(maxW, maxH)

	img, err := pr.c.Avatar.Scaled(int(math.Round(w*pr.scale)), int(math.Round(h*pr.scale)))
	if err != nil {
		return
	}

	x := int(math.Round((pr.left + pr.width - w) * pr.scale))
	y := int(math.Round(topY * pr.scale))
	bounds := img.Bounds()
	rect := image.Rect(x, y, x+bounds.Dx(), y+bounds.Dy())
	draw.Draw(pr.img, rect, img, bounds.Min, draw.Over)
}

// avatarBoxWidthPt is the avatar image cap, the rest of the column is gap.
const avatarBoxWidthPt = 100.0

func (pr *pageRenderer) fillRect(x, y, w, h float64, hex string) {
	s := pr.scale
	rect := image.Rect(
		int(math.Round(x*s)), int(math.Round(y*s)),
		int(math.Round((x+w)*s)), int(math.Round((y+h)*s)),
	)
	if rect.Dy() < 1 {
		rect.Max.Y = rect.Min.Y + 1
	}
	draw.Draw(pr.img, rect, &image.Uniform{C: parseHex(hex)}, image.Point{}, draw.Src)
}

func (pr *pageRenderer) drawString(text string, x, baseline, sizePt float64, bold bool, hex string) {
	if text == "" {
		return
	}
	face, err := pr.fs.face(style.PtToPx(sizePt)*pr.scale, bold)
	if err != nil {
		return
	}
	d := &font.Drawer{
		Dst:  pr.img,
		Src:  &image.Uniform{C: parseHex(hex)},
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(math.Round(x * pr.scale * 64)),
			Y: fixed.Int26_6(math.Round(baseline * pr.scale * 64)),
		},
	}
	d.DrawString(text)
}

// parseHex decodes an upper case RRGGBB color, falling back to black.
func parseHex(hex string) color.RGBA {
	if len(hex) != 6 {
		return color.RGBA{A: 255}
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{A: 255}
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}
