// Package style turns the abstract style configuration of a document into
// the primitive values renderers consume: point sizes derived from the base
// font size, word processor units, colors and font mappings. Resolution is a
// pure function, every legal configuration produces a complete value set.
package style

import (
	"resumec/common"
	"resumec/css"
	"resumec/resume"
)

// Fixed offsets (in points) from the base font size. Every renderer must
// observe the same ratios, so they are derived here and nowhere else.
const (
	HeadingOffset      = 14.0
	SectionTitleOffset = 3.5
	ItemTitleOffset    = 0.5
	DateOffset         = -0.5
)

const (
	textColor     = "000000"
	subtitleColor = "666666"
	classicRule   = "E0E0E0"

	// word processor page margin when padding is not usable, 20mm in twips
	defaultPageMarginTwips = 1134

	// curve keeps its own band geometry, content area padding is fixed
	CurveContentPaddingMm = 15.0
)

// Resolved is the frozen output of style resolution.
type Resolved struct {
	Template   common.TemplateKind
	FontFamily common.FontFamily

	// point sizes
	BaseSize         float64
	HeadingSize      float64
	SectionTitleSize float64
	ItemTitleSize    float64
	DateSize         float64
	MetaSize         float64

	LineHeight       float64
	ParagraphSpacing float64 // pt
	PagePadding      float64 // mm

	// colors, upper case RRGGBB without hash
	ThemeColor    string
	TextColor     string
	SubtitleColor string

	// font mapping
	FontName     string
	CSSFontStack string

	// word processor units
	SizeNormal    int // half-points
	SizeH1        int
	SizeH2        int
	SizeItemTitle int
	SizeDate      int
	SizeMeta      int

	LineSpacing          int // 240ths of a line
	ParaSpacingAfter     int // twips
	SectionSpacingBefore int
	SectionSpacingAfter  int
	NameSpacingAfter     int
	MetaSpacingAfter     int
	PageMargin           int // twips
}

type fontMapping struct {
	name  string
	stack string
}

var fontTable = map[common.FontFamily]fontMapping{
	common.FontFamilyCalibri: {"Calibri", "'Calibri', 'Arial', sans-serif"},
	common.FontFamilyYahei:   {"Microsoft YaHei", "'Microsoft YaHei', '微软雅黑', sans-serif"},
	common.FontFamilySimsun:  {"SimSun", "'SimSun', '宋体', serif"},
	common.FontFamilyKaiti:   {"KaiTi", "'楷体', 'KaiTi', serif"},
	common.FontFamilyRoboto:  {"Roboto", "'Roboto', sans-serif"},
}

// Resolve derives all renderer facing values from a style configuration.
// Unknown fonts fall back to Calibri, a theme color which does not parse
// falls back to the default, so the result is always complete.
func Resolve(s resume.Style) Resolved {
	base := s.FontSize
	if base <= 0 {
		base = resume.DefaultFontSize
	}

	theme, err := css.NormalizeHexColor(s.ThemeColor)
	if err != nil {
		theme, _ = css.NormalizeHexColor(resume.DefaultThemeColor)
	}

	font, ok := fontTable[s.FontFamily]
	if !ok {
		font = fontTable[common.FontFamilyCalibri]
	}

	r := Resolved{
		Template:   s.Template,
		FontFamily: s.FontFamily,

		BaseSize:         base,
		HeadingSize:      base + HeadingOffset,
		SectionTitleSize: base + SectionTitleOffset,
		ItemTitleSize:    base + ItemTitleOffset,
		DateSize:         base + DateOffset,
		MetaSize:         base,

		LineHeight:       s.LineHeight,
		ParagraphSpacing: s.ParagraphSpacing,
		PagePadding:      s.PagePadding,

		ThemeColor:    theme,
		TextColor:     textColor,
		SubtitleColor: subtitleColor,

		FontName:     font.name,
		CSSFontStack: font.stack,
	}

	r.SizeNormal = HalfPoints(r.BaseSize)
	r.SizeH1 = HalfPoints(r.HeadingSize)
	r.SizeH2 = HalfPoints(r.SectionTitleSize)
	r.SizeItemTitle = HalfPoints(r.ItemTitleSize)
	r.SizeDate = HalfPoints(r.DateSize)
	r.SizeMeta = HalfPoints(r.MetaSize)

	r.LineSpacing = LineSpacingTwips(r.LineHeight)
	r.ParaSpacingAfter = Twips(r.ParagraphSpacing)
	r.SectionSpacingBefore = Twips(r.BaseSize * 1.4)
	r.SectionSpacingAfter = Twips(r.BaseSize * 0.6)
	r.NameSpacingAfter = Twips(r.BaseSize * 0.4)
	r.MetaSpacingAfter = Twips(r.BaseSize * 1.5)

	if r.PagePadding > 0 {
		r.PageMargin = MmToTwips(r.PagePadding)
	} else {
		r.PageMargin = defaultPageMarginTwips
	}
	return r
}

// NameColor is the color of the header name run. The minimal template keeps
// it black, everything else uses the theme color.
func (r Resolved) NameColor() string {
	if r.Template == common.TemplateKindMinimal {
		return r.TextColor
	}
	return r.ThemeColor
}

// SectionTitleColor matches NameColor semantics for section titles.
func (r Resolved) SectionTitleColor() string {
	if r.Template == common.TemplateKindMinimal {
		return r.TextColor
	}
	return r.ThemeColor
}

// SectionRuleColor returns the color of the rule under a section title and
// whether one is drawn at all.
func (r Resolved) SectionRuleColor() (string, bool) {
	switch r.Template {
	case common.TemplateKindModern:
		return r.ThemeColor, true
	case common.TemplateKindClassic:
		return classicRule, true
	default:
		return "", false
	}
}

// UppercaseTitles reports whether section titles are upper cased.
func (r Resolved) UppercaseTitles() bool {
	return r.Template == common.TemplateKindMinimal
}

// PageBudgetPx is the content height budget of a single preview page in CSS
// pixels. Templates with uniform padding subtract it twice from the page
// height, curve subtracts its fixed content padding.
func (r Resolved) PageBudgetPx() float64 {
	if r.Template.UniformPadding() {
		return PageHeightPx - 2*MmToPx(r.PagePadding)
	}
	return PageHeightPx - 2*MmToPx(CurveContentPaddingMm)
}

// ContentWidthPx is the usable content width of a preview page in CSS pixels.
func (r Resolved) ContentWidthPx() float64 {
	if r.Template.UniformPadding() {
		return PageWidthPx - 2*MmToPx(r.PagePadding)
	}
	return PageWidthPx - 2*MmToPx(CurveContentPaddingMm)
}
