// Enums live in their own package so that configuration, rendering pipelines
// and command line processing can share them without import cycles.
package common

// Resume template variant.
// ENUM(classic, modern, minimal, curve)
type TemplateKind int

// LeftAligned reports whether header name and meta lines are left aligned
// for this template (classic and curve center them).
func (t TemplateKind) LeftAligned() bool {
	return t == TemplateKindModern || t == TemplateKindMinimal
}

// UniformPadding reports whether page padding applies uniformly around page
// content. The curve template embeds its own band geometry instead.
func (t TemplateKind) UniformPadding() bool {
	return t != TemplateKindCurve
}

// Logical font family selectable in style configuration.
// ENUM(calibri, yahei, simsun, kaiti, roboto)
type FontFamily int

// Specification of requested output type.
// ENUM(html, docx, imgdocx, png, pdf)
type OutputFmt int

// Rasterized reports whether format output goes through the raster pipeline.
func (o OutputFmt) Rasterized() bool {
	return o == OutputFmtPng || o == OutputFmtPdf || o == OutputFmtImgdocx
}

func (o OutputFmt) Ext() string {
	switch o {
	case OutputFmtHtml:
		return ".html"
	case OutputFmtDocx, OutputFmtImgdocx:
		return ".docx"
	case OutputFmtPng:
		return ".png"
	case OutputFmtPdf:
		return ".pdf"
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}

// Kind of a content section referenced by ordering configuration.
// ENUM(education, experience, internships, campus, projects, skills, custom)
type SectionKind string
