package docx

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// WordprocessingML namespaces.
const (
	nsW   = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsWP  = "http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing"
	nsA   = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsPic = "http://schemas.openxmlformats.org/drawingml/2006/picture"
)

// English Metric Units per point and per CSS pixel.
const (
	emuPerPt = 12700
	emuPerPx = 9525
)

// runProps is the direct run formatting every text run carries.
type runProps struct {
	Font   string
	Size   int // half-points, 0 keeps the document default
	Color  string
	Bold   bool
	Italic bool
}

func newDocumentRoot() (*etree.Document, *etree.Element) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)

	root := doc.CreateElement("w:document")
	root.CreateAttr("xmlns:w", nsW)
	root.CreateAttr("xmlns:r", nsR)
	root.CreateAttr("xmlns:wp", nsWP)
	root.CreateAttr("xmlns:a", nsA)
	root.CreateAttr("xmlns:pic", nsPic)

	return doc, root.CreateElement("w:body")
}

// addParagraph creates a paragraph with its property element, which OOXML
// requires to precede all runs.
func addParagraph(parent *etree.Element) (p, pPr *etree.Element) {
	p = parent.CreateElement("w:p")
	pPr = p.CreateElement("w:pPr")
	return p, pPr
}

func addStyleRef(pPr *etree.Element, styleID string) {
	s := pPr.CreateElement("w:pStyle")
	s.CreateAttr("w:val", styleID)
}

// addSpacing sets paragraph spacing. Negative values leave the attribute
// out, zero is written explicitly.
func addSpacing(pPr *etree.Element, before, after, line int) {
	sp := pPr.CreateElement("w:spacing")
	if before >= 0 {
		sp.CreateAttr("w:before", fmt.Sprintf("%d", before))
	}
	if after >= 0 {
		sp.CreateAttr("w:after", fmt.Sprintf("%d", after))
	}
	if line > 0 {
		sp.CreateAttr("w:line", fmt.Sprintf("%d", line))
		sp.CreateAttr("w:lineRule", "auto")
	}
}

func addJustification(pPr *etree.Element, val string) {
	jc := pPr.CreateElement("w:jc")
	jc.CreateAttr("w:val", val)
}

// addBottomBorder draws a single rule under the paragraph. Size is in
// eighths of a point, space is the gap above the rule in points.
func addBottomBorder(pPr *etree.Element, color string, sizeEighths, space int) {
	bdr := pPr.CreateElement("w:pBdr")
	bottom := bdr.CreateElement("w:bottom")
	bottom.CreateAttr("w:val", "single")
	bottom.CreateAttr("w:sz", fmt.Sprintf("%d", sizeEighths))
	bottom.CreateAttr("w:space", fmt.Sprintf("%d", space))
	bottom.CreateAttr("w:color", color)
}

// addShading fills the paragraph background.
func addShading(pPr *etree.Element, fill string) {
	shd := pPr.CreateElement("w:shd")
	shd.CreateAttr("w:val", "clear")
	shd.CreateAttr("w:color", "auto")
	shd.CreateAttr("w:fill", fill)
}

// addRun appends a text run. Newlines inside text become soft line breaks.
func addRun(p *etree.Element, text string, rp runProps) {
	r := p.CreateElement("w:r")
	writeRunProps(r, rp)

	for i, part := range strings.Split(text, "\n") {
		if i > 0 {
			r.CreateElement("w:br")
		}
		if part == "" {
			continue
		}
		t := r.CreateElement("w:t")
		t.CreateAttr("xml:space", "preserve")
		t.SetText(part)
	}
}

func writeRunProps(r *etree.Element, rp runProps) {
	rPr := r.CreateElement("w:rPr")
	if rp.Font != "" {
		fonts := rPr.CreateElement("w:rFonts")
		fonts.CreateAttr("w:ascii", rp.Font)
		fonts.CreateAttr("w:eastAsia", rp.Font)
		fonts.CreateAttr("w:hAnsi", rp.Font)
	}
	if rp.Bold {
		rPr.CreateElement("w:b")
	}
	if rp.Italic {
		rPr.CreateElement("w:i")
	}
	if rp.Color != "" {
		c := rPr.CreateElement("w:color")
		c.CreateAttr("w:val", rp.Color)
	}
	if rp.Size > 0 {
		sz := rPr.CreateElement("w:sz")
		sz.CreateAttr("w:val", fmt.Sprintf("%d", rp.Size))
		szCs := rPr.CreateElement("w:szCs")
		szCs.CreateAttr("w:val", fmt.Sprintf("%d", rp.Size))
	}
}

// addTable creates a borderless fixed layout table spanning the given
// fiftieths of a percent of the content width (5000 is the full width).
func addTable(parent *etree.Element, colsPct []int) (tbl *etree.Element) {
	tbl = parent.CreateElement("w:tbl")

	tblPr := tbl.CreateElement("w:tblPr")
	tblW := tblPr.CreateElement("w:tblW")
	tblW.CreateAttr("w:w", "5000")
	tblW.CreateAttr("w:type", "pct")
	layoutEl := tblPr.CreateElement("w:tblLayout")
	layoutEl.CreateAttr("w:type", "fixed")

	grid := tbl.CreateElement("w:tblGrid")
	for range colsPct {
		grid.CreateElement("w:gridCol")
	}
	return tbl
}

// addCell appends a cell of the given width in fiftieths of a percent.
func addCell(row *etree.Element, widthPct int) *etree.Element {
	tc := row.CreateElement("w:tc")
	tcPr := tc.CreateElement("w:tcPr")
	tcW := tcPr.CreateElement("w:tcW")
	tcW.CreateAttr("w:w", fmt.Sprintf("%d", widthPct))
	tcW.CreateAttr("w:type", "pct")
	va := tcPr.CreateElement("w:vAlign")
	va.CreateAttr("w:val", "top")
	return tc
}

// addInlineImage embeds a picture run sized in EMU.
func addInlineImage(p *etree.Element, relID, name string, cx, cy int64) {
	r := p.CreateElement("w:r")
	drawing := r.CreateElement("w:drawing")

	inline := drawing.CreateElement("wp:inline")
	inline.CreateAttr("distT", "0")
	inline.CreateAttr("distB", "0")
	inline.CreateAttr("distL", "0")
	inline.CreateAttr("distR", "0")

	extent := inline.CreateElement("wp:extent")
	extent.CreateAttr("cx", fmt.Sprintf("%d", cx))
	extent.CreateAttr("cy", fmt.Sprintf("%d", cy))

	docPr := inline.CreateElement("wp:docPr")
	docPr.CreateAttr("id", "1")
	docPr.CreateAttr("name", name)

	graphic := inline.CreateElement("a:graphic")
	graphicData := graphic.CreateElement("a:graphicData")
	graphicData.CreateAttr("uri", nsPic)

	pic := graphicData.CreateElement("pic:pic")

	nvPicPr := pic.CreateElement("pic:nvPicPr")
	cNvPr := nvPicPr.CreateElement("pic:cNvPr")
	cNvPr.CreateAttr("id", "0")
	cNvPr.CreateAttr("name", name)
	nvPicPr.CreateElement("pic:cNvPicPr")

	blipFill := pic.CreateElement("pic:blipFill")
	blip := blipFill.CreateElement("a:blip")
	blip.CreateAttr("r:embed", relID)
	stretch := blipFill.CreateElement("a:stretch")
	stretch.CreateElement("a:fillRect")

	spPr := pic.CreateElement("pic:spPr")
	xfrm := spPr.CreateElement("a:xfrm")
	off := xfrm.CreateElement("a:off")
	off.CreateAttr("x", "0")
	off.CreateAttr("y", "0")
	ext := xfrm.CreateElement("a:ext")
	ext.CreateAttr("cx", fmt.Sprintf("%d", cx))
	ext.CreateAttr("cy", fmt.Sprintf("%d", cy))
	prstGeom := spPr.CreateElement("a:prstGeom")
	prstGeom.CreateAttr("prst", "rect")
	prstGeom.CreateElement("a:avLst")
}
