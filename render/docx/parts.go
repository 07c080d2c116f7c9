package docx

import (
	"fmt"
	"time"

	"github.com/beevik/etree"

	"resumec/misc"
	"resumec/style"
)

const (
	nsContentTypes  = "http://schemas.openxmlformats.org/package/2006/content-types"
	nsRelationships = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsCoreProps     = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	nsExtProps      = "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"
	nsDC            = "http://purl.org/dc/elements/1.1/"
	nsDCTerms       = "http://purl.org/dc/terms/"
	nsXSI           = "http://www.w3.org/2001/XMLSchema-instance"

	relTypeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relTypeStyles   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
	relTypeImage    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"
	relTypeCore     = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relTypeExt      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties"
)

// buildContentTypes declares every part of the package. Image extensions
// are passed by the caller since avatar and page bitmaps vary.
func buildContentTypes(imageExts []string) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)

	types := doc.CreateElement("Types")
	types.CreateAttr("xmlns", nsContentTypes)

	addDefault := func(ext, contentType string) {
		d := types.CreateElement("Default")
		d.CreateAttr("Extension", ext)
		d.CreateAttr("ContentType", contentType)
	}
	addDefault("rels", "application/vnd.openxmlformats-package.relationships+xml")
	addDefault("xml", "application/xml")

	seen := make(map[string]bool)
	for _, ext := range imageExts {
		if seen[ext] {
			continue
		}
		seen[ext] = true
		addDefault(ext, "image/"+ext)
	}

	addOverride := func(partName, contentType string) {
		o := types.CreateElement("Override")
		o.CreateAttr("PartName", partName)
		o.CreateAttr("ContentType", contentType)
	}
	addOverride("/word/document.xml", "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml")
	addOverride("/word/styles.xml", "application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml")
	addOverride("/docProps/core.xml", "application/vnd.openxmlformats-package.core-properties+xml")
	addOverride("/docProps/app.xml", "application/vnd.openxmlformats-officedocument.extended-properties+xml")

	return doc
}

func buildPackageRels() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)

	rels := doc.CreateElement("Relationships")
	rels.CreateAttr("xmlns", nsRelationships)

	addRelationship(rels, "rId1", relTypeDocument, "word/document.xml")
	addRelationship(rels, "rId2", relTypeCore, "docProps/core.xml")
	addRelationship(rels, "rId3", relTypeExt, "docProps/app.xml")

	return doc
}

// media is relationship id to media part path inside word/.
type mediaRel struct {
	ID     string
	Target string
}

func buildDocumentRels(media []mediaRel) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)

	rels := doc.CreateElement("Relationships")
	rels.CreateAttr("xmlns", nsRelationships)

	addRelationship(rels, stylesRelID, relTypeStyles, "styles.xml")
	for _, m := range media {
		addRelationship(rels, m.ID, relTypeImage, m.Target)
	}

	return doc
}

func addRelationship(rels *etree.Element, id, relType, target string) {
	rel := rels.CreateElement("Relationship")
	rel.CreateAttr("Id", id)
	rel.CreateAttr("Type", relType)
	rel.CreateAttr("Target", target)
}

// buildStyles writes document defaults plus heading styles, so outline
// navigation works. Runs still carry direct formatting.
func buildStyles(r style.Resolved) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)

	styles := doc.CreateElement("w:styles")
	styles.CreateAttr("xmlns:w", nsW)

	docDefaults := styles.CreateElement("w:docDefaults")
	rPrDefault := docDefaults.CreateElement("w:rPrDefault")
	rPr := rPrDefault.CreateElement("w:rPr")
	fonts := rPr.CreateElement("w:rFonts")
	fonts.CreateAttr("w:ascii", r.FontName)
	fonts.CreateAttr("w:eastAsia", r.FontName)
	fonts.CreateAttr("w:hAnsi", r.FontName)
	sz := rPr.CreateElement("w:sz")
	sz.CreateAttr("w:val", fmt.Sprintf("%d", r.SizeNormal))
	szCs := rPr.CreateElement("w:szCs")
	szCs.CreateAttr("w:val", fmt.Sprintf("%d", r.SizeNormal))
	color := rPr.CreateElement("w:color")
	color.CreateAttr("w:val", r.TextColor)

	pPrDefault := docDefaults.CreateElement("w:pPrDefault")
	pPr := pPrDefault.CreateElement("w:pPr")
	addSpacing(pPr, 0, r.ParaSpacingAfter, r.LineSpacing)

	addHeading := func(id, name string, size int, headingColor string) {
		s := styles.CreateElement("w:style")
		s.CreateAttr("w:type", "paragraph")
		s.CreateAttr("w:styleId", id)
		n := s.CreateElement("w:name")
		n.CreateAttr("w:val", name)
		rPr := s.CreateElement("w:rPr")
		rPr.CreateElement("w:b")
		sz := rPr.CreateElement("w:sz")
		sz.CreateAttr("w:val", fmt.Sprintf("%d", size))
		c := rPr.CreateElement("w:color")
		c.CreateAttr("w:val", headingColor)
	}

	normal := styles.CreateElement("w:style")
	normal.CreateAttr("w:type", "paragraph")
	normal.CreateAttr("w:default", "1")
	normal.CreateAttr("w:styleId", "Normal")
	normalName := normal.CreateElement("w:name")
	normalName.CreateAttr("w:val", "Normal")

	addHeading("Heading1", "heading 1", r.SizeH1, r.NameColor())
	addHeading("Heading2", "heading 2", r.SizeH2, r.SectionTitleColor())

	return doc
}

func buildCoreProps(title string, now time.Time) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)

	core := doc.CreateElement("cp:coreProperties")
	core.CreateAttr("xmlns:cp", nsCoreProps)
	core.CreateAttr("xmlns:dc", nsDC)
	core.CreateAttr("xmlns:dcterms", nsDCTerms)
	core.CreateAttr("xmlns:xsi", nsXSI)

	dcTitle := core.CreateElement("dc:title")
	dcTitle.SetText(title)

	creator := core.CreateElement("dc:creator")
	creator.SetText(misc.GetAppName())

	stamp := now.UTC().Format("2006-01-02T15:04:05Z")
	created := core.CreateElement("dcterms:created")
	created.CreateAttr("xsi:type", "dcterms:W3CDTF")
	created.SetText(stamp)
	modified := core.CreateElement("dcterms:modified")
	modified.CreateAttr("xsi:type", "dcterms:W3CDTF")
	modified.SetText(stamp)

	return doc
}

func buildAppProps() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)

	props := doc.CreateElement("Properties")
	props.CreateAttr("xmlns", nsExtProps)

	app := props.CreateElement("Application")
	app.SetText(misc.GetAppName() + " " + misc.GetVersion())

	return doc
}
