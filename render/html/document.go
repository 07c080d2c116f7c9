package html

import (
	"encoding/base64"
	"strings"

	"github.com/beevik/etree"

	"resumec/blocks"
	"resumec/content"
	"resumec/richtext"
)

// buildPreview renders the paginated block sequence as a self contained
// XHTML document, one div.page per page.
func buildPreview(c *content.Content, stylesheet string) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	html := doc.CreateElement("html")
	html.CreateAttr("xmlns", "http://www.w3.org/1999/xhtml")

	head := html.CreateElement("head")
	meta := head.CreateElement("meta")
	meta.CreateAttr("http-equiv", "Content-Type")
	meta.CreateAttr("content", "text/html; charset=utf-8")

	title := head.CreateElement("title")
	title.SetText(c.Doc.Profile.Name)

	styleEl := head.CreateElement("style")
	styleEl.CreateAttr("type", "text/css")
	styleEl.SetText(stylesheet)

	body := html.CreateElement("body")

	for _, page := range c.Pages {
		pageDiv := body.CreateElement("div")
		pageDiv.CreateAttr("class", "page")
		for _, blk := range page {
			appendBlock(pageDiv, c, blk)
		}
	}

	return doc
}

func appendBlock(parent *etree.Element, c *content.Content, blk blocks.Block) {
	switch blk.Kind {
	case blocks.KindHeader:
		header := parent.CreateElement("header")
		header.CreateAttr("class", "header")
		appendAvatar(header, c, blk)

		h1 := header.CreateElement("h1")
		h1.CreateAttr("class", "name")
		h1.SetText(blk.Name)

		appendMetaLines(header, blk.MetaLines)

	case blocks.KindBand:
		band := parent.CreateElement("div")
		band.CreateAttr("class", "band")
		h1 := band.CreateElement("h1")
		h1.SetText(blk.Name)
		if blk.Title != "" {
			p := band.CreateElement("p")
			p.SetText(blk.Title)
		}

	case blocks.KindProfileGrid:
		grid := parent.CreateElement("header")
		grid.CreateAttr("class", "header profile")
		appendAvatar(grid, c, blk)
		appendMetaLines(grid, blk.MetaLines)

	case blocks.KindSectionTitle:
		h2 := parent.CreateElement("h2")
		h2.CreateAttr("class", "section-title")
		h2.SetText(blk.Title)

	case blocks.KindSummary:
		p := parent.CreateElement("p")
		p.CreateAttr("class", "summary")
		appendRichText(p, blk.Body)

	case blocks.KindItem:
		item := parent.CreateElement("div")
		item.CreateAttr("class", "item")

		if blk.Date == "" {
			p := item.CreateElement("p")
			p.CreateAttr("class", "item-row")
			span := p.CreateElement("span")
			span.CreateAttr("class", "item-title")
			span.SetText(blk.Title)
		} else {
			row := item.CreateElement("div")
			row.CreateAttr("class", "item-row")
			titleSpan := row.CreateElement("span")
			titleSpan.CreateAttr("class", "item-title")
			titleSpan.SetText(blk.Title)
			dateSpan := row.CreateElement("span")
			dateSpan.CreateAttr("class", "item-date")
			dateSpan.SetText(blk.Date)
		}

		if blk.Subtitle != "" {
			p := item.CreateElement("p")
			p.CreateAttr("class", "item-subtitle")
			appendRichText(p, blk.Subtitle)
		}
		if blk.Body != "" {
			p := item.CreateElement("p")
			p.CreateAttr("class", "item-body")
			appendRichText(p, blk.Body)
		}
	}
}

func appendMetaLines(parent *etree.Element, lines []string) {
	for _, line := range lines {
		p := parent.CreateElement("p")
		p.CreateAttr("class", "meta")
		p.SetText(line)
	}
}

// appendRichText emits marked up text as nested b/i/span elements with
// explicit line breaks.
func appendRichText(parent *etree.Element, text string) {
	for _, run := range richtext.Parse(text) {
		target := parent
		if run.Bold {
			target = target.CreateElement("b")
		}
		if run.Italic {
			target = target.CreateElement("i")
		}
		if run.Colored {
			span := target.CreateElement("span")
			span.CreateAttr("class", "accent")
			target = span
		}
		for i, part := range strings.Split(run.Text, "\n") {
			if i > 0 {
				target.CreateElement("br")
			}
			if part != "" {
				target.CreateText(part)
			}
		}
	}
}

// appendAvatar embeds the profile photo as a data URI, the preview stays a
// single file.
func appendAvatar(parent *etree.Element, c *content.Content, blk blocks.Block) {
	if c.Avatar == nil || !blk.ShowAvatar {
		return
	}

	mime := "image/" + c.Avatar.Ext
	if c.Avatar.Ext == "svg" {
		mime = "image/svg+xml"
	}

	img := parent.CreateElement("img")
	img.CreateAttr("class", "avatar")
	img.CreateAttr("alt", "")
	img.CreateAttr("src", "data:"+mime+";base64,"+base64.StdEncoding.EncodeToString(c.Avatar.Data))
}
