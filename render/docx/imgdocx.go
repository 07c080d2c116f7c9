package docx

import (
	"archive/zip"
	"context"
	"fmt"
	"time"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"resumec/config"
	"resumec/content"
	"resumec/style"
)

// PageImage is one rendered page bitmap.
type PageImage struct {
	Data []byte
	Ext  string // "png" or "jpeg"
}

// GenerateFromImages creates the image based DOCX output, one full bleed
// page bitmap per page. The visual result is pixel identical to the raster
// output at the cost of editability.
func GenerateFromImages(ctx context.Context, c *content.Content, pages []PageImage, outputPath string, cfg *config.DocumentConfig, log *zap.Logger) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	log.Info("Generating image DOCX", zap.String("output", outputPath), zap.Int("pages", len(pages)))

	media := make([]mediaRel, 0, len(pages))
	exts := make([]string, 0, len(pages))
	for i, page := range pages {
		media = append(media, mediaRel{
			ID:     pageRelID(i),
			Target: fmt.Sprintf("media/page%d.%s", i+1, page.Ext),
		})
		exts = append(exts, page.Ext)
	}

	return writePackage(c, outputPath, cfg, func(zw *zip.Writer) error {
		if err := writeXMLToZip(zw, "[Content_Types].xml", buildContentTypes(exts)); err != nil {
			return fmt.Errorf("unable to write content types: %w", err)
		}
		if err := writeXMLToZip(zw, "_rels/.rels", buildPackageRels()); err != nil {
			return fmt.Errorf("unable to write package relationships: %w", err)
		}
		if err := writeXMLToZip(zw, "word/document.xml", buildImageDocument(len(pages))); err != nil {
			return fmt.Errorf("unable to write document: %w", err)
		}
		if err := writeXMLToZip(zw, "word/styles.xml", buildStyles(c.Style)); err != nil {
			return fmt.Errorf("unable to write styles: %w", err)
		}
		if err := writeXMLToZip(zw, "word/_rels/document.xml.rels", buildDocumentRels(media)); err != nil {
			return fmt.Errorf("unable to write document relationships: %w", err)
		}
		if err := writeXMLToZip(zw, "docProps/core.xml", buildCoreProps(c.Doc.Profile.Name, time.Now())); err != nil {
			return fmt.Errorf("unable to write core properties: %w", err)
		}
		if err := writeXMLToZip(zw, "docProps/app.xml", buildAppProps()); err != nil {
			return fmt.Errorf("unable to write app properties: %w", err)
		}
		for i, page := range pages {
			if err := writeDataToZip(zw, "word/"+media[i].Target, page.Data); err != nil {
				return fmt.Errorf("unable to write page %d: %w", i+1, err)
			}
		}
		return nil
	})
}

func pageRelID(i int) string {
	return fmt.Sprintf("rIdPage%d", i+1)
}

// buildImageDocument lays out one borderless page bitmap per page. Each
// image keeps the 96 DPI page footprint regardless of the capture scale the
// bitmap was rendered at.
func buildImageDocument(pages int) *etree.Document {
	doc, body := newDocumentRoot()

	cx := int64(style.PageWidthPx) * emuPerPx
	cy := int64(style.PageHeightPx) * emuPerPx

	for i := 0; i < pages; i++ {
		p, pPr := addParagraph(body)
		addSpacing(pPr, 0, 0, 0)
		addInlineImage(p, pageRelID(i), fmt.Sprintf("page%d", i+1), cx, cy)

		// every page except the last carries its own zero margin section
		if i < pages-1 {
			_, brkPPr := addParagraph(body)
			writeZeroMarginSectPr(brkPPr)
		}
	}

	writeZeroMarginSectPr(body)
	return doc
}

func writeZeroMarginSectPr(parent *etree.Element) {
	sectPr := parent.CreateElement("w:sectPr")

	pgSz := sectPr.CreateElement("w:pgSz")
	pgSz.CreateAttr("w:w", fmt.Sprintf("%d", pageWidthTwips))
	pgSz.CreateAttr("w:h", fmt.Sprintf("%d", pageHeightTwips))

	pgMar := sectPr.CreateElement("w:pgMar")
	pgMar.CreateAttr("w:top", "0")
	pgMar.CreateAttr("w:right", "0")
	pgMar.CreateAttr("w:bottom", "0")
	pgMar.CreateAttr("w:left", "0")
	pgMar.CreateAttr("w:header", "0")
	pgMar.CreateAttr("w:footer", "0")
	pgMar.CreateAttr("w:gutter", "0")
}
