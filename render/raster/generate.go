// Package raster renders resume pages to bitmaps and packages them as PNG
// files, a PDF, or page images for the image based DOCX variant.
package raster

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"resumec/blocks"
	"resumec/common"
	"resumec/config"
	"resumec/content"
	"resumec/jpegquality"
	"resumec/render/docx"
	"resumec/utils/images"
)

// quantization table rounding makes the DQT estimate drift a few points
// from the encoder setting
const qualityTolerance = 5

// Generate creates raster output, dispatching on the prepared content's
// format (PNG per page or a single PDF).
func Generate(ctx context.Context, c *content.Content, outputPath string, cfg *config.DocumentConfig, log *zap.Logger) error {
	pages, err := renderAll(ctx, c, cfg, log)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	switch c.OutputFormat {
	case common.OutputFmtPng:
		return writePNGs(pages, outputPath, log)
	case common.OutputFmtPdf:
		return writePDFFile(pages, outputPath, cfg, log)
	default:
		return fmt.Errorf("unsupported raster format %s", c.OutputFormat)
	}
}

// RenderPageImages renders every page and returns them PNG encoded for the
// image based DOCX package.
func RenderPageImages(ctx context.Context, c *content.Content, cfg *config.DocumentConfig, log *zap.Logger) ([]docx.PageImage, error) {
	pages, err := renderAll(ctx, c, cfg, log)
	if err != nil {
		return nil, err
	}

	out := make([]docx.PageImage, 0, len(pages))
	for i, page := range pages {
		data, err := encodePNG(page)
		if err != nil {
			return nil, fmt.Errorf("unable to encode page %d: %w", i+1, err)
		}
		out = append(out, docx.PageImage{Data: data, Ext: "png"})
	}
	return out, nil
}

// renderAll rasterizes every laid out page at the capture scale. A resume
// with no pages still produces one blank page, outputs are never empty.
func renderAll(ctx context.Context, c *content.Content, cfg *config.DocumentConfig, log *zap.Logger) ([]*image.RGBA, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fs, err := loadFonts(cfg.Raster.FontPath)
	if err != nil {
		return nil, err
	}

	scale := cfg.Raster.Scale
	if scale <= 0 {
		scale = config.DefaultRasterScale
	}

	log.Debug("Rasterizing pages", zap.Int("pages", len(c.Pages)), zap.Float64("scale", scale))

	pages := c.Pages
	if len(pages) == 0 {
		pages = make([][]blocks.Block, 1)
	}

	out := make([]*image.RGBA, 0, len(pages))
	for _, page := range pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out = append(out, renderPage(c, page, fs, scale))
	}
	return out, nil
}

func encodePNG(img *image.RGBA) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writePNGs writes one file per page. A single page keeps the requested
// name, more pages get a 1-based suffix before the extension.
func writePNGs(pages []*image.RGBA, outputPath string, log *zap.Logger) error {
	for i, page := range pages {
		name := outputPath
		if len(pages) > 1 {
			ext := filepath.Ext(outputPath)
			name = strings.TrimSuffix(outputPath, ext) + fmt.Sprintf("-%d", i+1) + ext
		}

		data, err := encodePNG(page)
		if err != nil {
			return fmt.Errorf("unable to encode page %d: %w", i+1, err)
		}
		if err := os.WriteFile(name, data, 0644); err != nil {
			return fmt.Errorf("unable to write page %d: %w", i+1, err)
		}
		log.Info("Page written", zap.String("file", name))
	}
	return nil
}

func writePDFFile(pages []*image.RGBA, outputPath string, cfg *config.DocumentConfig, log *zap.Logger) error {
	quality := cfg.Raster.JPEGQuality
	if quality <= 0 {
		quality = config.DefaultJPEGQuality
	}

	scale := cfg.Raster.Scale
	if scale <= 0 {
		scale = config.DefaultRasterScale
	}
	density := int16(96 * scale)

	pdfPages := make([]pdfPage, 0, len(pages))
	for i, page := range pages {
		data, err := images.EncodeJPEGWithDPI(page, quality, images.DpiPxPerInch, density, density)
		if err != nil {
			return fmt.Errorf("unable to encode page %d: %w", i+1, err)
		}
		if qr, err := jpegquality.NewWithBytes(data); err == nil && qr.Quality() < quality-qualityTolerance {
			log.Warn("Embedded page quality below target",
				zap.Int("page", i+1), zap.Int("estimated", qr.Quality()), zap.Int("target", quality))
		}
		bounds := page.Bounds()
		pdfPages = append(pdfPages, pdfPage{jpeg: data, w: bounds.Dx(), h: bounds.Dy()})
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("unable to create output file: %w", err)
	}
	defer f.Close()

	if err := writePDF(f, pdfPages); err != nil {
		return fmt.Errorf("unable to write pdf: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("unable to finalize output file: %w", err)
	}

	log.Info("PDF written", zap.String("file", outputPath), zap.Int("pages", len(pdfPages)))
	return nil
}
