package raster

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"go.uber.org/zap"

	"resumec/blocks"
	"resumec/common"
	"resumec/config"
	"resumec/content"
	"resumec/jpegquality"
	"resumec/layout"
	"resumec/resume"
	"resumec/style"
)

func setupTestContent(t *testing.T, format common.OutputFmt) *content.Content {
	t.Helper()

	doc := &resume.Document{}
	doc.Profile.Name = "Zhang Wei"
	doc.Profile.Title = "Backend Engineer"
	doc.Education = []resume.Education{
		{School: "Tsinghua University", Degree: "BSc", StartDate: "2015-09", EndDate: "2019-06"},
	}
	doc.Normalize()

	resolved := style.Resolve(doc.Style)
	seq := blocks.Build(doc, blocks.Options{})

	m, err := layout.NewMeasurer()
	if err != nil {
		t.Fatalf("measurer: %v", err)
	}
	res := layout.Compute(seq, resolved, m)

	return &content.Content{
		SrcName:      "test.yaml",
		OutputFormat: format,
		Doc:          doc,
		Style:        resolved,
		Seq:          seq,
		Layout:       res,
		Pages:        res.Pages(seq),
		Measurer:     m,
		WorkDir:      t.TempDir(),
	}
}

func TestRenderAll_CanvasDimensions(t *testing.T) {
	c := setupTestContent(t, common.OutputFmtPng)
	cfg := &config.DocumentConfig{Raster: config.RasterConfig{Scale: 2}}

	pages, err := renderAll(context.Background(), c, cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("renderAll() error = %v", err)
	}
	if len(pages) == 0 {
		t.Fatal("no pages rendered")
	}

	bounds := pages[0].Bounds()
	if bounds.Dx() != 1588 || bounds.Dy() != 2246 {
		t.Errorf("canvas = %dx%d, want 1588x2246 at scale 2", bounds.Dx(), bounds.Dy())
	}
}

func TestRenderAll_DefaultScale(t *testing.T) {
	c := setupTestContent(t, common.OutputFmtPng)

	pages, err := renderAll(context.Background(), c, &config.DocumentConfig{}, zap.NewNop())
	if err != nil {
		t.Fatalf("renderAll() error = %v", err)
	}

	want := int(math.Round(style.PageWidthPx * config.DefaultRasterScale))
	if got := pages[0].Bounds().Dx(); got != want {
		t.Errorf("width = %d, want %d at default scale", got, want)
	}
}

func TestRenderAll_EmptyDocumentStillProducesAPage(t *testing.T) {
	c := setupTestContent(t, common.OutputFmtPng)
	c.Seq = nil
	c.Pages = nil

	pages, err := renderAll(context.Background(), c, &config.DocumentConfig{Raster: config.RasterConfig{Scale: 1}}, zap.NewNop())
	if err != nil {
		t.Fatalf("renderAll() error = %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("pages = %d, want one blank page", len(pages))
	}

	// blank page is all white
	if got := pages[0].RGBAAt(10, 10); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("blank page pixel = %v, want white", got)
	}
}

func TestRenderAll_DrawsInk(t *testing.T) {
	c := setupTestContent(t, common.OutputFmtPng)

	pages, err := renderAll(context.Background(), c, &config.DocumentConfig{Raster: config.RasterConfig{Scale: 1}}, zap.NewNop())
	if err != nil {
		t.Fatalf("renderAll() error = %v", err)
	}

	white := color.RGBA{255, 255, 255, 255}
	inked := false
	img := pages[0]
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y && !inked; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if img.RGBAAt(x, y) != white {
				inked = true
				break
			}
		}
	}
	if !inked {
		t.Error("rendered page has no ink at all")
	}
}

func TestRenderAll_Cancelled(t *testing.T) {
	c := setupTestContent(t, common.OutputFmtPng)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := renderAll(ctx, c, &config.DocumentConfig{}, zap.NewNop()); err == nil {
		t.Fatal("expected context error")
	}
}

func TestGenerate_PNG(t *testing.T) {
	c := setupTestContent(t, common.OutputFmtPng)
	out := filepath.Join(t.TempDir(), "resume.png")

	cfg := &config.DocumentConfig{Raster: config.RasterConfig{Scale: 1}}
	if err := Generate(context.Background(), c, out, cfg, zap.NewNop()); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if img.Bounds().Dx() != style.PageWidthPx {
		t.Errorf("width = %d, want %d", img.Bounds().Dx(), style.PageWidthPx)
	}
}

func TestWritePNGs_MultiPageNaming(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "resume.png")

	page := image.NewRGBA(image.Rect(0, 0, 10, 10))
	if err := writePNGs([]*image.RGBA{page, page}, out, zap.NewNop()); err != nil {
		t.Fatalf("writePNGs() error = %v", err)
	}

	for _, name := range []string{"resume-1.png", "resume-2.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("page file %s missing: %v", name, err)
		}
	}
	if _, err := os.Stat(out); err == nil {
		t.Error("unsuffixed name written for multi page output")
	}
}

func TestGenerate_PDF(t *testing.T) {
	c := setupTestContent(t, common.OutputFmtPdf)
	out := filepath.Join(t.TempDir(), "resume.pdf")

	cfg := &config.DocumentConfig{Raster: config.RasterConfig{Scale: 1, JPEGQuality: 85}}
	if err := Generate(context.Background(), c, out, cfg, zap.NewNop()); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-1.4\n")) {
		t.Error("output does not start with a PDF header")
	}
	if !bytes.HasSuffix(data, []byte("%%EOF\n")) {
		t.Error("output does not end with EOF marker")
	}
}

func TestWritePDFFile_EmbeddedQuality(t *testing.T) {
	c := setupTestContent(t, common.OutputFmtPdf)
	out := filepath.Join(t.TempDir(), "resume.pdf")

	const target = 85
	cfg := &config.DocumentConfig{Raster: config.RasterConfig{Scale: 1, JPEGQuality: target}}
	if err := Generate(context.Background(), c, out, cfg, zap.NewNop()); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	// pull the first image stream out of the document
	m := regexp.MustCompile(`/Filter /DCTDecode /Length (\d+) >>\nstream\n`).FindSubmatchIndex(data)
	if m == nil {
		t.Fatal("no image stream in output")
	}
	length, err := strconv.Atoi(string(data[m[2]:m[3]]))
	if err != nil {
		t.Fatalf("stream length: %v", err)
	}
	stream := data[m[1] : m[1]+length]

	qr, err := jpegquality.NewWithBytes(stream)
	if err != nil {
		t.Fatalf("embedded stream is not a readable JPEG: %v", err)
	}
	if got := qr.Quality(); got < target-qualityTolerance || got > target+qualityTolerance {
		t.Errorf("embedded quality = %d, want within %d of %d", got, qualityTolerance, target)
	}
}

func TestWritePDF_Structure(t *testing.T) {
	var buf bytes.Buffer
	pages := []pdfPage{
		{jpeg: []byte("fake-jpeg-1"), w: 794, h: 1123},
		{jpeg: []byte("fake-jpeg-2"), w: 794, h: 1123},
	}
	if err := writePDF(&buf, pages); err != nil {
		t.Fatalf("writePDF() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"%PDF-1.4",
		"/Type /Catalog",
		"/Type /Pages /Kids [3 0 R 6 0 R] /Count 2",
		"/MediaBox [0 0 595.28 841.89]",
		"/Filter /DCTDecode",
		"xref",
		"trailer",
		"startxref",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("writePDF() output missing %q", want)
		}
	}

	// 2 fixed objects plus 3 per page
	if got := strings.Count(out, "endobj"); got != 8 {
		t.Errorf("objects = %d, want 8", got)
	}
	if got := strings.Count(out, "/Im0 Do"); got != 2 {
		t.Errorf("image placements = %d, want 2", got)
	}
}

func TestRenderPageImages(t *testing.T) {
	c := setupTestContent(t, common.OutputFmtImgdocx)

	cfg := &config.DocumentConfig{Raster: config.RasterConfig{Scale: 1}}
	pages, err := RenderPageImages(context.Background(), c, cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("RenderPageImages() error = %v", err)
	}
	if len(pages) != len(c.Pages) {
		t.Errorf("pages = %d, want %d", len(pages), len(c.Pages))
	}
	for i, p := range pages {
		if p.Ext != "png" {
			t.Errorf("page %d ext = %q, want png", i, p.Ext)
		}
		if _, err := png.Decode(bytes.NewReader(p.Data)); err != nil {
			t.Errorf("page %d does not decode: %v", i, err)
		}
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"2E74B5", color.RGBA{0x2E, 0x74, 0xB5, 255}},
		{"FFFFFF", color.RGBA{255, 255, 255, 255}},
		{"000000", color.RGBA{0, 0, 0, 255}},
		{"", color.RGBA{A: 255}},
		{"XYZ123", color.RGBA{A: 255}},
		{"FFF", color.RGBA{A: 255}},
	}
	for _, tt := range tests {
		if got := parseHex(tt.in); got != tt.want {
			t.Errorf("parseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
