package raster

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// fontSet holds the glyph fonts of the raster backend. The embedded Go
// fonts cover latin scripts, resumes in other scripts should point
// document.raster.font_path at a font file covering theirs.
type fontSet struct {
	regular *opentype.Font
	bold    *opentype.Font

	faces map[faceKey]font.Face
}

type faceKey struct {
	size float64
	bold bool
}

func loadFonts(fontPath string) (*fontSet, error) {
	fs := &fontSet{faces: make(map[faceKey]font.Face)}

	if fontPath != "" {
		data, err := os.ReadFile(fontPath)
		if err != nil {
			return nil, fmt.Errorf("unable to read font file: %w", err)
		}
		f, err := opentype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("unable to parse font file %q: %w", fontPath, err)
		}
		fs.regular, fs.bold = f, f
		return fs, nil
	}

	reg, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("unable to parse regular font: %w", err)
	}
	bld, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("unable to parse bold font: %w", err)
	}
	fs.regular, fs.bold = reg, bld
	return fs, nil
}

// face returns a cached face sized in pixels.
func (fs *fontSet) face(sizePx float64, bold bool) (font.Face, error) {
	key := faceKey{size: sizePx, bold: bold}
	if f, ok := fs.faces[key]; ok {
		return f, nil
	}
	src := fs.regular
	if bold && fs.bold != nil {
		src = fs.bold
	}
	f, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    sizePx,
		DPI:     72, // size is interpreted directly in pixels
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to create drawing face: %w", err)
	}
	fs.faces[key] = f
	return f, nil
}
