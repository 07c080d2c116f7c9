// Package layout estimates rendered block heights and partitions the block
// sequence into pages. Heights are computed in CSS pixels at the unscaled
// page width, with the same resolved style values the preview uses.
package layout

import (
	"fmt"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"resumec/style"
)

// Measurer estimates text extents. Latin glyph advances come from embedded
// metric fonts, runes outside their coverage (CJK mostly) are counted as one
// em each, which is how CJK resumes actually set.
type Measurer struct {
	regular *opentype.Font
	bold    *opentype.Font

	faces map[faceKey]font.Face
}

type faceKey struct {
	size float64
	bold bool
}

func NewMeasurer() (*Measurer, error) {
	reg, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("unable to parse regular metric font: %w", err)
	}
	bld, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("unable to parse bold metric font: %w", err)
	}
	return &Measurer{regular: reg, bold: bld, faces: make(map[faceKey]font.Face)}, nil
}

func (m *Measurer) face(sizePt float64, bold bool) (font.Face, error) {
	key := faceKey{size: sizePt, bold: bold}
	if f, ok := m.faces[key]; ok {
		return f, nil
	}
	src := m.regular
	if bold {
		src = m.bold
	}
	f, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    sizePt,
		DPI:     style.PxPerInch,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to create metric face: %w", err)
	}
	m.faces[key] = f
	return f, nil
}

// LineWidth returns the advance width of a single line of text in pixels.
func (m *Measurer) LineWidth(text string, sizePt float64, bold bool) float64 {
	f, err := m.face(sizePt, bold)
	if err != nil {
		// degenerate fallback, same heuristic flow layout engines use
		return sizePt * 0.55 * float64(len([]rune(text))+1)
	}

	em := style.PtToPx(sizePt)
	var w float64
	for _, r := range text {
		if adv, ok := f.GlyphAdvance(r); ok && adv > 0 {
			w += float64(adv) / 64
		} else {
			w += em
		}
	}
	return w
}

// RuneWidth returns the advance of a single rune in pixels.
func (m *Measurer) RuneWidth(r rune, sizePt float64, bold bool) float64 {
	f, err := m.face(sizePt, bold)
	if err == nil {
		if adv, ok := f.GlyphAdvance(r); ok && adv > 0 {
			return float64(adv) / 64
		}
	}
	return style.PtToPx(sizePt)
}

// WrapLines breaks text into lines not exceeding widthPx. Wrapping is
// break-anywhere, which matches CJK text behavior and slightly
// overestimates latin word wrap, erring on the safe side for pagination.
func (m *Measurer) WrapLines(text string, sizePt float64, bold bool, widthPx float64) []string {
	if text == "" {
		return nil
	}
	if widthPx <= 0 {
		return strings.Split(text, "\n")
	}

	var lines []string
	for _, para := range strings.Split(text, "\n") {
		var line []rune
		var w float64
		for _, r := range para {
			a := m.RuneWidth(r, sizePt, bold)
			if w > 0 && w+a > widthPx {
				lines = append(lines, string(line))
				line = line[:0]
				w = 0
			}
			line = append(line, r)
			w += a
		}
		lines = append(lines, string(line))
	}
	return lines
}

// LineCount estimates how many lines text occupies when wrapped at widthPx.
func (m *Measurer) LineCount(text string, sizePt float64, bold bool, widthPx float64) int {
	return len(m.WrapLines(text, sizePt, bold, widthPx))
}
