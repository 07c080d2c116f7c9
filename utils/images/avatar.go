package images

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"math"
	"os"

	"github.com/disintegration/imaging"
	"github.com/h2non/filetype"
	"github.com/h2non/filetype/matchers"
	"github.com/srwiley/oksvg"
)

// Avatar is a decoded portrait photo ready for embedding. Data keeps the
// original encoded bytes, word processor output embeds them untouched.
type Avatar struct {
	Data   []byte
	Ext    string // "png", "jpeg" or "svg"
	Width  int
	Height int
}

// LoadAvatar reads and sniffs a portrait image. PNG, JPEG and SVG are
// accepted, content sniffing decides, the file extension is ignored.
func LoadAvatar(path string) (*Avatar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read avatar: %w", err)
	}

	kind, err := filetype.Match(data)
	if err != nil {
		return nil, fmt.Errorf("unable to detect avatar type: %w", err)
	}

	switch kind {
	case matchers.TypePng, matchers.TypeJpeg:
	default:
		if looksLikeSVG(data) {
			return loadSVGAvatar(data)
		}
		return nil, fmt.Errorf("unsupported avatar type %q, want png, jpeg or svg", kind.Extension)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("unable to decode avatar: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("avatar has degenerate dimensions %dx%d", cfg.Width, cfg.Height)
	}

	return &Avatar{Data: data, Ext: format, Width: cfg.Width, Height: cfg.Height}, nil
}

// looksLikeSVG sniffs SVG the cheap way, filetype only matches binary magic.
func looksLikeSVG(data []byte) bool {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	return bytes.Contains(head, []byte("<svg"))
}

func loadSVGAvatar(data []byte) (*Avatar, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("unable to parse svg avatar: %w", err)
	}
	w := int(math.Ceil(icon.ViewBox.W))
	h := int(math.Ceil(icon.ViewBox.H))
	if w <= 0 || h <= 0 {
		w, h = defaultSVGSize, defaultSVGSize
	}
	return &Avatar{Data: data, Ext: "svg", Width: w, Height: h}, nil
}

// Fit returns the dimensions of the avatar scaled down to the given box,
// keeping aspect ratio. An avatar already inside the box keeps its size.
func (a *Avatar) Fit(maxW, maxH float64) (float64, float64) {
	w, h := float64(a.Width), float64(a.Height)
	scale := math.Min(maxW/w, maxH/h)
	if scale >= 1 {
		return w, h
	}
	return w * scale, h * scale
}

// Scaled decodes and resizes the avatar to fit into w by h pixels.
func (a *Avatar) Scaled(w, h int) (image.Image, error) {
	if a.Ext == "svg" {
		return RasterizeSVGToImage(a.Data, w, h)
	}
	img, _, err := image.Decode(bytes.NewReader(a.Data))
	if err != nil {
		return nil, fmt.Errorf("unable to decode avatar: %w", err)
	}
	return imaging.Fit(img, w, h, imaging.Lanczos), nil
}

// PNG returns the avatar as encoded PNG at the given size. Word processor
// packages cannot embed SVG directly, so vector avatars go through this.
func (a *Avatar) PNG(w, h int) ([]byte, error) {
	img, err := a.Scaled(w, h)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("unable to encode avatar: %w", err)
	}
	return buf.Bytes(), nil
}
