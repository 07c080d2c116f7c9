// Package content turns a parsed resume document into everything the
// output generators consume: resolved style, the flattened block sequence
// and its pagination. Generators never touch the document directly.
package content

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"resumec/blocks"
	"resumec/common"
	"resumec/jpegquality"
	"resumec/layout"
	"resumec/misc"
	"resumec/resume"
	"resumec/state"
	"resumec/style"
	"resumec/utils/images"
)

// Content is the fully prepared input of a single rendering run.
type Content struct {
	SrcName      string
	OutputFormat common.OutputFmt

	Doc      *resume.Document
	Style    style.Resolved
	Seq      []blocks.Block
	Layout   layout.Result
	Pages    [][]blocks.Block
	Measurer *layout.Measurer

	// Avatar is nil when the profile carries none or loading failed.
	Avatar *images.Avatar

	WorkDir string
}

// Prepare reads, parses and lays out resume content for rendering.
func Prepare(ctx context.Context, r io.Reader, srcName string, outputFormat common.OutputFmt, log *zap.Logger) (*Content, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	env := state.EnvFromContext(ctx)

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read source: %w", err)
	}

	doc, err := resume.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("unable to parse resume: %w", err)
	}
	doc.SrcName = srcName

	tmpDir, err := os.MkdirTemp("", misc.GetAppName()+"-")
	if err != nil {
		return nil, fmt.Errorf("unable to create temporary directory: %w", err)
	}

	// Save normalized document for debugging
	if env.Rpt != nil {
		env.Rpt.Store(fmt.Sprintf("%s-workdir", misc.GetAppName()), tmpDir)
		if err := doc.Save(filepath.Join(tmpDir, filepath.Base(srcName))); err != nil {
			return nil, fmt.Errorf("unable to write normalized doc for debugging: %w", err)
		}
	}

	resolved := style.Resolve(doc.Style)
	seq := blocks.Build(doc, blocks.Options{})

	m, err := layout.NewMeasurer()
	if err != nil {
		return nil, fmt.Errorf("unable to initialize measurer: %w", err)
	}
	res := layout.Compute(seq, resolved, m)

	c := &Content{
		SrcName:      srcName,
		OutputFormat: outputFormat,
		Doc:          doc,
		Style:        resolved,
		Seq:          seq,
		Layout:       res,
		Pages:        res.Pages(seq),
		Measurer:     m,
		WorkDir:      tmpDir,
	}

	c.Avatar = loadAvatar(doc, srcName, log)

	// Save prepared layout for debugging
	if env.Rpt != nil {
		if err := os.WriteFile(filepath.Join(tmpDir, filepath.Base(srcName)+"_prepared"), []byte(c.String()), 0644); err != nil {
			return nil, fmt.Errorf("unable to write prepared doc for debugging: %w", err)
		}
	}

	return c, nil
}

// loadAvatar resolves and loads the profile photo. A missing or broken
// avatar never fails the run, the resume renders without it.
func loadAvatar(doc *resume.Document, srcName string, log *zap.Logger) *images.Avatar {
	if !doc.Profile.ShowAvatar || doc.Profile.Avatar == "" {
		return nil
	}

	path := doc.Profile.Avatar
	if !filepath.IsAbs(path) {
		path = filepath.Join(filepath.Dir(srcName), path)
	}

	a, err := images.LoadAvatar(path)
	if err != nil {
		log.Warn("Unable to load avatar, rendering without it", zap.String("path", path), zap.Error(err))
		return nil
	}
	log.Debug("Avatar loaded", zap.String("path", path), zap.String("type", a.Ext),
		zap.Int("width", a.Width), zap.Int("height", a.Height))

	if a.Ext == "jpeg" {
		if qr, err := jpegquality.NewWithBytes(a.Data); err == nil {
			log.Debug("Avatar JPEG quality", zap.Int("quality", qr.Quality()))
		}
	}
	return a
}
