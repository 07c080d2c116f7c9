package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/beevik/etree"
	fixzip "github.com/hidez8891/zip"
	"go.uber.org/zap"

	"resumec/config"
	"resumec/content"
	"resumec/style"
)

// Generate creates the DOCX output file with real text flow, native
// paragraphs and tables built from the paginated block sequence.
func Generate(ctx context.Context, c *content.Content, outputPath string, cfg *config.DocumentConfig, log *zap.Logger) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	log.Info("Generating DOCX", zap.String("output", outputPath))

	var media []mediaRel
	var imageExts []string
	var avatarData []byte
	var avatarExt string
	if c.Avatar != nil {
		avatarData, avatarExt = c.Avatar.Data, c.Avatar.Ext
		if avatarExt == "svg" {
			// vector avatars are rasterized at twice the display box
			data, err := c.Avatar.PNG(int(style.PtToPx(avatarMaxWidthPt))*2, int(style.PtToPx(avatarMaxHeightPt))*2)
			if err != nil {
				return fmt.Errorf("unable to rasterize avatar: %w", err)
			}
			avatarData, avatarExt = data, "png"
		}
		media = append(media, mediaRel{ID: avatarRelID, Target: "media/avatar." + avatarExt})
		imageExts = append(imageExts, avatarExt)
	}

	return writePackage(c, outputPath, cfg, func(zw *zip.Writer) error {
		if err := writeXMLToZip(zw, "[Content_Types].xml", buildContentTypes(imageExts)); err != nil {
			return fmt.Errorf("unable to write content types: %w", err)
		}
		if err := writeXMLToZip(zw, "_rels/.rels", buildPackageRels()); err != nil {
			return fmt.Errorf("unable to write package relationships: %w", err)
		}
		if err := writeXMLToZip(zw, "word/document.xml", buildDocument(c)); err != nil {
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
		if avatarData != nil {
			if err := writeDataToZip(zw, "word/media/avatar."+avatarExt, avatarData); err != nil {
				return fmt.Errorf("unable to write avatar: %w", err)
			}
		}
		return nil
	})
}

// writePackage assembles a DOCX zip in the content work directory and moves
// it to the final location, optionally stripping data descriptors which
// some word processors choke on.
func writePackage(c *content.Content, outputPath string, cfg *config.DocumentConfig, fill func(*zip.Writer) error) error {
	_, tmpName := filepath.Split(outputPath)
	tmpName = filepath.Join(c.WorkDir, tmpName)

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	f, err := os.Create(tmpName)
	if err != nil {
		return fmt.Errorf("unable to create output file: %w", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	defer zw.Close()

	if err := fill(zw); err != nil {
		return err
	}

	// make sure buffers are flushed before continuing
	if err := zw.Close(); err != nil {
		return fmt.Errorf("unable to close output archive: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("unable to finalize output file: %w", err)
	}
	// clean temporary file
	defer os.Remove(tmpName)

	if cfg.FixZip {
		return copyZipWithoutDataDescriptors(tmpName, outputPath)
	}
	return copyFile(tmpName, outputPath)
}

func writeXMLToZip(zw *zip.Writer, name string, doc *etree.Document) error {
	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return err
	}
	return writeDataToZip(zw, name, buf.Bytes())
}

func writeDataToZip(zw *zip.Writer, name string, data []byte) error {
	w, err := zw.Create(name)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func copyZipWithoutDataDescriptors(from, to string) error {

	out, err := os.Create(to)
	if err != nil {
		return fmt.Errorf("unable to create target file (%s): %w", to, err)
	}
	defer out.Close()

	r, err := fixzip.OpenReader(from)
	if err != nil {
		return fmt.Errorf("unable to read archive file (%s): %w", from, err)
	}
	defer r.Close()

	w := fixzip.NewWriter(out)
	defer w.Close()

	for _, file := range r.File {
		// unset data descriptor flag.
		file.Flags &= ^fixzip.FlagDataDescriptor

		// copy zip entry
		if err := w.CopyFile(file); err != nil {
			return fmt.Errorf("unable to write target file (%s): %w", to, err)
		}
	}
	return nil
}

func copyFile(src, dst string) error {

	sourceFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source file: %w", err)
	}
	defer sourceFile.Close()

	destinationFile, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create destination file: %w", err)
	}
	defer destinationFile.Close()

	if _, err = io.Copy(destinationFile, sourceFile); err != nil {
		return fmt.Errorf("failed to copy file contents: %w", err)
	}

	if err = destinationFile.Close(); err != nil {
		return fmt.Errorf("failed to close destination file: %w", err)
	}
	return nil
}
