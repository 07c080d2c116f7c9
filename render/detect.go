package render

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/matchers"
)

// isArchiveFile checks file magic rather than extension, resume bundles are
// plain zip archives whatever they are called.
func isArchiveFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	head := make([]byte, 262)
	n, err := f.Read(head)
	if err != nil && err != io.EOF {
		return false, err
	}

	kind, err := filetype.Match(head[:n])
	if err != nil {
		return false, err
	}
	return kind == matchers.TypeZip, nil
}

// isResumeFile recognizes resume documents by extension. Content errors are
// reported later by the parser where we can say what is actually wrong.
func isResumeFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func isResumeInArchive(f *zip.File) bool {
	return isResumeFile(f.FileHeader.Name)
}
