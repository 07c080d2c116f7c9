package archive

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeBatchZip builds an archive shaped like a batch of resume documents
// with some unrelated files mixed in.
func writeBatchZip(t *testing.T, entries map[string]string) string {
	t.Helper()

	zipPath := filepath.Join(t.TempDir(), "batch.zip")
	zipFile, err := os.Create(zipPath)
	if err != nil {
		t.Fatalf("create zip: %v", err)
	}
	defer zipFile.Close()

	w := zip.NewWriter(zipFile)
	for name, content := range entries {
		fw, err := w.Create(name)
		if err != nil {
			t.Fatalf("create %s in zip: %v", name, err)
		}
		if _, err := fw.Write([]byte(content)); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return zipPath
}

func TestWalk(t *testing.T) {
	zipPath := writeBatchZip(t, map[string]string{
		"resumes/zhang-wei.yaml": "profile:\n  name: 张伟\n",
		"resumes/li-na.yaml":     "profile:\n  name: 李娜\n",
		"drafts/old.yaml":        "profile:\n  name: draft\n",
		"readme.txt":             "batch export",
	})

	t.Run("prefix selects the resume directory", func(t *testing.T) {
		var visited []string
		err := Walk(zipPath, "resumes/", func(archive string, file *zip.File) error {
			if archive != zipPath {
				t.Errorf("archive = %s, want %s", archive, zipPath)
			}
			visited = append(visited, file.Name)
			return nil
		})
		if err != nil {
			t.Errorf("Walk() error = %v", err)
		}
		if len(visited) != 2 {
			t.Errorf("visited %d files, want 2: %v", len(visited), visited)
		}
	})

	t.Run("no matching prefix visits nothing", func(t *testing.T) {
		count := 0
		if err := Walk(zipPath, "exports/", func(string, *zip.File) error { count++; return nil }); err != nil {
			t.Errorf("Walk() error = %v", err)
		}
		if count != 0 {
			t.Errorf("visited %d files, want 0", count)
		}
	})

	t.Run("empty prefix visits everything", func(t *testing.T) {
		count := 0
		if err := Walk(zipPath, "", func(string, *zip.File) error { count++; return nil }); err != nil {
			t.Errorf("Walk() error = %v", err)
		}
		if count != 4 {
			t.Errorf("visited %d files, want 4", count)
		}
	})

	t.Run("prefix matching is case sensitive", func(t *testing.T) {
		count := 0
		if err := Walk(zipPath, "Resumes/", func(string, *zip.File) error { count++; return nil }); err != nil {
			t.Errorf("Walk() error = %v", err)
		}
		if count != 0 {
			t.Errorf("visited %d files, want 0", count)
		}
	})
}

func TestWalk_CallbackErrorStops(t *testing.T) {
	zipPath := writeBatchZip(t, map[string]string{
		"resumes/a.yaml": "a",
		"resumes/b.yaml": "b",
		"resumes/c.yaml": "c",
	})

	stopErr := errors.New("stop walking")
	visited := 0
	err := Walk(zipPath, "resumes/", func(string, *zip.File) error {
		visited++
		if visited == 2 {
			return stopErr
		}
		return nil
	})
	if err != stopErr {
		t.Errorf("Walk() error = %v, want %v", err, stopErr)
	}
	if visited != 2 {
		t.Errorf("visited %d files after stop, want 2", visited)
	}
}

func TestWalk_SkipsDirectoryEntries(t *testing.T) {
	zipPath := filepath.Join(t.TempDir(), "batch.zip")
	zipFile, err := os.Create(zipPath)
	if err != nil {
		t.Fatalf("create zip: %v", err)
	}

	w := zip.NewWriter(zipFile)
	dirHeader := &zip.FileHeader{Name: "resumes/"}
	dirHeader.SetMode(os.ModeDir | 0755)
	if _, err := w.CreateHeader(dirHeader); err != nil {
		t.Fatalf("create directory entry: %v", err)
	}
	fw, err := w.Create("resumes/zhang-wei.yaml")
	if err != nil {
		t.Fatalf("create file: %v", err)
	}
	fw.Write([]byte("profile:\n"))
	w.Close()
	zipFile.Close()

	var visited []string
	if err := Walk(zipPath, "resumes/", func(_ string, file *zip.File) error {
		visited = append(visited, file.Name)
		return nil
	}); err != nil {
		t.Errorf("Walk() error = %v", err)
	}
	if len(visited) != 1 || visited[0] != "resumes/zhang-wei.yaml" {
		t.Errorf("visited = %v, want the file only", visited)
	}
}

func TestWalk_FileContent(t *testing.T) {
	want := []byte("profile:\n  name: 张伟\n")
	zipPath := writeBatchZip(t, map[string]string{"zhang-wei.yaml": string(want)})

	err := Walk(zipPath, "", func(_ string, file *zip.File) error {
		rc, err := file.Open()
		if err != nil {
			return err
		}
		defer rc.Close()

		var buf bytes.Buffer
		if _, err := buf.ReadFrom(rc); err != nil {
			return err
		}
		if !bytes.Equal(buf.Bytes(), want) {
			t.Errorf("content = %q, want %q", buf.Bytes(), want)
		}
		return nil
	})
	if err != nil {
		t.Errorf("Walk() error = %v", err)
	}
}

func TestWalk_InvalidArchive(t *testing.T) {
	if err := Walk("/nonexistent/batch.zip", "", func(string, *zip.File) error { return nil }); err == nil {
		t.Error("expected error for a missing archive")
	}

	notZip := filepath.Join(t.TempDir(), "not-a-zip.zip")
	if err := os.WriteFile(notZip, []byte("profile:\n  name: 张伟\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := Walk(notZip, "", func(string, *zip.File) error { return nil }); err == nil {
		t.Error("expected error for a non zip file")
	}
}
