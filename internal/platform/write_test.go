package platform

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestUniquePath(t *testing.T) {
	dir := t.TempDir()

	first, err := UniquePath(dir, "merged.pdf")
	if err != nil {
		t.Fatalf("UniquePath() error = %v", err)
	}
	if first != filepath.Join(dir, "merged.pdf") {
		t.Errorf("UniquePath() = %s, want merged.pdf in %s", first, dir)
	}

	if err := os.WriteFile(first, []byte("x"), DefaultFilePermissions); err != nil {
		t.Fatal(err)
	}

	second, err := UniquePath(dir, "merged.pdf")
	if err != nil {
		t.Fatalf("UniquePath() error = %v", err)
	}
	if filepath.Base(second) != "merged (1).pdf" {
		t.Errorf("UniquePath() = %s, want merged (1).pdf", filepath.Base(second))
	}
}

func TestUniquePath_StripsDirectories(t *testing.T) {
	dir := t.TempDir()

	path, err := UniquePath(dir, "../../escape.pdf")
	if err != nil {
		t.Fatalf("UniquePath() error = %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("UniquePath() escaped target dir: %s", path)
	}
}

func TestUniquePath_InvalidName(t *testing.T) {
	for _, name := range []string{"", "."} {
		if _, err := UniquePath(t.TempDir(), name); err == nil {
			t.Errorf("UniquePath(%q) expected error", name)
		}
	}
}

func TestWriteFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	data := []byte("%PDF-1.7 test")

	path1, err := WriteFile(dir, "Split_1.pdf", data)
	if err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	path2, err := WriteFile(dir, "Split_1.pdf", data)
	if err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if path1 == path2 {
		t.Fatalf("WriteFile() overwrote existing file: %s", path1)
	}

	for _, p := range []string{path1, path2} {
		got, err := os.ReadFile(p)
		if err != nil {
			t.Fatalf("ReadFile(%s) error = %v", p, err)
		}
		if !bytes.Equal(got, data) {
			t.Errorf("content of %s = %q, want %q", p, got, data)
		}
	}
}

func TestWritePreviewFile(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())

	path, err := WritePreviewFile("merged.pdf", []byte("%PDF-1.7"))
	if err != nil {
		t.Fatalf("WritePreviewFile() error = %v", err)
	}
	if filepath.Dir(path) != PreviewDir() {
		t.Errorf("preview written to %s, want %s", filepath.Dir(path), PreviewDir())
	}

	if err := CleanPreviewDir(); err != nil {
		t.Fatalf("CleanPreviewDir() error = %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("preview file still exists after clean")
	}
}
