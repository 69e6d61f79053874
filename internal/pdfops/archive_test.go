package pdfops

import (
	"bytes"
	"io"
	"testing"

	"github.com/klauspost/compress/zip"

	"github.com/pdftoolkit/pdf-toolkit/internal/model"
)

func TestWriteArchive(t *testing.T) {
	artifacts := []*model.Artifact{
		model.NewSplitArtifact(1, []byte("first"), 1),
		model.NewSplitArtifact(2, []byte("second"), 1),
	}
	// force a name clash
	artifacts = append(artifacts, &model.Artifact{FileName: "Split_1.pdf", Data: []byte("third")})

	var buf bytes.Buffer
	if err := WriteArchive(&buf, artifacts); err != nil {
		t.Fatalf("write archive: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("reading archive: %v", err)
	}

	expected := map[string]string{
		"Split_1.pdf":     "first",
		"Split_2.pdf":     "second",
		"Split_1 (1).pdf": "third",
	}
	if len(zr.File) != len(expected) {
		t.Fatalf("Expected %d entries, got %d", len(expected), len(zr.File))
	}

	for _, f := range zr.File {
		want, ok := expected[f.Name]
		if !ok {
			t.Errorf("Unexpected entry %s", f.Name)
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("opening %s: %v", f.Name, err)
		}
		got, _ := io.ReadAll(rc)
		rc.Close()
		if string(got) != want {
			t.Errorf("Entry %s: expected %q, got %q", f.Name, want, got)
		}
	}
}

func TestWriteArchive_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteArchive(&buf, nil); err == nil {
		t.Error("Expected error for empty archive, got nil")
	}
}
