package session

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"

	"github.com/pdftoolkit/pdf-toolkit/internal/model"
	"github.com/pdftoolkit/pdf-toolkit/internal/pdfops"
	"github.com/pdftoolkit/pdf-toolkit/internal/pdftest"
)

func splitWorkspace(t *testing.T) *Workspace {
	t.Helper()

	ws := NewWorkspace(pdfops.NewService(pdfops.ValidationRelaxed), &recordingNotifier{})
	ws.SetOperation(model.OperationSplit)
	if _, err := ws.AddFiles(context.Background(), []Upload{{Name: "doc.pdf", Data: pdftest.Generate(t, 5)}}); err != nil {
		t.Fatal(err)
	}
	ws.UpdateRange(0, "1-3")
	ws.AddRange()
	ws.UpdateRange(1, "5,2")
	if err := ws.Split(context.Background()); err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	return ws
}

func TestSplit_RealEngine(t *testing.T) {
	ws := splitWorkspace(t)

	results := ws.Results()
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	want := [][]int{{1, 2, 3}, {5, 2}}
	for i, a := range results {
		got := pdftest.PageNumbers(t, a.Data)
		if len(got) != len(want[i]) {
			t.Fatalf("%s pages = %v, want %v", a.Title, got, want[i])
		}
		for j := range got {
			if got[j] != want[i][j] {
				t.Errorf("%s pages = %v, want %v", a.Title, got, want[i])
				break
			}
		}
	}
}

func TestMerge_RealEngine(t *testing.T) {
	ws := NewWorkspace(pdfops.NewService(pdfops.ValidationRelaxed), &recordingNotifier{})
	in := []Upload{
		{Name: "two.pdf", Data: pdftest.Generate(t, 2)},
		{Name: "three.pdf", Data: pdftest.Generate(t, 3)},
	}
	if _, err := ws.AddFiles(context.Background(), in); err != nil {
		t.Fatal(err)
	}

	if err := ws.Merge(context.Background()); err != nil {
		t.Fatalf("Merge() error = %v", err)
	}

	merged := ws.Results()[0]
	got := pdftest.PageNumbers(t, merged.Data)
	want := []int{1, 2, 1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("pages = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("pages = %v, want %v", got, want)
		}
	}
}

func TestExport(t *testing.T) {
	ws := splitWorkspace(t)
	dir := t.TempDir()
	first := ws.Results()[0]

	path, err := ws.Export(first.ID, dir)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if filepath.Base(path) != "Split_1.pdf" {
		t.Errorf("Export() path = %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, first.Data) {
		t.Error("exported bytes differ from artifact")
	}

	again, err := ws.Export(first.ID, dir)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(again) != "Split_1 (1).pdf" {
		t.Errorf("second Export() path = %s", again)
	}

	if _, err := ws.Export("artifact-missing", dir); !errors.Is(err, ErrArtifactNotFound) {
		t.Errorf("Export(unknown) error = %v", err)
	}
}

func TestExportAll(t *testing.T) {
	ws := splitWorkspace(t)

	path, err := ws.ExportAll(t.TempDir())
	if err != nil {
		t.Fatalf("ExportAll() error = %v", err)
	}
	if filepath.Base(path) != pdfops.ArchiveFileName {
		t.Errorf("ExportAll() path = %s", path)
	}

	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("opening archive: %v", err)
	}
	defer zr.Close()

	if len(zr.File) != 2 || zr.File[0].Name != "Split_1.pdf" || zr.File[1].Name != "Split_2.pdf" {
		names := make([]string, len(zr.File))
		for i, f := range zr.File {
			names[i] = f.Name
		}
		t.Errorf("archive entries = %v", names)
	}
}

func TestExportAll_NoResults(t *testing.T) {
	ws, _, _ := newTestWorkspace(1)
	if _, err := ws.ExportAll(t.TempDir()); !errors.Is(err, ErrNoResults) {
		t.Errorf("ExportAll() error = %v, want ErrNoResults", err)
	}
}

func TestWriteArtifact(t *testing.T) {
	ws := splitWorkspace(t)
	second := ws.Results()[1]

	var buf bytes.Buffer
	if err := ws.WriteArtifact(second.ID, &buf); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf.Bytes(), second.Data) {
		t.Error("written bytes differ from artifact")
	}
}

func TestPreview(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())
	ws := splitWorkspace(t)

	path, err := ws.Preview(ws.Results()[0].ID)
	if err != nil {
		t.Fatalf("Preview() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("preview file missing: %v", err)
	}
}
