package session

import (
	"bytes"
	"fmt"
	"io"
	"log"

	"github.com/pdftoolkit/pdf-toolkit/internal/pdfops"
	"github.com/pdftoolkit/pdf-toolkit/internal/platform"
)

// WriteArtifact copies one result to w
func (w *Workspace) WriteArtifact(id string, out io.Writer) error {
	a, err := w.Artifact(id)
	if err != nil {
		return err
	}
	if _, err := out.Write(a.Data); err != nil {
		return fmt.Errorf("writing %s: %w", a.FileName, err)
	}
	return nil
}

// WriteAll bundles every result into a zip archive written to out
func (w *Workspace) WriteAll(out io.Writer) error {
	results := w.Results()
	if len(results) == 0 {
		return ErrNoResults
	}
	return pdfops.WriteArchive(out, results)
}

// Export saves one result into dir without overwriting and returns its path
func (w *Workspace) Export(id, dir string) (string, error) {
	a, err := w.Artifact(id)
	if err != nil {
		return "", err
	}
	path, err := platform.WriteFile(dir, a.FileName, a.Data)
	if err != nil {
		return "", err
	}
	log.Printf("Saved %s to %s", a.Title, path)
	return path, nil
}

// ExportAll saves every result as one zip archive into dir
func (w *Workspace) ExportAll(dir string) (string, error) {
	var buf bytes.Buffer
	if err := w.WriteAll(&buf); err != nil {
		return "", err
	}
	path, err := platform.WriteFile(dir, pdfops.ArchiveFileName, buf.Bytes())
	if err != nil {
		return "", err
	}
	log.Printf("Saved %d results to %s", len(w.Results()), path)
	return path, nil
}

// Preview writes a result to the temp preview folder and returns its path
func (w *Workspace) Preview(id string) (string, error) {
	a, err := w.Artifact(id)
	if err != nil {
		return "", err
	}
	return platform.WritePreviewFile(a.FileName, a.Data)
}
