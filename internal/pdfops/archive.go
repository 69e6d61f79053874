package pdfops

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zip"

	"github.com/pdftoolkit/pdf-toolkit/internal/model"
)

// ArchiveFileName is the suggested name for a bundle of split outputs
const ArchiveFileName = "split.zip"

// WriteArchive bundles artifacts into a zip written to w.
// Duplicate file names get a numeric suffix.
func WriteArchive(w io.Writer, artifacts []*model.Artifact) error {
	if len(artifacts) == 0 {
		return fmt.Errorf("archive: nothing to write")
	}

	zw := zip.NewWriter(w)
	used := make(map[string]int, len(artifacts))

	for _, a := range artifacts {
		name := uniqueEntryName(a.FileName, used)
		header := &zip.FileHeader{
			Name:     name,
			Method:   zip.Deflate,
			Modified: a.CreatedAt,
		}
		entry, err := zw.CreateHeader(header)
		if err != nil {
			zw.Close()
			return fmt.Errorf("archive: creating %s: %w", name, err)
		}
		if _, err := entry.Write(a.Data); err != nil {
			zw.Close()
			return fmt.Errorf("archive: writing %s: %w", name, err)
		}
	}

	return zw.Close()
}

// uniqueEntryName returns name or "base (n).ext" when name was already used
func uniqueEntryName(name string, used map[string]int) string {
	if name == "" {
		name = "document.pdf"
	}
	count := used[name]
	used[name] = count + 1
	if count == 0 {
		return name
	}
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	candidate := fmt.Sprintf("%s (%d)%s", base, count, ext)
	// the suffixed form may itself collide with a real name
	return uniqueEntryName(candidate, used)
}
