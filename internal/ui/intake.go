package ui

import (
	"fmt"
	"io"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"

	"github.com/pdftoolkit/pdf-toolkit/internal/platform"
	"github.com/pdftoolkit/pdf-toolkit/internal/session"
)

// pdfFilter restricts file dialogs to PDFs
func pdfFilter() storage.FileFilter {
	return storage.NewExtensionFileFilter([]string{platform.PDFExtension, ".PDF"})
}

// readUpload reads a named stream fully into an upload
func readUpload(name string, r io.Reader) (session.Upload, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return session.Upload{}, fmt.Errorf("reading %s: %w", name, err)
	}
	return session.Upload{Name: name, Data: data}, nil
}

// readURIs loads dropped files; unreadable ones are returned by name
func readURIs(uris []fyne.URI) ([]session.Upload, []string) {
	var uploads []session.Upload
	var failed []string

	for _, uri := range uris {
		upload, err := readURI(uri)
		if err != nil {
			log.Printf("Failed to read dropped file %s: %v", uri, err)
			failed = append(failed, uri.Name())
			continue
		}
		uploads = append(uploads, upload)
	}
	return uploads, failed
}

func readURI(uri fyne.URI) (session.Upload, error) {
	reader, err := storage.Reader(uri)
	if err != nil {
		return session.Upload{}, err
	}
	defer reader.Close()
	return readUpload(uri.Name(), reader)
}
