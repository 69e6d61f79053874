package platform

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"
)

// PDF detection constants
const (
	PDFExtension = ".pdf"
	PDFMIMEType  = "application/pdf"
)

// ErrNotPDF is returned for intake of anything that is not a PDF
var ErrNotPDF = errors.New("not a PDF file")

// HasPDFExtension reports whether name ends in .pdf (any case)
func HasPDFExtension(name string) bool {
	return strings.EqualFold(filepath.Ext(name), PDFExtension)
}

// DetectMIMEType sniffs the media type of data
func DetectMIMEType(data []byte) string {
	mimeType := http.DetectContentType(data)
	if i := strings.Index(mimeType, ";"); i >= 0 {
		mimeType = mimeType[:i]
	}
	return strings.TrimSpace(mimeType)
}

// IsPDF reports whether a named blob is a PDF by extension and content sniffing
func IsPDF(name string, data []byte) bool {
	return HasPDFExtension(name) && DetectMIMEType(data) == PDFMIMEType
}

// CheckPDF is IsPDF returning ErrNotPDF
func CheckPDF(name string, data []byte) error {
	if !IsPDF(name, data) {
		return ErrNotPDF
	}
	return nil
}
