package platform

import (
	"errors"
	"testing"
)

var minimalPDF = []byte("%PDF-1.7\n1 0 obj\n<< /Type /Catalog >>\nendobj\n%%EOF\n")

func TestHasPDFExtension(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"report.pdf", true},
		{"REPORT.PDF", true},
		{"archive.tar.pdf", true},
		{"notes.txt", false},
		{"pdf", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasPDFExtension(tt.name); got != tt.expected {
				t.Errorf("HasPDFExtension(%q) = %v, want %v", tt.name, got, tt.expected)
			}
		})
	}
}

func TestIsPDF(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		data     []byte
		expected bool
	}{
		{"pdf content and extension", "a.pdf", minimalPDF, true},
		{"pdf content wrong extension", "a.txt", minimalPDF, false},
		{"text renamed to pdf", "a.pdf", []byte("hello world"), false},
		{"png renamed to pdf", "a.pdf", []byte("\x89PNG\r\n\x1a\n0000"), false},
		{"empty data", "a.pdf", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPDF(tt.file, tt.data); got != tt.expected {
				t.Errorf("IsPDF(%q) = %v, want %v", tt.file, got, tt.expected)
			}
		})
	}
}

func TestCheckPDF(t *testing.T) {
	if err := CheckPDF("a.pdf", minimalPDF); err != nil {
		t.Errorf("CheckPDF() error = %v", err)
	}
	if err := CheckPDF("a.doc", minimalPDF); !errors.Is(err, ErrNotPDF) {
		t.Errorf("CheckPDF() error = %v, want ErrNotPDF", err)
	}
}

func TestDetectMIMEType(t *testing.T) {
	if got := DetectMIMEType([]byte("plain text")); got != "text/plain" {
		t.Errorf("DetectMIMEType() = %q, want text/plain", got)
	}
	if got := DetectMIMEType(minimalPDF); got != PDFMIMEType {
		t.Errorf("DetectMIMEType() = %q, want %q", got, PDFMIMEType)
	}
}
