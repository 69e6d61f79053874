package model

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// File size formatting constants
const (
	FileSizeUnit  = 1024
	FileSizeUnits = "KMGTPE"
)

// LoadedFile is a PDF the user selected or dropped, held in memory until processed
type LoadedFile struct {
	ID        string
	Name      string    // display name (base name of the source)
	Data      []byte    // raw PDF bytes
	Size      int64     // len(Data)
	PageCount int       // pages reported by the PDF engine at intake
	AddedAt   time.Time // when the file was loaded
}

// NewLoadedFile creates a loaded file from a name and its bytes
func NewLoadedFile(name string, data []byte, pageCount int) *LoadedFile {
	return &LoadedFile{
		ID:        NewID(FileIDPrefix),
		Name:      cleanName(name),
		Data:      data,
		Size:      int64(len(data)),
		PageCount: pageCount,
		AddedAt:   time.Now(),
	}
}

// GetDisplayName returns the file name without the .pdf extension
func (f *LoadedFile) GetDisplayName() string {
	ext := filepath.Ext(f.Name)
	if strings.EqualFold(ext, ".pdf") {
		return strings.TrimSuffix(f.Name, ext)
	}
	return f.Name
}

// GetSizeString returns the size in human readable form
func (f *LoadedFile) GetSizeString() string {
	return FormatFileSize(f.Size)
}

// FormatFileSize formats file size in bytes to human readable format
func FormatFileSize(bytes int64) string {
	if bytes < FileSizeUnit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(FileSizeUnit), 0
	for n := bytes / FileSizeUnit; n >= FileSizeUnit; n /= FileSizeUnit {
		div *= FileSizeUnit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), FileSizeUnits[exp])
}

// cleanName strips directories (both separators) and control whitespace
func cleanName(name string) string {
	name = strings.ReplaceAll(name, "\n", "")
	name = strings.ReplaceAll(name, "\r", "")
	name = strings.ReplaceAll(name, "\t", " ")
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	if len(parts) == 0 {
		return "untitled.pdf"
	}
	return strings.TrimSpace(parts[len(parts)-1])
}
