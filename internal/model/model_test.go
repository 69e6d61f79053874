package model

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"
)

func TestNewLoadedFile(t *testing.T) {
	data := []byte("%PDF-1.4 fake")
	f := NewLoadedFile("/home/user/docs/report.pdf", data, 3)

	if f.Name != "report.pdf" {
		t.Errorf("Expected name 'report.pdf', got '%s'", f.Name)
	}
	if f.Size != int64(len(data)) {
		t.Errorf("Expected size %d, got %d", len(data), f.Size)
	}
	if f.PageCount != 3 {
		t.Errorf("Expected 3 pages, got %d", f.PageCount)
	}
	if !strings.HasPrefix(f.ID, FileIDPrefix) {
		t.Errorf("Expected ID to start with '%s', got: %s", FileIDPrefix, f.ID)
	}
}

func TestLoadedFile_GetDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"report.pdf", "report"},
		{"REPORT.PDF", "REPORT"},
		{`C:\scans\invoice.pdf`, "invoice"},
		{"notes", "notes"},
		{"", "untitled"},
	}

	for _, test := range tests {
		f := NewLoadedFile(test.name, nil, 0)
		result := f.GetDisplayName()
		if result != test.expected {
			t.Errorf("GetDisplayName() with name=%q = %q, expected %q", test.name, result, test.expected)
		}
	}
}

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		bytes    int64
		expected string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{5 * 1024 * 1024, "5.0 MB"},
	}

	for _, test := range tests {
		result := FormatFileSize(test.bytes)
		if result != test.expected {
			t.Errorf("FormatFileSize(%d) = %s, expected %s", test.bytes, result, test.expected)
		}
	}
}

func TestArtifact_DataURI(t *testing.T) {
	data := []byte("%PDF-1.7\n")
	a := NewMergedArtifact(data, 1)

	uri := a.DataURI()
	prefix := "data:application/pdf;base64,"
	if !strings.HasPrefix(uri, prefix) {
		t.Fatalf("Expected data URI prefix %q, got %q", prefix, uri)
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, prefix))
	if err != nil {
		t.Fatalf("Failed to decode data URI payload: %v", err)
	}
	if string(decoded) != string(data) {
		t.Errorf("Expected payload %q, got %q", data, decoded)
	}
}

func TestNewSplitArtifact(t *testing.T) {
	a := NewSplitArtifact(2, []byte("x"), 4)

	if a.Title != "Split 2" {
		t.Errorf("Expected title 'Split 2', got '%s'", a.Title)
	}
	if a.FileName != "Split_2.pdf" {
		t.Errorf("Expected file name 'Split_2.pdf', got '%s'", a.FileName)
	}
	if a.Source != OperationSplit {
		t.Errorf("Expected source %s, got %s", OperationSplit, a.Source)
	}
}

func TestNotification_Expired(t *testing.T) {
	n := NewNotification("hello", SeveritySuccess, time.Second)

	if n.Expired(n.CreatedAt) {
		t.Error("Notification should not be expired at creation time")
	}
	if !n.Expired(n.CreatedAt.Add(time.Second)) {
		t.Error("Notification should be expired once its lifetime has elapsed")
	}
}

func TestNewNotification_DefaultLifetime(t *testing.T) {
	n := NewNotification("oops", SeverityError, 0)

	if n.Lifetime != DefaultNotificationLifetime {
		t.Errorf("Expected lifetime %v, got %v", DefaultNotificationLifetime, n.Lifetime)
	}
	if !n.IsError() {
		t.Error("Expected error severity")
	}
}

func TestNewID(t *testing.T) {
	id1 := NewID(ArtifactIDPrefix)
	id2 := NewID(ArtifactIDPrefix)

	if id1 == id2 {
		t.Error("Expected different IDs")
	}

	// prefix + 36 chars for UUID
	if len(id1) != len(ArtifactIDPrefix)+36 {
		t.Errorf("Expected ID length %d, got %d for ID: %s", len(ArtifactIDPrefix)+36, len(id1), id1)
	}
}
