package model

import (
	"encoding/base64"
	"fmt"
	"time"
)

// MIMETypePDF is the media type of every artifact
const MIMETypePDF = "application/pdf"

// Artifact names
const (
	MergedTitle    = "Merged"
	MergedFileName = "merged.pdf"
	SplitTitleFmt  = "Split %d"
	SplitFileFmt   = "Split_%d.pdf"
)

// Artifact is a generated PDF held in memory for the current session
type Artifact struct {
	ID        string
	Source    Operation // operation that produced it
	Title     string    // human title, e.g. "Split 2"
	FileName  string    // suggested download name
	Data      []byte
	PageCount int
	CreatedAt time.Time
}

// NewMergedArtifact creates the single result of a merge
func NewMergedArtifact(data []byte, pageCount int) *Artifact {
	return &Artifact{
		ID:        NewID(ArtifactIDPrefix),
		Source:    OperationMerge,
		Title:     MergedTitle,
		FileName:  MergedFileName,
		Data:      data,
		PageCount: pageCount,
		CreatedAt: time.Now(),
	}
}

// NewSplitArtifact creates the n-th (1-based) result of a split
func NewSplitArtifact(n int, data []byte, pageCount int) *Artifact {
	return &Artifact{
		ID:        NewID(ArtifactIDPrefix),
		Source:    OperationSplit,
		Title:     fmt.Sprintf(SplitTitleFmt, n),
		FileName:  fmt.Sprintf(SplitFileFmt, n),
		Data:      data,
		PageCount: pageCount,
		CreatedAt: time.Now(),
	}
}

// DataURI returns the artifact encoded as a base64 data URI
func (a *Artifact) DataURI() string {
	return "data:" + MIMETypePDF + ";base64," + base64.StdEncoding.EncodeToString(a.Data)
}

// Size returns the payload size in bytes
func (a *Artifact) Size() int64 {
	return int64(len(a.Data))
}

// GetSizeString returns the size in human readable form
func (a *Artifact) GetSizeString() string {
	return FormatFileSize(a.Size())
}
