package pdfops

import "errors"

var (
	// ErrTooFewFiles is returned when merge receives fewer than MinMergeFiles
	ErrTooFewFiles = errors.New("at least 2 PDF files are required to merge")

	// ErrNoFile is returned when split has no source document
	ErrNoFile = errors.New("no PDF file loaded")

	// ErrNoSelections is returned when split has nothing to extract
	ErrNoSelections = errors.New("no page selections")

	// ErrPageOutOfRange is returned when a selection exceeds the document
	ErrPageOutOfRange = errors.New("page out of range")
)
