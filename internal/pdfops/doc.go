package pdfops

// Package pdfops implements merge and split on top of pdfcpu
// (github.com/pdfcpu/pdfcpu). It owns no PDF parsing of its own: documents are
// read, validated, sliced and written through the pdfcpu API, one step at a
// time, with progress propagated to the UI through an update callback. Split
// outputs can be bundled into a zip archive (github.com/klauspost/compress).
