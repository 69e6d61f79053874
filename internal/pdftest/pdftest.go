// Package pdftest generates small PDF fixtures for tests. Every page gets a
// distinct width so tests can recover which source page ended up where.
package pdftest

import (
	"bytes"
	"fmt"
	"math"
	"testing"

	"github.com/jung-kurt/gofpdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Page geometry in millimetres: page n is BaseWidth + n*WidthStep wide
const (
	BaseWidth  = 100.0
	WidthStep  = 10.0
	PageHeight = 200.0

	pointsPerMM = 72.0 / 25.4
)

// Generate returns a PDF with numPages labelled pages
func Generate(tb testing.TB, numPages int) []byte {
	tb.Helper()

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 14)
	for i := 1; i <= numPages; i++ {
		pdf.AddPageFormat("P", gofpdf.SizeType{Wd: BaseWidth + float64(i)*WidthStep, Ht: PageHeight})
		pdf.Text(20, 30, fmt.Sprintf("Page %d of %d", i, numPages))
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		tb.Fatalf("creating test PDF: %v", err)
	}
	return buf.Bytes()
}

// PageNumbers maps each page of data back to the source page number it was generated as
func PageNumbers(tb testing.TB, data []byte) []int {
	tb.Helper()

	api.DisableConfigDir()
	dims, err := api.PageDims(bytes.NewReader(data), nil)
	if err != nil {
		tb.Fatalf("reading page dimensions: %v", err)
	}

	numbers := make([]int, len(dims))
	for i, d := range dims {
		widthMM := d.Width / pointsPerMM
		numbers[i] = int(math.Round((widthMM - BaseWidth) / WidthStep))
	}
	return numbers
}
