package pdfops

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/pdftoolkit/pdf-toolkit/internal/model"
	"github.com/pdftoolkit/pdf-toolkit/internal/pagerange"
)

// Engine constants
const (
	MinMergeFiles = 2

	ValidationRelaxed = "relaxed"
	ValidationStrict  = "strict"

	// MergeDividerPage inserts a blank page between merged documents when true
	MergeDividerPage = false
)

// Progress step labels
const (
	StepReading    = "reading"
	StepAssembling = "assembling"
	StepWriting    = "writing"
)

// Progress reports one step of a running operation
type Progress struct {
	Operation model.Operation
	Step      int    // 1-based step number
	Total     int    // number of steps
	Label     string // StepReading, StepAssembling or StepWriting
	Name      string // file or artifact the step works on
}

// Fraction returns the completed share of the operation, 0.0 to 1.0
func (p Progress) Fraction() float64 {
	if p.Total <= 0 {
		return 0
	}
	f := float64(p.Step) / float64(p.Total)
	if f > 1 {
		f = 1
	}
	return f
}

// Service handles merge and split operations
type Service struct {
	mu       sync.RWMutex
	mode     string
	onUpdate func(Progress) // callback for UI updates
}

// NewService creates a new PDF service
func NewService(validationMode string) *Service {
	// pdfcpu would otherwise create a config dir under the user's home
	api.DisableConfigDir()

	s := &Service{}
	s.SetValidationMode(validationMode)
	return s
}

// SetUpdateCallback sets the callback function for progress updates
func (s *Service) SetUpdateCallback(callback func(Progress)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = callback
}

// SetValidationMode switches pdfcpu validation; unknown values fall back to relaxed
func (s *Service) SetValidationMode(mode string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if mode != ValidationStrict {
		mode = ValidationRelaxed
	}
	s.mode = mode
}

// ValidationMode returns the active validation mode
func (s *Service) ValidationMode() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// Inspect reads and validates a PDF and returns its page count
func (s *Service) Inspect(data []byte) (int, error) {
	ctx, err := s.readContext(data)
	if err != nil {
		return 0, err
	}
	return ctx.PageCount, nil
}

// Merge validates every file in order, then concatenates their pages
func (s *Service) Merge(ctx context.Context, files []*model.LoadedFile) (*model.Artifact, error) {
	if len(files) < MinMergeFiles {
		return nil, ErrTooFewFiles
	}

	total := len(files) + 1
	readers := make([]io.ReadSeeker, 0, len(files))
	pageCount := 0

	for i, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s.notifyUpdate(Progress{Operation: model.OperationMerge, Step: i + 1, Total: total, Label: StepReading, Name: file.Name})

		// MergeRaw parses again; this pass names the first unreadable file
		pdfCtx, err := s.readContext(file.Data)
		if err != nil {
			log.Printf("Merge aborted: %s is not readable: %v", file.Name, err)
			return nil, fmt.Errorf("reading %s: %w", file.Name, err)
		}
		pageCount += pdfCtx.PageCount
		readers = append(readers, bytes.NewReader(file.Data))
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.notifyUpdate(Progress{Operation: model.OperationMerge, Step: total, Total: total, Label: StepWriting, Name: model.MergedFileName})

	var out bytes.Buffer
	if err := api.MergeRaw(readers, &out, MergeDividerPage, s.configuration()); err != nil {
		return nil, fmt.Errorf("merging %d files: %w", len(files), err)
	}

	log.Printf("Merged %d files into %d pages (%d bytes)", len(files), pageCount, out.Len())
	return model.NewMergedArtifact(out.Bytes(), pageCount), nil
}

// Split reads the source once and writes one document per selection
func (s *Service) Split(ctx context.Context, file *model.LoadedFile, selections []pagerange.Selection) ([]*model.Artifact, error) {
	if file == nil {
		return nil, ErrNoFile
	}
	if len(selections) == 0 {
		return nil, ErrNoSelections
	}

	total := len(selections) + 1
	s.notifyUpdate(Progress{Operation: model.OperationSplit, Step: 1, Total: total, Label: StepReading, Name: file.Name})

	src, err := s.readContext(file.Data)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", file.Name, err)
	}

	artifacts := make([]*model.Artifact, 0, len(selections))
	for i, sel := range selections {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		n := i + 1
		pages := sel.Pages()
		for _, p := range pages {
			if p < 1 || p > src.PageCount {
				return nil, fmt.Errorf("selection %s: page %d of %d: %w", sel, p, src.PageCount, ErrPageOutOfRange)
			}
		}

		title := fmt.Sprintf(model.SplitTitleFmt, n)
		s.notifyUpdate(Progress{Operation: model.OperationSplit, Step: n + 1, Total: total, Label: StepAssembling, Name: title})

		data, err := extract(src, pages, title)
		if err != nil {
			return nil, fmt.Errorf("extracting %s: %w", sel, err)
		}
		artifacts = append(artifacts, model.NewSplitArtifact(n, data, len(pages)))
	}

	log.Printf("Split %s into %d documents", file.Name, len(artifacts))
	return artifacts, nil
}

// extract copies pages (1-based, in order) from src into a fresh document titled title
func extract(src *pdfmodel.Context, pages []int, title string) ([]byte, error) {
	dst, err := pdfcpu.ExtractPages(src, pages, false)
	if err != nil {
		return nil, err
	}

	// dst.Title alone is not serialized; the info dict entry is
	if err := pdfcpu.PropertiesAdd(dst, map[string]string{"Title": title}); err != nil {
		return nil, fmt.Errorf("setting title: %w", err)
	}

	var buf bytes.Buffer
	if err := api.WriteContext(dst, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// readContext parses and validates data with the configured mode
func (s *Service) readContext(data []byte) (*pdfmodel.Context, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty document")
	}
	return api.ReadValidateAndOptimize(bytes.NewReader(data), s.configuration())
}

// configuration builds a fresh pdfcpu configuration per call
func (s *Service) configuration() *pdfmodel.Configuration {
	conf := pdfmodel.NewDefaultConfiguration()
	if s.ValidationMode() == ValidationStrict {
		conf.ValidationMode = pdfmodel.ValidationStrict
	} else {
		conf.ValidationMode = pdfmodel.ValidationRelaxed
	}
	return conf
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(p Progress) {
	s.mu.RLock()
	cb := s.onUpdate
	s.mu.RUnlock()
	if cb != nil {
		cb(p)
	}
}
