package pdfops

import (
	"context"

	"github.com/pdftoolkit/pdf-toolkit/internal/model"
	"github.com/pdftoolkit/pdf-toolkit/internal/pagerange"
)

// Processor defines the interface for the PDF engine adapter.
type Processor interface {
	SetUpdateCallback(func(Progress))

	// Inspect validates a document and returns its page count
	Inspect(data []byte) (int, error)

	// Merge concatenates files in order into a single artifact
	Merge(ctx context.Context, files []*model.LoadedFile) (*model.Artifact, error)

	// Split produces one artifact per selection
	Split(ctx context.Context, file *model.LoadedFile, selections []pagerange.Selection) ([]*model.Artifact, error)

	// SetValidationMode switches between "relaxed" and "strict" validation
	SetValidationMode(mode string)
}
