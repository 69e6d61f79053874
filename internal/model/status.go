package model

// Operation is the user-selected tool mode
type Operation string

const (
	// OperationMerge combines several PDFs into one
	OperationMerge Operation = "merge"

	// OperationSplit extracts page ranges from one PDF
	OperationSplit Operation = "split"
)

// String returns the string representation of Operation
func (op Operation) String() string {
	return string(op)
}

// Valid reports whether op is a known operation
func (op Operation) Valid() bool {
	return op == OperationMerge || op == OperationSplit
}

// Phase represents where the workspace is in its idle → loaded → processing → finished cycle
type Phase string

const (
	// PhaseIdle means nothing is loaded
	PhaseIdle Phase = "Idle"

	// PhaseLoaded means at least one file is loaded and waiting
	PhaseLoaded Phase = "Loaded"

	// PhaseProcessing means an operation is running
	PhaseProcessing Phase = "Processing"

	// PhaseFinished means the last operation produced results
	PhaseFinished Phase = "Finished"
)

// String returns the string representation of Phase
func (p Phase) String() string {
	return string(p)
}

// IsBusy returns true while an operation is running
func (p Phase) IsBusy() bool {
	return p == PhaseProcessing
}

// HasResults returns true if the phase implies artifacts are available
func (p Phase) HasResults() bool {
	return p == PhaseFinished
}
