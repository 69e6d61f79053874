package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/pdftoolkit/pdf-toolkit/internal/model"
	"github.com/pdftoolkit/pdf-toolkit/internal/notify"
	"github.com/pdftoolkit/pdf-toolkit/internal/pagerange"
	"github.com/pdftoolkit/pdf-toolkit/internal/pdfops"
	"github.com/pdftoolkit/pdf-toolkit/internal/platform"
)

var (
	// ErrBusy is returned while an operation is running
	ErrBusy = errors.New("an operation is already running")

	// ErrUnknownOperation is returned for an operation other than merge or split
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrNoResults is returned when there is nothing to export
	ErrNoResults = errors.New("no results available")

	// ErrArtifactNotFound is returned for an unknown artifact ID
	ErrArtifactNotFound = errors.New("artifact not found")
)

// Upload is a file handed over by the picker or a drop
type Upload struct {
	Name string
	Data []byte
}

// Snapshot is a copy of workspace state for rendering
type Snapshot struct {
	Operation model.Operation
	Phase     model.Phase
	Files     []*model.LoadedFile
	Ranges    []string
	Results   []*model.Artifact
	Viewing   *model.Artifact
	Progress  pdfops.Progress
	CanMerge  bool
	CanSplit  bool
}

// Workspace is the root view state machine
type Workspace struct {
	mu        sync.Mutex
	processor pdfops.Processor
	notifier  notify.Notifier
	messages  Messages

	operation model.Operation
	files     []*model.LoadedFile
	ranges    []string
	results   []*model.Artifact
	viewing   string
	busy      bool
	progress  pdfops.Progress

	onChange func() // callback for UI updates
}

// NewWorkspace creates a workspace in merge mode with no files
func NewWorkspace(processor pdfops.Processor, notifier notify.Notifier) *Workspace {
	w := &Workspace{
		processor: processor,
		notifier:  notifier,
		messages:  DefaultMessages(),
		operation: model.OperationMerge,
		ranges:    []string{""},
	}
	processor.SetUpdateCallback(w.handleProgress)
	return w
}

// SetChangeCallback sets the function called after every state change
func (w *Workspace) SetChangeCallback(callback func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = callback
}

// SetMessages replaces the toast texts; empty fields keep the defaults
func (w *Workspace) SetMessages(m Messages) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.messages = m.withDefaults()
}

// Operation returns the current mode
func (w *Workspace) Operation() model.Operation {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.operation
}

// SetOperation switches mode and drops results of the previous operation
func (w *Workspace) SetOperation(op model.Operation) error {
	if !op.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownOperation, op)
	}

	w.mu.Lock()
	if w.busy {
		w.mu.Unlock()
		return ErrBusy
	}
	if w.operation == op {
		w.mu.Unlock()
		return nil
	}
	w.operation = op
	w.results = nil
	w.viewing = ""
	w.mu.Unlock()

	log.Printf("Operation switched to %s", op)
	w.notifyChange()
	return nil
}

// AddFiles loads the PDFs among uploads and returns how many were accepted.
// Merge mode appends in the given order; split mode keeps only the first
// accepted file and replaces whatever was loaded.
func (w *Workspace) AddFiles(ctx context.Context, uploads []Upload) (int, error) {
	w.mu.Lock()
	if w.busy {
		w.mu.Unlock()
		return 0, ErrBusy
	}
	op := w.operation
	msgs := w.messages
	w.mu.Unlock()

	var accepted []*model.LoadedFile
	for _, u := range uploads {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		if err := platform.CheckPDF(u.Name, u.Data); err != nil {
			log.Printf("Skipping %s: %v", u.Name, err)
			w.notifier.Error(fmt.Sprintf(msgs.NotPDF, u.Name))
			continue
		}

		pages, err := w.processor.Inspect(u.Data)
		if err != nil {
			log.Printf("Skipping %s: unreadable PDF: %v", u.Name, err)
			w.notifier.Error(fmt.Sprintf(msgs.Unreadable, u.Name))
			continue
		}

		accepted = append(accepted, model.NewLoadedFile(u.Name, u.Data, pages))
		if op == model.OperationSplit {
			break
		}
	}

	if len(accepted) == 0 {
		return 0, nil
	}

	// the mode may have changed while files were inspected
	w.mu.Lock()
	if w.busy {
		msgs = w.messages
		w.mu.Unlock()
		log.Printf("Dropping %d file(s): an operation started during intake", len(accepted))
		w.notifier.Error(msgs.Busy)
		return 0, ErrBusy
	}
	op = w.operation
	if op == model.OperationSplit {
		accepted = accepted[:1]
		w.files = accepted
	} else {
		w.files = append(w.files, accepted...)
	}
	w.mu.Unlock()

	log.Printf("Loaded %d file(s) for %s", len(accepted), op)
	w.notifyChange()
	return len(accepted), nil
}

// RemoveFile drops a loaded file by ID; split mode also resets the range entries
func (w *Workspace) RemoveFile(id string) bool {
	w.mu.Lock()
	if w.busy {
		w.mu.Unlock()
		return false
	}

	idx := -1
	for i, f := range w.files {
		if f.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		w.mu.Unlock()
		return false
	}

	if w.operation == model.OperationSplit {
		w.files = nil
		w.ranges = []string{""}
	} else {
		files := make([]*model.LoadedFile, 0, len(w.files)-1)
		files = append(files, w.files[:idx]...)
		files = append(files, w.files[idx+1:]...)
		w.files = files
	}
	w.mu.Unlock()

	w.notifyChange()
	return true
}

// Files returns a copy of the loaded files in order
func (w *Workspace) Files() []*model.LoadedFile {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]*model.LoadedFile(nil), w.files...)
}

// Ranges returns a copy of the page-range entries
func (w *Workspace) Ranges() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.ranges...)
}

// AddRange appends an empty range entry
func (w *Workspace) AddRange() {
	w.mu.Lock()
	w.ranges = append(w.ranges, "")
	w.mu.Unlock()
	w.notifyChange()
}

// RemoveRange deletes entry i; the last remaining entry is cleared instead
func (w *Workspace) RemoveRange(i int) bool {
	w.mu.Lock()
	if i < 0 || i >= len(w.ranges) {
		w.mu.Unlock()
		return false
	}
	if len(w.ranges) == 1 {
		w.ranges = []string{""}
	} else {
		ranges := make([]string, 0, len(w.ranges)-1)
		ranges = append(ranges, w.ranges[:i]...)
		ranges = append(ranges, w.ranges[i+1:]...)
		w.ranges = ranges
	}
	w.mu.Unlock()
	w.notifyChange()
	return true
}

// UpdateRange replaces the text of entry i
func (w *Workspace) UpdateRange(i int, text string) bool {
	w.mu.Lock()
	if i < 0 || i >= len(w.ranges) || w.ranges[i] == text {
		w.mu.Unlock()
		return false
	}
	w.ranges[i] = text
	w.mu.Unlock()
	w.notifyChange()
	return true
}

// CanSplit reports whether a file is loaded and at least one range entry has text
func (w *Workspace) CanSplit() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.canSplitLocked()
}

func (w *Workspace) canSplitLocked() bool {
	return !w.busy && len(w.files) > 0 && pagerange.HasInput(w.ranges)
}

// Merge concatenates every loaded file into one artifact
func (w *Workspace) Merge(ctx context.Context) error {
	w.mu.Lock()
	if w.busy {
		w.mu.Unlock()
		return ErrBusy
	}
	msgs := w.messages
	if len(w.files) < pdfops.MinMergeFiles {
		w.mu.Unlock()
		w.notifier.Error(msgs.TooFewFiles)
		return pdfops.ErrTooFewFiles
	}
	files := append([]*model.LoadedFile(nil), w.files...)
	w.startLocked()
	w.mu.Unlock()
	w.notifyChange()

	log.Printf("Merging %d files", len(files))
	artifact, err := w.processor.Merge(ctx, files)

	w.mu.Lock()
	w.finishLocked()
	if err == nil {
		w.results = []*model.Artifact{artifact}
	}
	w.mu.Unlock()

	if err != nil {
		log.Printf("Merge failed: %v", err)
		w.notifier.Error(msgs.MergeError)
		w.notifyChange()
		return fmt.Errorf("merge: %w", err)
	}

	w.notifier.Success(msgs.MergeSuccess)
	w.notifyChange()
	return nil
}

// Split extracts every valid range entry of the loaded file into its own artifact
func (w *Workspace) Split(ctx context.Context) error {
	w.mu.Lock()
	if w.busy {
		w.mu.Unlock()
		return ErrBusy
	}
	if len(w.files) == 0 {
		w.mu.Unlock()
		return pdfops.ErrNoFile
	}
	msgs := w.messages
	file := w.files[0]
	w.results = nil
	w.viewing = ""

	selections, err := pagerange.ParseStrict(w.ranges, file.PageCount)
	if err != nil {
		w.mu.Unlock()
		w.notifier.Error(msgs.InvalidPages)
		w.notifyChange()
		return err
	}
	w.startLocked()
	w.mu.Unlock()
	w.notifyChange()

	log.Printf("Splitting %s into %d document(s)", file.Name, len(selections))
	artifacts, err := w.processor.Split(ctx, file, selections)

	w.mu.Lock()
	w.finishLocked()
	if err == nil {
		w.results = artifacts
		w.files = nil
	}
	w.mu.Unlock()

	if err != nil {
		log.Printf("Split failed: %v", err)
		w.notifier.Error(msgs.SplitError)
		w.notifyChange()
		return fmt.Errorf("split: %w", err)
	}

	w.notifier.Success(msgs.SplitSuccess)
	w.notifyChange()
	return nil
}

// Run starts the current operation
func (w *Workspace) Run(ctx context.Context) error {
	if w.Operation() == model.OperationSplit {
		return w.Split(ctx)
	}
	return w.Merge(ctx)
}

// Results returns a copy of the artifacts of the last run
func (w *Workspace) Results() []*model.Artifact {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]*model.Artifact(nil), w.results...)
}

// Artifact looks up a result by ID
func (w *Workspace) Artifact(id string) (*model.Artifact, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if a := w.artifactLocked(id); a != nil {
		return a, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrArtifactNotFound, id)
}

// View marks a result as being previewed
func (w *Workspace) View(id string) bool {
	w.mu.Lock()
	if w.artifactLocked(id) == nil {
		w.mu.Unlock()
		return false
	}
	w.viewing = id
	w.mu.Unlock()
	w.notifyChange()
	return true
}

// CloseView dismisses the preview
func (w *Workspace) CloseView() {
	w.mu.Lock()
	if w.viewing == "" {
		w.mu.Unlock()
		return
	}
	w.viewing = ""
	w.mu.Unlock()
	w.notifyChange()
}

// Viewing returns the previewed artifact or nil
func (w *Workspace) Viewing() *model.Artifact {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.artifactLocked(w.viewing)
}

// Reset drops files, ranges and results
func (w *Workspace) Reset() error {
	w.mu.Lock()
	if w.busy {
		w.mu.Unlock()
		return ErrBusy
	}
	w.files = nil
	w.ranges = []string{""}
	w.results = nil
	w.viewing = ""
	w.mu.Unlock()

	w.notifyChange()
	return nil
}

// Phase derives where the workspace currently is
func (w *Workspace) Phase() model.Phase {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.phaseLocked()
}

// Snapshot returns a copy of the state for rendering
func (w *Workspace) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return Snapshot{
		Operation: w.operation,
		Phase:     w.phaseLocked(),
		Files:     append([]*model.LoadedFile(nil), w.files...),
		Ranges:    append([]string(nil), w.ranges...),
		Results:   append([]*model.Artifact(nil), w.results...),
		Viewing:   w.artifactLocked(w.viewing),
		Progress:  w.progress,
		CanMerge:  !w.busy && len(w.files) >= pdfops.MinMergeFiles,
		CanSplit:  w.canSplitLocked(),
	}
}

func (w *Workspace) phaseLocked() model.Phase {
	switch {
	case w.busy:
		return model.PhaseProcessing
	case len(w.results) > 0:
		return model.PhaseFinished
	case len(w.files) > 0:
		return model.PhaseLoaded
	default:
		return model.PhaseIdle
	}
}

func (w *Workspace) artifactLocked(id string) *model.Artifact {
	if id == "" {
		return nil
	}
	for _, a := range w.results {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// startLocked enters processing and supersedes previous results
func (w *Workspace) startLocked() {
	w.busy = true
	w.results = nil
	w.viewing = ""
	w.progress = pdfops.Progress{Operation: w.operation}
}

func (w *Workspace) finishLocked() {
	w.busy = false
	w.progress = pdfops.Progress{}
}

func (w *Workspace) handleProgress(p pdfops.Progress) {
	w.mu.Lock()
	if !w.busy {
		w.mu.Unlock()
		return
	}
	w.progress = p
	w.mu.Unlock()
	w.notifyChange()
}

// notifyChange calls the change callback if set
func (w *Workspace) notifyChange() {
	w.mu.Lock()
	callback := w.onChange
	w.mu.Unlock()

	if callback != nil {
		callback()
	}
}
