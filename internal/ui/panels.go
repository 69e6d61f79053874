package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/pdftoolkit/pdf-toolkit/internal/model"
	"github.com/pdftoolkit/pdf-toolkit/internal/pdfops"
)

// ProgressPanel shows the running step of an operation
type ProgressPanel struct {
	localization *Localization
	label        *widget.Label
	bar          *widget.ProgressBar
	container    *fyne.Container
}

// NewProgressPanel creates a hidden progress panel
func NewProgressPanel(localization *Localization) *ProgressPanel {
	pp := &ProgressPanel{
		localization: localization,
		label:        widget.NewLabel(""),
		bar:          widget.NewProgressBar(),
	}
	pp.container = container.NewVBox(pp.label, pp.bar)
	pp.container.Hide()
	return pp
}

// Container returns the panel's root object
func (pp *ProgressPanel) Container() fyne.CanvasObject {
	return pp.container
}

// Update shows progress while busy and hides the panel otherwise
func (pp *ProgressPanel) Update(p pdfops.Progress, busy bool) {
	if !busy {
		pp.container.Hide()
		return
	}
	pp.label.SetText(pp.stepText(p))
	pp.bar.SetValue(p.Fraction())
	pp.container.Show()
}

func (pp *ProgressPanel) stepText(p pdfops.Progress) string {
	key := ""
	switch p.Label {
	case pdfops.StepReading:
		key = KeyStepReading
	case pdfops.StepAssembling:
		key = KeyStepAssembling
	case pdfops.StepWriting:
		key = KeyStepWriting
	}
	if key == "" || p.Name == "" {
		return pp.localization.GetText(KeyProcessing)
	}
	return fmt.Sprintf(pp.localization.GetText(key), p.Name)
}

// ResultsPanel lists generated PDFs with download and reset actions
type ResultsPanel struct {
	localization *Localization

	heading        *widget.Label
	list           *fyne.Container
	downloadAllBtn *widget.Button
	startOverBtn   *widget.Button
	container      *fyne.Container

	shownIDs string
	rows     []*ResultRow

	onView     func(id string)
	onDownload func(id string)
}

// NewResultsPanel creates a hidden results panel
func NewResultsPanel(localization *Localization, onView, onDownload func(id string), onDownloadAll, onStartOver func()) *ResultsPanel {
	rp := &ResultsPanel{
		localization: localization,
		onView:       onView,
		onDownload:   onDownload,
	}

	rp.heading = widget.NewLabel("")
	rp.heading.TextStyle = fyne.TextStyle{Bold: true}
	rp.list = container.NewVBox()

	rp.downloadAllBtn = widget.NewButtonWithIcon("", theme.DownloadIcon(), onDownloadAll)
	rp.downloadAllBtn.Importance = widget.HighImportance
	rp.startOverBtn = widget.NewButtonWithIcon("", theme.ViewRefreshIcon(), onStartOver)

	rp.container = container.NewVBox(
		widget.NewSeparator(),
		rp.heading,
		rp.list,
		container.NewHBox(rp.downloadAllBtn, rp.startOverBtn),
	)
	rp.container.Hide()

	rp.RefreshTexts()
	return rp
}

// Container returns the panel's root object
func (rp *ResultsPanel) Container() fyne.CanvasObject {
	return rp.container
}

// RefreshTexts re-reads localized labels
func (rp *ResultsPanel) RefreshTexts() {
	rp.heading.SetText(rp.localization.GetText(KeyResults))
	rp.downloadAllBtn.SetText(rp.localization.GetText(KeyDownloadAll))
	rp.startOverBtn.SetText(rp.localization.GetText(KeyStartOver))
	rp.shownIDs = "" // rows carry localized button texts
}

// Update renders results; archive download is offered for split output only
func (rp *ResultsPanel) Update(results []*model.Artifact, allowArchive bool) {
	if len(results) == 0 {
		rp.container.Hide()
		rp.shownIDs = ""
		return
	}

	ids := artifactIDs(results)
	if ids != rp.shownIDs {
		rp.rows = make([]*ResultRow, len(results))
		objects := make([]fyne.CanvasObject, len(results))
		for i, a := range results {
			rp.rows[i] = NewResultRow(a, rp.localization, rp.onView, rp.onDownload)
			objects[i] = rp.rows[i]
		}
		rp.list.Objects = objects
		rp.list.Refresh()
		rp.shownIDs = ids
	}

	if allowArchive {
		rp.downloadAllBtn.Show()
	} else {
		rp.downloadAllBtn.Hide()
	}
	rp.container.Show()
}

func artifactIDs(results []*model.Artifact) string {
	ids := make([]string, len(results))
	for i, a := range results {
		ids[i] = a.ID
	}
	return strings.Join(ids, ",")
}

// FileListPanel lists loaded files in order
type FileListPanel struct {
	localization *Localization
	list         *fyne.Container
	rows         []*FileRow
	shownIDs     string
	onRemove     func(id string)
}

// NewFileListPanel creates an empty file list
func NewFileListPanel(localization *Localization, onRemove func(id string)) *FileListPanel {
	return &FileListPanel{
		localization: localization,
		list:         container.NewVBox(),
		onRemove:     onRemove,
	}
}

// Container returns the panel's root object
func (fp *FileListPanel) Container() fyne.CanvasObject {
	return fp.list
}

// Invalidate forces rows to be rebuilt on next Update
func (fp *FileListPanel) Invalidate() {
	fp.shownIDs = ""
}

// Update renders files in order; rows are disabled while busy
func (fp *FileListPanel) Update(files []*model.LoadedFile, busy bool) {
	ids := fileIDs(files)
	if ids != fp.shownIDs {
		fp.rows = make([]*FileRow, len(files))
		objects := make([]fyne.CanvasObject, len(files))
		for i, f := range files {
			fp.rows[i] = NewFileRow(f, fp.localization, fp.onRemove)
			objects[i] = fp.rows[i]
		}
		fp.list.Objects = objects
		fp.list.Refresh()
		fp.shownIDs = ids
	}

	for _, row := range fp.rows {
		row.SetRemovable(!busy)
	}
}

func fileIDs(files []*model.LoadedFile) string {
	ids := make([]string, len(files))
	for i, f := range files {
		ids[i] = f.ID
	}
	return strings.Join(ids, ",")
}
