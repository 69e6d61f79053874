package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/pdftoolkit/pdf-toolkit/internal/model"
	"github.com/pdftoolkit/pdf-toolkit/internal/session"
)

// viewActions are the root callbacks a view can trigger
type viewActions struct {
	Browse      func()
	RemoveFile  func(id string)
	Run         func()
	View        func(id string)
	Download    func(id string)
	DownloadAll func()
	StartOver   func()
	AddRange    func()
	RemoveRange func(index int)
	UpdateRange func(index int, text string)
}

// MergeView collects several PDFs and merges them in order
type MergeView struct {
	localization *Localization

	title      *widget.Label
	desc       *widget.Label
	dropZone   *DropZone
	files      *FileListPanel
	addMoreBtn *widget.Button
	runBtn     *widget.Button
	progress   *ProgressPanel
	results    *ResultsPanel
	loaded     *fyne.Container
	container  *fyne.Container
}

// NewMergeView creates the merge view
func NewMergeView(localization *Localization, actions viewActions) *MergeView {
	v := &MergeView{localization: localization}

	v.title = widget.NewLabel("")
	v.title.TextStyle = fyne.TextStyle{Bold: true}
	v.desc = widget.NewLabel("")
	v.desc.Importance = widget.LowImportance

	v.dropZone = NewDropZone(localization, true, actions.Browse)
	v.files = NewFileListPanel(localization, actions.RemoveFile)

	v.addMoreBtn = widget.NewButtonWithIcon("", theme.ContentAddIcon(), actions.Browse)
	v.runBtn = widget.NewButtonWithIcon("", theme.MediaPlayIcon(), actions.Run)
	v.runBtn.Importance = widget.HighImportance

	v.progress = NewProgressPanel(localization)
	v.results = NewResultsPanel(localization, actions.View, actions.Download, actions.DownloadAll, actions.StartOver)

	v.loaded = container.NewVBox(
		v.files.Container(),
		container.NewHBox(v.addMoreBtn, v.runBtn),
	)

	v.container = container.NewVBox(
		v.title,
		v.desc,
		v.dropZone,
		v.loaded,
		v.progress.Container(),
		v.results.Container(),
	)

	v.RefreshTexts()
	return v
}

// Container returns the view's root object
func (v *MergeView) Container() fyne.CanvasObject {
	return v.container
}

// RefreshTexts re-reads localized labels
func (v *MergeView) RefreshTexts() {
	v.title.SetText(v.localization.GetText(KeyMergeTab))
	v.desc.SetText(v.localization.GetText(KeyMergeDescription))
	v.addMoreBtn.SetText(v.localization.GetText(KeyAddMore))
	v.runBtn.SetText(v.localization.GetText(KeyMergeButton))
	v.dropZone.RefreshTexts()
	v.results.RefreshTexts()
	v.files.Invalidate()
}

// Update renders a workspace snapshot
func (v *MergeView) Update(snap session.Snapshot) {
	busy := snap.Phase.IsBusy()

	if len(snap.Files) == 0 {
		v.dropZone.Show()
		v.loaded.Hide()
	} else {
		v.dropZone.Hide()
		v.loaded.Show()
	}
	v.dropZone.SetEnabled(!busy)
	v.files.Update(snap.Files, busy)

	if busy {
		v.addMoreBtn.Disable()
		v.runBtn.Disable()
	} else {
		v.addMoreBtn.Enable()
		// Enabled with a single file so the user gets the "at least 2" toast
		v.runBtn.Enable()
	}

	v.progress.Update(snap.Progress, busy)
	v.results.Update(snap.Results, false)
}

// SplitView loads one PDF and extracts page ranges from it
type SplitView struct {
	localization *Localization

	title    *widget.Label
	desc     *widget.Label
	dropZone *DropZone
	files    *FileListPanel
	ranges   *RangeInput
	runBtn   *widget.Button
	progress *ProgressPanel
	results  *ResultsPanel
	loaded   *fyne.Container

	container *fyne.Container
}

// NewSplitView creates the split view
func NewSplitView(localization *Localization, actions viewActions) *SplitView {
	v := &SplitView{localization: localization}

	v.title = widget.NewLabel("")
	v.title.TextStyle = fyne.TextStyle{Bold: true}
	v.desc = widget.NewLabel("")
	v.desc.Importance = widget.LowImportance

	v.dropZone = NewDropZone(localization, false, actions.Browse)
	v.files = NewFileListPanel(localization, actions.RemoveFile)
	v.ranges = NewRangeInput(localization, actions.UpdateRange, actions.AddRange, actions.RemoveRange)

	v.runBtn = widget.NewButtonWithIcon("", theme.ContentCutIcon(), actions.Run)
	v.runBtn.Importance = widget.HighImportance

	v.progress = NewProgressPanel(localization)
	v.results = NewResultsPanel(localization, actions.View, actions.Download, actions.DownloadAll, actions.StartOver)

	v.loaded = container.NewVBox(
		v.files.Container(),
		v.ranges.Container(),
		container.NewHBox(v.runBtn),
	)

	v.container = container.NewVBox(
		v.title,
		v.desc,
		v.dropZone,
		v.loaded,
		v.progress.Container(),
		v.results.Container(),
	)

	v.RefreshTexts()
	return v
}

// Container returns the view's root object
func (v *SplitView) Container() fyne.CanvasObject {
	return v.container
}

// RefreshTexts re-reads localized labels
func (v *SplitView) RefreshTexts() {
	v.title.SetText(v.localization.GetText(KeySplitTab))
	v.desc.SetText(v.localization.GetText(KeySplitDescription))
	v.runBtn.SetText(v.localization.GetText(KeySplitButton))
	v.dropZone.RefreshTexts()
	v.ranges.RefreshTexts()
	v.results.RefreshTexts()
	v.files.Invalidate()
}

// Update renders a workspace snapshot
func (v *SplitView) Update(snap session.Snapshot) {
	busy := snap.Phase.IsBusy()

	var files []*model.LoadedFile
	totalPages := 0
	if len(snap.Files) > 0 {
		files = snap.Files[:1]
		totalPages = files[0].PageCount
	}

	if len(files) == 0 {
		v.dropZone.Show()
		v.loaded.Hide()
	} else {
		v.dropZone.Hide()
		v.loaded.Show()
	}
	v.dropZone.SetEnabled(!busy)
	v.files.Update(files, busy)
	v.ranges.Update(snap.Ranges, totalPages, !busy)

	if snap.CanSplit {
		v.runBtn.Enable()
	} else {
		v.runBtn.Disable()
	}

	v.progress.Update(snap.Progress, busy)
	v.results.Update(snap.Results, len(snap.Results) > 0)
}
