package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/pdftoolkit/pdf-toolkit/internal/model"
)

// PreviewDialog is the modal shown for a single result
type PreviewDialog struct {
	artifact *model.Artifact
	dialog   *dialog.CustomDialog
}

// NewPreviewDialog builds the modal; onClosed runs however it is dismissed
func NewPreviewDialog(a *model.Artifact, l *Localization, window fyne.Window, onOpen, onSave func(id string), onClosed func()) *PreviewDialog {
	form := widget.NewForm(
		widget.NewFormItem(l.GetText(KeyFile), widget.NewLabel(a.FileName)),
		widget.NewFormItem(l.GetText(KeyPagesLabel), widget.NewLabel(strconv.Itoa(a.PageCount))),
		widget.NewFormItem(l.GetText(KeySizeLabel), widget.NewLabel(a.GetSizeString())),
	)

	openBtn := widget.NewButtonWithIcon(l.GetText(KeyOpenInViewer), theme.VisibilityIcon(), func() {
		onOpen(a.ID)
	})
	openBtn.Importance = widget.HighImportance

	saveBtn := widget.NewButtonWithIcon(l.GetText(KeySave), theme.DocumentSaveIcon(), func() {
		onSave(a.ID)
	})

	content := container.NewVBox(
		form,
		container.NewHBox(openBtn, saveBtn),
	)

	d := dialog.NewCustom(fmt.Sprintf("%s %s", IconFile, a.Title), l.GetText(KeyClose), content, window)
	d.Resize(fyne.NewSize(PreviewWidth, PreviewHeight))
	d.SetOnClosed(onClosed)

	return &PreviewDialog{artifact: a, dialog: d}
}

// ArtifactID returns the ID of the previewed result
func (pd *PreviewDialog) ArtifactID() string {
	return pd.artifact.ID
}

// Show displays the modal
func (pd *PreviewDialog) Show() {
	pd.dialog.Show()
}

// Hide dismisses the modal
func (pd *PreviewDialog) Hide() {
	pd.dialog.Hide()
}
