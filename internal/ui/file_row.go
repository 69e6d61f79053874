package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/pdftoolkit/pdf-toolkit/internal/model"
)

// FileRow shows one loaded PDF with its page count and a remove button
type FileRow struct {
	widget.BaseWidget

	file         *model.LoadedFile
	localization *Localization

	// UI components
	iconLabel *widget.Label
	nameLabel *widget.Label
	infoLabel *widget.Label
	removeBtn *widget.Button

	// Callbacks
	onRemove func(fileID string)
}

// NewFileRow creates a new file row widget
func NewFileRow(file *model.LoadedFile, localization *Localization, onRemove func(fileID string)) *FileRow {
	fr := &FileRow{
		file:         file,
		localization: localization,
		onRemove:     onRemove,
	}
	fr.ExtendBaseWidget(fr)
	fr.createUI()
	fr.updateFromFile()
	return fr
}

// File returns the file shown by the row
func (fr *FileRow) File() *model.LoadedFile {
	return fr.file
}

// SetRemovable enables or disables the remove button
func (fr *FileRow) SetRemovable(removable bool) {
	if removable {
		fr.removeBtn.Enable()
	} else {
		fr.removeBtn.Disable()
	}
}

func (fr *FileRow) createUI() {
	fr.iconLabel = widget.NewLabel(IconFile)

	fr.nameLabel = widget.NewLabel("")
	fr.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	fr.nameLabel.Truncation = fyne.TextTruncateEllipsis

	fr.infoLabel = widget.NewLabel("")
	fr.infoLabel.Importance = widget.LowImportance

	fr.removeBtn = widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
		if fr.onRemove != nil && fr.file != nil {
			fr.onRemove(fr.file.ID)
		}
	})
	fr.removeBtn.Importance = widget.LowImportance
}

func (fr *FileRow) updateFromFile() {
	if fr.file == nil {
		return
	}
	fr.nameLabel.SetText(fr.file.Name)
	fr.infoLabel.SetText(fmt.Sprintf(fr.localization.GetText(KeyPagesFmt), fr.file.PageCount) +
		MiddleDotSeparator + fr.file.GetSizeString())
}

// CreateRenderer creates the widget renderer
func (fr *FileRow) CreateRenderer() fyne.WidgetRenderer {
	background := canvas.NewRectangle(color.Transparent)
	background.StrokeColor = theme.Color(theme.ColorNameSeparator)
	background.StrokeWidth = 1
	background.CornerRadius = theme.Size(theme.SizeNameInputRadius)

	text := container.NewVBox(fr.nameLabel, fr.infoLabel)
	content := container.NewBorder(nil, nil, fr.iconLabel, fr.removeBtn, text)

	return &rowRenderer{
		background: background,
		content:    container.NewPadded(content),
	}
}

// rowRenderer draws a bordered card around row content
type rowRenderer struct {
	background *canvas.Rectangle
	content    *fyne.Container
}

// Layout arranges the components
func (r *rowRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.content.Resize(size)
}

// MinSize returns the minimum size
func (r *rowRenderer) MinSize() fyne.Size {
	size := r.content.MinSize()
	if size.Width < RowMinWidth {
		size.Width = RowMinWidth
	}
	if size.Height < RowMinHeight {
		size.Height = RowMinHeight
	}
	return size
}

// Refresh refreshes the renderer
func (r *rowRenderer) Refresh() {
	r.background.StrokeColor = theme.Color(theme.ColorNameSeparator)
	r.background.Refresh()
	r.content.Refresh()
}

// Objects returns the container objects
func (r *rowRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.content}
}

// Destroy cleans up the renderer
func (r *rowRenderer) Destroy() {}
