package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// DropZone is the empty-state card inviting the user to drop or browse PDFs.
// Drops are handled at window level and routed to the active view.
type DropZone struct {
	widget.BaseWidget

	localization *Localization
	multiple     bool

	iconLabel *widget.Label
	hintLabel *widget.Label
	orLabel   *widget.Label
	browseBtn *widget.Button
}

// NewDropZone creates a drop zone; multiple selects the plural hint
func NewDropZone(localization *Localization, multiple bool, onBrowse func()) *DropZone {
	dz := &DropZone{
		localization: localization,
		multiple:     multiple,
	}
	dz.ExtendBaseWidget(dz)

	dz.iconLabel = widget.NewLabel(IconUpload)
	dz.iconLabel.Alignment = fyne.TextAlignCenter
	dz.iconLabel.TextStyle = fyne.TextStyle{Bold: true}

	dz.hintLabel = widget.NewLabel("")
	dz.hintLabel.Alignment = fyne.TextAlignCenter
	dz.hintLabel.TextStyle = fyne.TextStyle{Bold: true}

	dz.orLabel = widget.NewLabel("")
	dz.orLabel.Alignment = fyne.TextAlignCenter
	dz.orLabel.Importance = widget.LowImportance

	dz.browseBtn = widget.NewButtonWithIcon("", theme.FolderOpenIcon(), onBrowse)
	dz.browseBtn.Importance = widget.HighImportance

	dz.RefreshTexts()
	return dz
}

// RefreshTexts re-reads localized labels
func (dz *DropZone) RefreshTexts() {
	if dz.multiple {
		dz.hintLabel.SetText(dz.localization.GetText(KeyDropHereMany))
	} else {
		dz.hintLabel.SetText(dz.localization.GetText(KeyDropHereOne))
	}
	dz.orLabel.SetText(dz.localization.GetText(KeyOr))
	dz.browseBtn.SetText(dz.localization.GetText(KeyBrowse))
}

// SetEnabled toggles the Browse button
func (dz *DropZone) SetEnabled(enabled bool) {
	if enabled {
		dz.browseBtn.Enable()
	} else {
		dz.browseBtn.Disable()
	}
}

// CreateRenderer creates the widget renderer
func (dz *DropZone) CreateRenderer() fyne.WidgetRenderer {
	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = theme.Color(theme.ColorNamePrimary)
	border.StrokeWidth = 2
	border.CornerRadius = 2 * theme.Size(theme.SizeNameInputRadius)

	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(RowMinWidth, DropZoneHeight))

	content := container.NewVBox(
		layout.NewSpacer(),
		dz.iconLabel,
		dz.hintLabel,
		dz.orLabel,
		container.NewCenter(dz.browseBtn),
		layout.NewSpacer(),
	)

	return &rowRenderer{
		background: border,
		content:    container.NewStack(spacer, content),
	}
}
