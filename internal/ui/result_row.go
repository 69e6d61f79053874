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

// ResultRow shows one generated PDF with View and Download actions
type ResultRow struct {
	widget.BaseWidget

	artifact     *model.Artifact
	localization *Localization

	titleLabel  *widget.Label
	infoLabel   *widget.Label
	viewBtn     *widget.Button
	downloadBtn *widget.Button

	onView     func(artifactID string)
	onDownload func(artifactID string)
}

// NewResultRow creates a new result row widget
func NewResultRow(artifact *model.Artifact, localization *Localization, onView, onDownload func(artifactID string)) *ResultRow {
	rr := &ResultRow{
		artifact:     artifact,
		localization: localization,
		onView:       onView,
		onDownload:   onDownload,
	}
	rr.ExtendBaseWidget(rr)
	rr.createUI()
	return rr
}

// Artifact returns the artifact shown by the row
func (rr *ResultRow) Artifact() *model.Artifact {
	return rr.artifact
}

func (rr *ResultRow) createUI() {
	rr.titleLabel = widget.NewLabel(rr.artifact.Title)
	rr.titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	rr.infoLabel = widget.NewLabel(rr.artifact.FileName + MiddleDotSeparator +
		fmt.Sprintf(rr.localization.GetText(KeyPagesFmt), rr.artifact.PageCount) +
		MiddleDotSeparator + rr.artifact.GetSizeString())
	rr.infoLabel.Importance = widget.LowImportance
	rr.infoLabel.Truncation = fyne.TextTruncateEllipsis

	rr.viewBtn = widget.NewButtonWithIcon(rr.localization.GetText(KeyView), theme.VisibilityIcon(), func() {
		if rr.onView != nil {
			rr.onView(rr.artifact.ID)
		}
	})
	rr.viewBtn.Importance = widget.MediumImportance

	rr.downloadBtn = widget.NewButtonWithIcon(rr.localization.GetText(KeyDownload), theme.DownloadIcon(), func() {
		if rr.onDownload != nil {
			rr.onDownload(rr.artifact.ID)
		}
	})
	rr.downloadBtn.Importance = widget.HighImportance
}

// CreateRenderer creates the widget renderer
func (rr *ResultRow) CreateRenderer() fyne.WidgetRenderer {
	background := canvas.NewRectangle(color.Transparent)
	background.StrokeColor = theme.Color(theme.ColorNameSeparator)
	background.StrokeWidth = 1
	background.CornerRadius = theme.Size(theme.SizeNameInputRadius)

	text := container.NewVBox(rr.titleLabel, rr.infoLabel)
	actions := container.NewHBox(rr.viewBtn, rr.downloadBtn)
	content := container.NewBorder(nil, nil, widget.NewLabel(IconFile), actions, text)

	return &rowRenderer{
		background: background,
		content:    container.NewPadded(content),
	}
}
