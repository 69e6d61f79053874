package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/pdftoolkit/pdf-toolkit/internal/pagerange"
)

// rangeRow is one editable page-range entry
type rangeRow struct {
	entry     *widget.Entry
	hint      *widget.Label
	removeBtn *widget.Button
	container *fyne.Container
}

// RangeInput edits the list of page-range entries of a split
type RangeInput struct {
	localization *Localization

	heading *widget.Label
	help    *widget.Label
	addBtn  *widget.Button
	list    *fyne.Container
	rows    []*rangeRow

	container *fyne.Container

	totalPages int

	onChanged func(index int, text string)
	onAdd     func()
	onRemove  func(index int)
}

// NewRangeInput creates the page-range editor
func NewRangeInput(localization *Localization, onChanged func(int, string), onAdd func(), onRemove func(int)) *RangeInput {
	ri := &RangeInput{
		localization: localization,
		onChanged:    onChanged,
		onAdd:        onAdd,
		onRemove:     onRemove,
	}

	ri.heading = widget.NewLabel("")
	ri.heading.TextStyle = fyne.TextStyle{Bold: true}

	ri.help = widget.NewLabel("")
	ri.help.Wrapping = fyne.TextWrapWord
	ri.help.Importance = widget.LowImportance

	ri.addBtn = widget.NewButtonWithIcon("", theme.ContentAddIcon(), func() {
		if ri.onAdd != nil {
			ri.onAdd()
		}
	})

	ri.list = container.NewVBox()
	ri.container = container.NewVBox(ri.heading, ri.list, container.NewHBox(ri.addBtn), ri.help)

	ri.RefreshTexts()
	return ri
}

// Container returns the editor's root object
func (ri *RangeInput) Container() fyne.CanvasObject {
	return ri.container
}

// RefreshTexts re-reads localized labels
func (ri *RangeInput) RefreshTexts() {
	ri.heading.SetText(ri.localization.GetText(KeyPageRanges))
	ri.help.SetText(ri.localization.GetText(KeyRangeHelp))
	ri.addBtn.SetText(ri.localization.GetText(KeyAddRange))
	for _, row := range ri.rows {
		row.entry.SetPlaceHolder(ri.localization.GetText(KeyRangePlaceholder))
	}
}

// Update syncs the editor with the workspace entries
func (ri *RangeInput) Update(ranges []string, totalPages int, enabled bool) {
	ri.totalPages = totalPages

	if len(ri.rows) != len(ranges) {
		ri.rebuild(len(ranges))
	}

	for i, text := range ranges {
		row := ri.rows[i]
		if row.entry.Text != text {
			row.entry.SetText(text)
		}
		ri.updateHint(row, text)

		if enabled {
			row.entry.Enable()
			row.removeBtn.Enable()
		} else {
			row.entry.Disable()
			row.removeBtn.Disable()
		}
	}

	if enabled {
		ri.addBtn.Enable()
	} else {
		ri.addBtn.Disable()
	}
}

func (ri *RangeInput) rebuild(n int) {
	ri.rows = make([]*rangeRow, n)
	objects := make([]fyne.CanvasObject, n)
	for i := 0; i < n; i++ {
		ri.rows[i] = ri.newRow(i)
		objects[i] = ri.rows[i].container
	}
	ri.list.Objects = objects
	ri.list.Refresh()
}

func (ri *RangeInput) newRow(index int) *rangeRow {
	row := &rangeRow{}

	row.entry = widget.NewEntry()
	row.entry.SetPlaceHolder(ri.localization.GetText(KeyRangePlaceholder))
	row.entry.OnChanged = func(text string) {
		ri.updateHint(row, text)
		if ri.onChanged != nil {
			ri.onChanged(index, text)
		}
	}

	row.hint = widget.NewLabel("")

	row.removeBtn = widget.NewButtonWithIcon("", theme.ContentRemoveIcon(), func() {
		if ri.onRemove != nil {
			ri.onRemove(index)
		}
	})
	row.removeBtn.Importance = widget.LowImportance

	// Fix entry width so hints do not push it around
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(RangeEntryWidth, 0))
	entryBox := container.NewStack(spacer, row.entry)

	row.container = container.NewBorder(nil, nil, entryBox, row.removeBtn, row.hint)
	return row
}

// updateHint shows how many pages an entry selects, or that it is invalid
func (ri *RangeInput) updateHint(row *rangeRow, text string) {
	if !pagerange.HasInput([]string{text}) || ri.totalPages <= 0 {
		row.hint.SetText("")
		return
	}

	sel, ok := pagerange.ParseEntry(text, ri.totalPages)
	if !ok {
		row.hint.Importance = widget.DangerImportance
		row.hint.SetText(IconError + " " + ri.localization.GetText(KeyRangeInvalid))
		return
	}
	row.hint.Importance = widget.SuccessImportance
	row.hint.SetText(IconSuccess + " " + fmt.Sprintf(ri.localization.GetText(KeyPagesFmt), sel.Len()))
}
