package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/pdftoolkit/pdf-toolkit/internal/model"
	"github.com/pdftoolkit/pdf-toolkit/internal/notify"
)

// Toast background alpha over the success/error colour
const toastAlpha = 230

// ToastLayer renders the notification queue as stacked cards in the
// bottom-right corner, on top of the window content
type ToastLayer struct {
	queue     *notify.Queue
	stack     *fyne.Container
	container *fyne.Container
}

// NewToastLayer creates the overlay and subscribes to queue changes
func NewToastLayer(queue *notify.Queue) *ToastLayer {
	tl := &ToastLayer{
		queue: queue,
		stack: container.NewVBox(),
	}

	bottom := container.NewHBox(layout.NewSpacer(), container.New(layout.NewCustomPaddedLayout(0, ToastMargin, 0, ToastMargin), tl.stack))
	tl.container = container.NewBorder(nil, bottom, nil, nil)

	queue.SetChangeCallback(func() {
		fyne.Do(tl.Refresh)
	})
	return tl
}

// Container returns the overlay object
func (tl *ToastLayer) Container() fyne.CanvasObject {
	return tl.container
}

// Len returns the number of cards currently shown
func (tl *ToastLayer) Len() int {
	return len(tl.stack.Objects)
}

// Refresh rebuilds the cards from the queue, oldest on top
func (tl *ToastLayer) Refresh() {
	items := tl.queue.List()
	objects := make([]fyne.CanvasObject, 0, len(items))
	for _, n := range items {
		objects = append(objects, tl.newCard(n))
	}
	tl.stack.Objects = objects
	tl.stack.Refresh()
}

func (tl *ToastLayer) newCard(n *model.Notification) fyne.CanvasObject {
	colorName := theme.ColorNameSuccess
	icon := IconSuccess
	if n.IsError() {
		colorName = theme.ColorNameError
		icon = IconError
	}

	c := color.NRGBAModel.Convert(theme.Color(colorName)).(color.NRGBA)
	c.A = toastAlpha
	background := canvas.NewRectangle(c)
	background.CornerRadius = theme.Size(theme.SizeNameInputRadius)

	message := widget.NewLabel(icon + " " + n.Message)
	message.Wrapping = fyne.TextWrapWord
	message.TextStyle = fyne.TextStyle{Bold: true}

	id := n.ID
	closeBtn := widget.NewButton(IconClose, func() {
		if !tl.queue.Dismiss(id) {
			log.Printf("Toast %s already dismissed", id)
		}
	})
	closeBtn.Importance = widget.LowImportance

	// Fix card width
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(ToastWidth, 0))

	body := container.NewBorder(nil, nil, nil, closeBtn, message)
	return container.NewStack(spacer, background, container.NewPadded(body))
}
