package board

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"focusboard/internal/core/drag"
)

// Handle is the title strip a panel is dragged by. Fyne keeps delivering
// Dragged to the widget that started the gesture, so moves and the release
// are observed wherever the pointer goes.
type Handle struct {
	widget.BaseWidget

	title      string
	surface    *drag.Surface
	controller *drag.Controller
	pointer    drag.Position
	active     bool
}

// NewHandle creates a drag handle feeding surface on behalf of controller.
func NewHandle(title string, surface *drag.Surface, controller *drag.Controller) *Handle {
	handle := &Handle{title: title, surface: surface, controller: controller}
	handle.ExtendBaseWidget(handle)
	return handle
}

// CreateRenderer implements fyne.Widget.
func (handle *Handle) CreateRenderer() fyne.WidgetRenderer {
	background := canvas.NewRectangle(color.NRGBA{R: 255, G: 255, B: 255, A: 18})
	background.CornerRadius = 6

	label := canvas.NewText(handle.title, color.NRGBA{R: 255, G: 255, B: 255, A: 230})
	label.TextStyle = fyne.TextStyle{Bold: true}
	label.TextSize = 16

	return widget.NewSimpleRenderer(container.NewStack(background, container.NewPadded(label)))
}

// Dragged implements fyne.Draggable. The first event of a gesture is the
// pointer-down.
func (handle *Handle) Dragged(event *fyne.DragEvent) {
	delta := drag.Position{X: event.Dragged.DX, Y: event.Dragged.DY}
	if !handle.active {
		handle.active = true
		handle.pointer = drag.Position{X: event.AbsolutePosition.X, Y: event.AbsolutePosition.Y}.Sub(delta)
		handle.controller.PointerDown(handle.pointer)
	}
	handle.pointer = handle.pointer.Add(delta)
	handle.surface.Move(handle.pointer)
}

// DragEnd implements fyne.Draggable.
func (handle *Handle) DragEnd() {
	if !handle.active {
		return
	}
	handle.active = false
	handle.surface.Release(handle.pointer)
}
