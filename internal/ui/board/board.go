// Package board composes the widget page: a background image, a dimming
// layer and freely positioned, draggable panels.
package board

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"focusboard/internal/core/drag"
	"focusboard/internal/core/model"
	"focusboard/internal/logger"
)

// Board is the page every widget is mounted on.
type Board struct {
	surface     *drag.Surface
	background  *canvas.Image
	dim         *canvas.Rectangle
	layer       *fyne.Container
	root        *fyne.Container
	controllers []*drag.Controller
	log         *logger.Logger
}

// New builds the page. A nil background leaves the dimming layer on a plain fill.
func New(config model.BoardConfig, background fyne.Resource, log *logger.Logger) *Board {
	image := canvas.NewImageFromResource(background)
	image.FillMode = canvas.ImageFillStretch

	dim := canvas.NewRectangle(color.NRGBA{A: config.DimAlpha})
	layer := container.New(&freeLayout{})

	return &Board{
		surface:    drag.NewSurface(),
		background: image,
		dim:        dim,
		layer:      layer,
		root:       container.NewStack(image, dim, layer),
		log:        log,
	}
}

// Content returns the canvas object to set on the window.
func (board *Board) Content() fyne.CanvasObject {
	return board.root
}

// Surface returns the viewport-wide pointer surface.
func (board *Board) Surface() *drag.Surface {
	return board.surface
}

// Add mounts content as a card titled title at the given position and
// returns the controller that moves it.
func (board *Board) Add(title string, content fyne.CanvasObject, at model.Point) *drag.Controller {
	controller := drag.NewController(board.surface, drag.Position{X: at.X, Y: at.Y})
	handle := NewHandle(title, board.surface, controller)

	card := canvas.NewRectangle(color.NRGBA{R: 24, G: 24, B: 27, A: 235})
	card.CornerRadius = 12
	panel := container.NewStack(card, container.NewPadded(container.NewBorder(handle, nil, nil, nil, content)))
	panel.Move(fyne.NewPos(at.X, at.Y))
	panel.Resize(panel.MinSize())

	controller.OnMove(func(position drag.Position) {
		panel.Move(fyne.NewPos(position.X, position.Y))
	})

	board.layer.Add(panel)
	board.controllers = append(board.controllers, controller)
	board.log.Debug("board: mounted %q at (%.0f, %.0f)", title, at.X, at.Y)
	return controller
}

// SetDim changes the alpha of the dimming layer.
func (board *Board) SetDim(alpha uint8) {
	board.dim.FillColor = color.NRGBA{A: alpha}
	board.dim.Refresh()
}

// Close abandons any gesture still in progress.
func (board *Board) Close() {
	board.surface.Cancel()
	for _, controller := range board.controllers {
		controller.Close()
	}
}

// freeLayout leaves positions alone and sizes each panel to its minimum.
type freeLayout struct{}

func (layout *freeLayout) Layout(objects []fyne.CanvasObject, _ fyne.Size) {
	for _, object := range objects {
		object.Resize(object.MinSize())
	}
}

func (layout *freeLayout) MinSize(_ []fyne.CanvasObject) fyne.Size {
	return fyne.NewSize(0, 0)
}
