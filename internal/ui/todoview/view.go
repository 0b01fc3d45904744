// Package todoview renders the "Things to do" card.
package todoview

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"focusboard/internal/core/todo"
)

var listSize = fyne.NewSize(320, 256)

// View is the to-do widget.
type View struct {
	list    *todo.List
	entry   *widget.Entry
	add     *widget.Button
	items   *widget.List
	content fyne.CanvasObject
}

// New builds the widget over list.
func New(list *todo.List) *View {
	view := &View{list: list}

	view.entry = widget.NewEntry()
	view.entry.SetPlaceHolder("Add a task...")
	view.entry.OnSubmitted = func(string) { view.submit() }
	view.add = widget.NewButton("Add", view.submit)
	view.add.Importance = widget.HighImportance

	view.items = widget.NewList(list.Len, view.createRow, view.updateRow)
	list.OnChange(func([]todo.Item) {
		view.items.Refresh()
	})

	input := container.NewBorder(nil, nil, nil, view.add, view.entry)
	view.content = container.NewBorder(input, nil, nil, nil, container.NewGridWrap(listSize, view.items))
	return view
}

// Content returns the widget's canvas object.
func (view *View) Content() fyne.CanvasObject {
	return view.content
}

func (view *View) submit() {
	if view.list.Add(view.entry.Text) {
		view.entry.SetText("")
	}
}

func (view *View) createRow() fyne.CanvasObject {
	check := widget.NewCheck("", nil)
	label := widget.NewLabel("")
	label.Truncation = fyne.TextTruncateEllipsis
	remove := widget.NewButtonWithIcon("", theme.CancelIcon(), nil)
	remove.Importance = widget.DangerImportance
	return container.NewBorder(nil, nil, check, remove, label)
}

// updateRow binds row to the item at index. Border puts the centre object first.
func (view *View) updateRow(index widget.ListItemID, row fyne.CanvasObject) {
	item, ok := view.list.Item(index)
	if !ok {
		return
	}
	objects := row.(*fyne.Container).Objects
	label := objects[0].(*widget.Label)
	check := objects[1].(*widget.Check)
	remove := objects[2].(*widget.Button)

	check.OnChanged = nil
	check.SetChecked(item.Done)
	check.OnChanged = func(bool) { view.list.Toggle(index) }

	label.SetText(item.Text)
	label.TextStyle = fyne.TextStyle{Italic: item.Done}
	if item.Done {
		label.Importance = widget.LowImportance
	} else {
		label.Importance = widget.MediumImportance
	}
	label.Refresh()

	remove.OnTapped = func() { view.list.Remove(index) }
}
