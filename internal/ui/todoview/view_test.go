package todoview

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"focusboard/internal/core/todo"
)

func TestAddViaButtonClearsEntry(t *testing.T) {
	test.NewApp()
	list := todo.NewList()
	view := New(list)

	test.Type(view.entry, "water the plants")
	test.Tap(view.add)

	if list.Len() != 1 {
		t.Fatalf("%d items", list.Len())
	}
	if item, _ := list.Item(0); item.Text != "water the plants" {
		t.Fatalf("item %+v", item)
	}
	if view.entry.Text != "" {
		t.Fatalf("entry not cleared: %q", view.entry.Text)
	}
}

func TestBlankSubmitKeepsEntry(t *testing.T) {
	test.NewApp()
	list := todo.NewList()
	view := New(list)

	test.Type(view.entry, "   ")
	view.submit()

	if list.Len() != 0 {
		t.Fatal("blank task added")
	}
}

func TestRowBindsToggleAndRemove(t *testing.T) {
	test.NewApp()
	list := todo.NewList()
	view := New(list)
	list.Add("first")
	list.Add("second")

	row := view.createRow()
	view.updateRow(1, row)
	objects := row.(*fyne.Container).Objects
	label := objects[0].(*widget.Label)
	check := objects[1].(*widget.Check)
	remove := objects[2].(*widget.Button)

	if label.Text != "second" || check.Checked {
		t.Fatalf("row shows %q checked=%v", label.Text, check.Checked)
	}

	test.Tap(check)
	if item, _ := list.Item(1); !item.Done {
		t.Fatal("check did not toggle the item")
	}
	view.updateRow(1, row)
	if !label.TextStyle.Italic || label.Importance != widget.LowImportance {
		t.Fatal("done item not rendered as done")
	}

	test.Tap(remove)
	if list.Len() != 1 {
		t.Fatalf("%d items after remove", list.Len())
	}
	if item, _ := list.Item(0); item.Text != "first" {
		t.Fatalf("wrong item removed, left %+v", item)
	}
}
