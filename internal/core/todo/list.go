// Package todo holds the in-memory task list behind the "Things to do" widget.
package todo

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Item is one task. Items keep insertion order.
type Item struct {
	ID   string
	Text string
	Done bool
}

// List is an ordered, in-memory task list.
type List struct {
	mu       sync.Mutex
	items    []Item
	onChange func([]Item)
}

// NewList creates an empty list.
func NewList() *List {
	return &List{}
}

// OnChange registers a callback fired with a copy of the items after each change.
func (list *List) OnChange(handler func([]Item)) {
	list.mu.Lock()
	defer list.mu.Unlock()
	list.onChange = handler
}

// Add appends a task. Blank text is ignored.
func (list *List) Add(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	list.mu.Lock()
	list.items = append(list.items, Item{ID: uuid.NewString(), Text: trimmed})
	list.notifyLocked()
	return true
}

// Toggle flips the done flag of the task at index.
func (list *List) Toggle(index int) bool {
	list.mu.Lock()
	if index < 0 || index >= len(list.items) {
		list.mu.Unlock()
		return false
	}
	list.items[index].Done = !list.items[index].Done
	list.notifyLocked()
	return true
}

// Remove deletes the task at index.
func (list *List) Remove(index int) bool {
	list.mu.Lock()
	if index < 0 || index >= len(list.items) {
		list.mu.Unlock()
		return false
	}
	list.items = append(list.items[:index:index], list.items[index+1:]...)
	list.notifyLocked()
	return true
}

// Len returns the number of tasks.
func (list *List) Len() int {
	list.mu.Lock()
	defer list.mu.Unlock()
	return len(list.items)
}

// Item returns the task at index.
func (list *List) Item(index int) (Item, bool) {
	list.mu.Lock()
	defer list.mu.Unlock()
	if index < 0 || index >= len(list.items) {
		return Item{}, false
	}
	return list.items[index], true
}

// Items returns a copy of all tasks in display order.
func (list *List) Items() []Item {
	list.mu.Lock()
	defer list.mu.Unlock()
	return append([]Item(nil), list.items...)
}

// notifyLocked unlocks list.mu before running the callback.
func (list *List) notifyLocked() {
	items := append([]Item(nil), list.items...)
	handler := list.onChange
	list.mu.Unlock()
	if handler != nil {
		handler(items)
	}
}
