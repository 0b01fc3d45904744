// Package tray owns the system tray menu.
package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
)

// MenuSetter is implemented by desktop.App.
type MenuSetter interface {
	SetSystemTrayMenu(menu *fyne.Menu)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnToggleRun   func()
	OnReset       func()
	OnMute        func()
	OnShow        func()
	OnPreferences func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app        MenuSetter
	callbacks  Callbacks
	statusItem *fyne.MenuItem
	runItem    *fyne.MenuItem
	menu       *fyne.Menu
}

// New creates a tray manager with the provided callbacks.
func New(app MenuSetter, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Status: starting...", nil)
	manager.statusItem.Disabled = true
	manager.runItem = fyne.NewMenuItem("Start", invoke(&manager.callbacks.OnToggleRun))

	manager.menu = fyne.NewMenu("FocusBoard",
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		manager.runItem,
		fyne.NewMenuItem("Reset", invoke(&manager.callbacks.OnReset)),
		fyne.NewMenuItem("Mute ambient", invoke(&manager.callbacks.OnMute)),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Show board", invoke(&manager.callbacks.OnShow)),
		fyne.NewMenuItem("Preferences", invoke(&manager.callbacks.OnPreferences)),
		fyne.NewMenuItem("Quit", invoke(&manager.callbacks.OnQuit)),
	)
	// Flagged so the driver does not append a second Quit.
	manager.menu.Items[len(manager.menu.Items)-1].IsQuit = true
	manager.refreshMenu()

	return manager
}

// SetStatus updates the status label.
func (manager *Manager) SetStatus(status string) {
	label := fmt.Sprintf("Status: %s", status)
	if manager.statusItem.Label == label {
		return
	}
	manager.statusItem.Label = label
	manager.refreshMenu()
}

// SetRunning switches the run item between Start and Pause.
func (manager *Manager) SetRunning(running bool) {
	label := "Start"
	if running {
		label = "Pause"
	}
	if manager.runItem.Label == label {
		return
	}
	manager.runItem.Label = label
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(manager.menu)
}

func invoke(handler *func()) func() {
	return func() {
		if *handler != nil {
			(*handler)()
		}
	}
}
