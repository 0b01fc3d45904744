package preferences

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window   fyne.Window
	settings Settings
	onSave   func(Settings)

	volume      *widget.Slider
	volumeLabel *widget.Label
	chime       *widget.Check
	dim         *widget.Slider
	dimLabel    *widget.Label
	save        *widget.Button
	cancel      *widget.Button
}

// New creates a preferences window. It stays hidden until Show.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	prefs := &Window{
		window:      app.NewWindow("FocusBoard Preferences"),
		onSave:      onSave,
		volumeLabel: widget.NewLabel(""),
		dimLabel:    widget.NewLabel(""),
	}

	prefs.volume = widget.NewSlider(0, 1)
	prefs.volume.Step = 0.05
	prefs.volume.OnChanged = func(value float64) {
		prefs.volumeLabel.SetText(percent(value))
	}

	prefs.dim = widget.NewSlider(0, 0.9)
	prefs.dim.Step = 0.05
	prefs.dim.OnChanged = func(value float64) {
		prefs.dimLabel.SetText(percent(value))
	}

	prefs.chime = widget.NewCheck("Play a chime when the timer ends", nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Sound", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewBorder(nil, nil, widget.NewLabel("Ambient volume"), prefs.volumeLabel, prefs.volume),
		prefs.chime,
		widget.NewLabelWithStyle("Board", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewBorder(nil, nil, widget.NewLabel("Background dim"), prefs.dimLabel, prefs.dim),
	)

	prefs.save = widget.NewButton("Save", prefs.handleSave)
	prefs.save.Importance = widget.HighImportance
	prefs.cancel = widget.NewButton("Cancel", func() {
		prefs.UpdateSettings(prefs.settings)
		prefs.window.Hide()
	})
	buttons := container.NewHBox(prefs.save, layout.NewSpacer(), prefs.cancel)

	prefs.window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	prefs.window.Resize(fyne.NewSize(420, 260))
	prefs.window.SetCloseIntercept(prefs.window.Hide)

	prefs.UpdateSettings(settings)
	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// Settings returns the last saved settings.
func (prefs *Window) Settings() Settings {
	return prefs.settings
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.volume.SetValue(clamp(settings.Volume, 0, 1))
	prefs.chime.SetChecked(settings.ChimeEnabled)
	prefs.dim.SetValue(clamp(settings.BackgroundDim, prefs.dim.Min, prefs.dim.Max))
	prefs.volumeLabel.SetText(percent(prefs.volume.Value))
	prefs.dimLabel.SetText(percent(prefs.dim.Value))
}

func (prefs *Window) handleSave() {
	settings := prefs.settings
	settings.Volume = prefs.volume.Value
	settings.ChimeEnabled = prefs.chime.Checked
	settings.BackgroundDim = prefs.dim.Value

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func percent(value float64) string {
	return fmt.Sprintf("%d%%", int(value*100+0.5))
}
