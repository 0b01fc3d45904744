// Package timerview renders the countdown card: mode tabs, the MM:SS clock,
// start/pause and reset controls and the ambient sound picker.
package timerview

import (
	"image/color"
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"focusboard/internal/core/ambient"
	"focusboard/internal/core/timer"
)

// View is the timer widget.
type View struct {
	timer    *timer.Timer
	selector *ambient.Selector

	tabs       map[timer.Mode]*widget.Button
	clock      *canvas.Text
	toggle     *widget.Button
	reset      *widget.Button
	settings   *widget.Button
	presets    []*widget.Button
	urlEntry   *widget.Entry
	setButton  *widget.Button
	muteButton *widget.Button
	nowPlaying *widget.Label
	embedLink  *widget.Hyperlink
	embedFrame *fyne.Container
	content    fyne.CanvasObject
}

// New builds the widget. onSettings is called by the gear button.
func New(countdown *timer.Timer, selector *ambient.Selector, presets []ambient.Preset, onSettings func()) *View {
	view := &View{
		timer:    countdown,
		selector: selector,
		tabs:     make(map[timer.Mode]*widget.Button),
	}

	tabRow := container.NewGridWithColumns(len(timer.Modes))
	for _, mode := range timer.Modes {
		button := widget.NewButton(mode.Label(), func() {
			view.timer.SelectMode(mode)
			view.Refresh(view.timer.State())
		})
		view.tabs[mode] = button
		tabRow.Add(button)
	}

	view.clock = canvas.NewText("--:--", color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	view.clock.Alignment = fyne.TextAlignCenter
	view.clock.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	view.clock.TextSize = 56

	view.toggle = widget.NewButton("Start", func() {
		view.timer.ToggleRun()
		view.Refresh(view.timer.State())
	})
	view.toggle.Importance = widget.HighImportance
	view.reset = widget.NewButtonWithIcon("", theme.ViewRefreshIcon(), func() {
		view.timer.Reset()
		view.Refresh(view.timer.State())
	})
	view.settings = widget.NewButtonWithIcon("", theme.SettingsIcon(), func() {
		if onSettings != nil {
			onSettings()
		}
	})
	controls := container.NewHBox(layout.NewSpacer(), view.toggle, view.reset, view.settings, layout.NewSpacer())

	presetRow := container.NewGridWithColumns(max(len(presets), 1))
	for _, preset := range presets {
		button := widget.NewButton(preset.Name, func() {
			view.selector.SelectPreset(preset)
		})
		view.presets = append(view.presets, button)
		presetRow.Add(button)
	}

	view.urlEntry = widget.NewEntry()
	view.urlEntry.SetPlaceHolder("Paste a YouTube, Spotify or audio link...")
	view.urlEntry.OnSubmitted = func(string) { view.submitURL() }
	view.setButton = widget.NewButton("Set", view.submitURL)
	view.muteButton = widget.NewButtonWithIcon("Mute", theme.VolumeMuteIcon(), func() {
		view.selector.Mute()
	})
	urlRow := container.NewBorder(nil, nil, nil, container.NewHBox(view.setButton, view.muteButton), view.urlEntry)

	view.nowPlaying = widget.NewLabel("Ambient sound off")
	view.embedLink = widget.NewHyperlink("", nil)
	view.embedFrame = container.NewVBox(widget.NewLabel("Embedded player"), view.embedLink)
	view.embedFrame.Hide()

	view.content = container.NewVBox(
		tabRow,
		view.clock,
		controls,
		widget.NewSeparator(),
		presetRow,
		urlRow,
		view.nowPlaying,
		view.embedFrame,
	)

	selector.OnChange(view.showSource)
	view.Refresh(countdown.State())
	view.showSource(selector.Active())

	events := countdown.Subscribe(8)
	go func() {
		for range events {
			fyne.Do(func() {
				view.Refresh(view.timer.State())
			})
		}
	}()

	return view
}

// Content returns the widget's canvas object.
func (view *View) Content() fyne.CanvasObject {
	return view.content
}

// Refresh applies a timer snapshot to the widgets.
func (view *View) Refresh(state timer.State) {
	for mode, button := range view.tabs {
		if mode == state.Mode {
			button.Importance = widget.HighImportance
		} else {
			button.Importance = widget.MediumImportance
		}
		button.Refresh()
	}

	view.clock.Text = state.Text()
	view.clock.Refresh()

	if state.Running {
		view.toggle.SetText("Pause")
	} else {
		view.toggle.SetText("Start")
	}
}

func (view *View) submitURL() {
	view.selector.Submit(view.urlEntry.Text)
}

func (view *View) showSource(source ambient.Source) {
	switch source.Kind {
	case ambient.KindEmbed:
		view.nowPlaying.SetText("Playing in embedded player")
		if parsed, err := url.Parse(source.URL); err == nil {
			view.embedLink.SetURL(parsed)
		}
		view.embedLink.SetText(source.URL)
		view.embedFrame.Show()
	case ambient.KindTrack:
		view.nowPlaying.SetText("Playing " + source.URL)
		view.embedFrame.Hide()
	default:
		view.nowPlaying.SetText("Ambient sound off")
		view.embedFrame.Hide()
	}
}
