package main

import (
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"

	"focusboard/internal/audio"
	"focusboard/internal/core/ambient"
	"focusboard/internal/core/timer"
	"focusboard/internal/core/todo"
	"focusboard/internal/logger"
	"focusboard/internal/platform"
	"focusboard/internal/storage"
	"focusboard/internal/ui/board"
	"focusboard/internal/ui/preferences"
	"focusboard/internal/ui/timerview"
	"focusboard/internal/ui/todoview"
	"focusboard/internal/ui/tray"
	"focusboard/resources"
)

const chimeVolume = 0.8

type focusApp struct {
	opts  *options
	log   *logger.Logger
	guard *platform.InstanceGuard

	settingsPath string
	settings     preferences.Settings
	chimeOn      atomic.Bool
}

func newApp(opts *options, log *logger.Logger, guard *platform.InstanceGuard) *focusApp {
	return &focusApp{opts: opts, log: log, guard: guard}
}

func (focus *focusApp) run() error {
	focus.loadSettings()
	focus.chimeOn.Store(focus.settings.ChimeEnabled)

	fyneApp := app.NewWithID("com.focusboard.app")
	fyneApp.SetIcon(resources.MustLogo("icon.png"))

	backend, chime := focus.openAudio()
	countdown := timer.New(timer.Config{TickInterval: time.Second})
	countdown.SetAlerter(timer.AlerterFunc(func() {
		if focus.chimeOn.Load() {
			chime.Alert()
		}
		fyne.Do(func() {
			fyneApp.SendNotification(fyne.NewNotification(appName, "Time is up. Nice work!"))
		})
	}))

	selector := ambient.NewSelector(backend, focus.log, focus.settings.Volume)
	tasks := todo.NewList()

	boardConfig := focus.settings.BoardConfig()
	background, err := resources.Image(boardConfig.Background)
	if err != nil {
		focus.log.Warn("board: background %s unavailable: %v", boardConfig.Background, err)
	}
	page := board.New(boardConfig, background, focus.log)

	window := fyneApp.NewWindow(appName)
	prefsWindow := preferences.New(fyneApp, focus.settings, func(updated preferences.Settings) {
		focus.applySettings(updated, selector, page)
	})

	timerView := timerview.New(countdown, selector, focus.settings.Presets, prefsWindow.Show)
	todoView := todoview.New(tasks)
	page.Add("Timer", timerView.Content(), boardConfig.TimerAt)
	page.Add("Things to do", todoView.Content(), boardConfig.TodoAt)

	window.SetContent(page.Content())
	window.Resize(fyne.NewSize(1280, 800))
	window.SetMaster()

	show := func() {
		window.Show()
		window.RequestFocus()
	}
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		focus.installTray(desktopApp, countdown, selector, show, prefsWindow.Show, fyneApp.Quit)
		window.SetCloseIntercept(window.Hide)
	} else {
		focus.log.Debug("system tray unsupported on this platform")
	}

	focus.guard.Serve(func() {
		fyne.Do(show)
	})

	fyneApp.Lifecycle().SetOnStopped(func() {
		page.Close()
		countdown.Close()
		selector.Close()
		focus.log.Info("%s stopped", appName)
	})

	focus.log.Info("%s %s started", appName, version)
	window.ShowAndRun()
	return nil
}

func (focus *focusApp) loadSettings() {
	path := focus.opts.configPath
	if path == "" {
		defaultPath, err := storage.DefaultPath(appName)
		if err != nil {
			focus.log.Warn("settings: %v; using defaults", err)
			focus.settings = preferences.DefaultSettings()
			return
		}
		path = defaultPath
	}
	focus.settingsPath = path

	settings, err := storage.LoadSettings(path)
	if err != nil {
		focus.log.Warn("settings: %v; using defaults", err)
	} else {
		focus.log.Debug("settings: loaded from %s", path)
	}
	focus.settings = settings
}

func (focus *focusApp) openAudio() (ambient.Backend, timer.Alerter) {
	audioConfig := focus.settings.AudioConfig()
	engine, err := audio.NewEngine(audio.NewLoader(&http.Client{Timeout: 30 * time.Second}), focus.log)
	if err != nil {
		focus.log.Warn("audio: %v; continuing without sound", err)
		silent := audio.NewSilent(focus.log)
		return silent, silent
	}
	return engine, engine.Chime(audioConfig.ChimePath, chimeVolume)
}

func (focus *focusApp) applySettings(updated preferences.Settings, selector *ambient.Selector, page *board.Board) {
	focus.settings = updated
	selector.SetVolume(updated.AudioConfig().Volume)
	page.SetDim(updated.BoardConfig().DimAlpha)
	focus.chimeOn.Store(updated.ChimeEnabled)

	if focus.settingsPath == "" {
		return
	}
	if err := storage.SaveSettings(focus.settingsPath, updated); err != nil {
		focus.log.Error("settings: %v", err)
		return
	}
	focus.log.Debug("settings: saved to %s", focus.settingsPath)
}

func (focus *focusApp) installTray(desktopApp desktop.App, countdown *timer.Timer, selector *ambient.Selector, show, showPreferences, quit func()) {
	desktopApp.SetSystemTrayIcon(resources.MustLogo("icon.png"))
	manager := tray.New(desktopApp, tray.Callbacks{
		OnToggleRun:   countdown.ToggleRun,
		OnReset:       countdown.Reset,
		OnMute:        selector.Mute,
		OnShow:        show,
		OnPreferences: showPreferences,
		OnQuit:        quit,
	})

	update := func() {
		state := countdown.State()
		manager.SetStatus(fmt.Sprintf("%s %s", state.Mode.Label(), state.Text()))
		manager.SetRunning(state.Running)
	}
	update()

	events := countdown.Subscribe(8)
	go func() {
		for range events {
			fyne.Do(update)
		}
	}()
}
