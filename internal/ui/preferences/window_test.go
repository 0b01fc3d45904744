package preferences

import (
	"math"
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestWindowLoadsSettings(t *testing.T) {
	app := test.NewApp()
	settings := DefaultSettings()
	settings.Volume = 0.75
	settings.ChimeEnabled = false

	prefs := New(app, settings, nil)

	if !near(prefs.volume.Value, 0.75) {
		t.Fatalf("volume slider %v", prefs.volume.Value)
	}
	if prefs.chime.Checked {
		t.Fatal("chime should be unchecked")
	}
	if prefs.volumeLabel.Text != "75%" {
		t.Fatalf("volume label %q", prefs.volumeLabel.Text)
	}
	if prefs.dimLabel.Text != "40%" {
		t.Fatalf("dim label %q", prefs.dimLabel.Text)
	}
}

func TestSaveReportsEditedValues(t *testing.T) {
	app := test.NewApp()
	var saved *Settings
	prefs := New(app, DefaultSettings(), func(settings Settings) {
		saved = &settings
	})

	prefs.volume.SetValue(0.2)
	test.Tap(prefs.chime)
	prefs.dim.SetValue(0.6)
	test.Tap(prefs.save)

	if saved == nil {
		t.Fatal("onSave not called")
	}
	if !near(saved.Volume, 0.2) || saved.ChimeEnabled || !near(saved.BackgroundDim, 0.6) {
		t.Fatalf("saved %+v", *saved)
	}
	if saved.Background != "img/bg1.png" || len(saved.Presets) != 3 {
		t.Fatal("unedited settings were not carried over")
	}
	if !near(prefs.Settings().Volume, 0.2) {
		t.Fatal("window did not keep the saved settings")
	}
}

func TestCancelRestoresSavedValues(t *testing.T) {
	app := test.NewApp()
	calls := 0
	prefs := New(app, DefaultSettings(), func(Settings) { calls++ })

	prefs.volume.SetValue(1)
	test.Tap(prefs.cancel)

	if calls != 0 {
		t.Fatal("cancel saved settings")
	}
	if !near(prefs.volume.Value, DefaultSettings().Volume) {
		t.Fatalf("volume not restored: %v", prefs.volume.Value)
	}
}

// near absorbs the slider snapping values to its step.
func near(got, want float64) bool {
	return math.Abs(got-want) < 1e-6
}
