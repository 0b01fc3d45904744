package preferences

import (
	"focusboard/internal/core/ambient"
	"focusboard/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	Volume       float64
	ChimeEnabled bool
	ChimePath    string

	Background    string
	BackgroundDim float64
	TimerAt       model.Point
	TodoAt        model.Point

	Presets []ambient.Preset
}

// DefaultSettings returns default settings for FocusBoard.
func DefaultSettings() Settings {
	return Settings{
		Volume:        ambient.DefaultVolume,
		ChimeEnabled:  true,
		ChimePath:     "sounds/chime.wav",
		Background:    "img/bg1.png",
		BackgroundDim: 0.4,
		TimerAt:       model.Point{X: 80, Y: 80},
		TodoAt:        model.Point{X: 900, Y: 350},
		Presets:       ambient.DefaultPresets(),
	}
}

// AudioConfig converts settings to AudioConfig.
func (settings Settings) AudioConfig() model.AudioConfig {
	return model.AudioConfig{
		Volume:       clamp(settings.Volume, 0, 1),
		ChimeEnabled: settings.ChimeEnabled,
		ChimePath:    settings.ChimePath,
	}
}

// BoardConfig converts settings to BoardConfig.
func (settings Settings) BoardConfig() model.BoardConfig {
	return model.BoardConfig{
		Background: settings.Background,
		DimAlpha:   uint8(clamp(settings.BackgroundDim, 0, 1) * 255),
		TimerAt:    settings.TimerAt,
		TodoAt:     settings.TodoAt,
	}
}

func clamp(value, low, high float64) float64 {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
