package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"focusboard/internal/core/ambient"
	"focusboard/internal/core/model"
	"focusboard/internal/platform"
	"focusboard/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlPoint struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
}

type yamlSettings struct {
	Volume        *float64         `yaml:"volume,omitempty"`
	ChimeEnabled  *bool            `yaml:"chime_enabled,omitempty"`
	ChimePath     string           `yaml:"chime_path,omitempty"`
	Background    string           `yaml:"background,omitempty"`
	BackgroundDim *float64         `yaml:"background_dim,omitempty"`
	TimerPosition *yamlPoint       `yaml:"timer_position,omitempty"`
	TodoPosition  *yamlPoint       `yaml:"todo_position,omitempty"`
	Presets       []ambient.Preset `yaml:"presets,omitempty"`
}

// DefaultPath returns <config dir>/<appName>/settings.yaml.
func DefaultPath(appName string) (string, error) {
	configDir, err := platform.ConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve settings path: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

// LoadSettings reads user preferences from YAML at path.
// If the file does not exist, default settings are returned.
func LoadSettings(path string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes user preferences to YAML at path.
func SaveSettings(path string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	volume := settings.Volume
	chime := settings.ChimeEnabled
	dim := settings.BackgroundDim
	fileData := yamlSettings{
		Volume:        &volume,
		ChimeEnabled:  &chime,
		ChimePath:     settings.ChimePath,
		Background:    settings.Background,
		BackgroundDim: &dim,
		TimerPosition: &yamlPoint{X: settings.TimerAt.X, Y: settings.TimerAt.Y},
		TodoPosition:  &yamlPoint{X: settings.TodoAt.X, Y: settings.TodoAt.Y},
		Presets:       settings.Presets,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.Volume != nil && *fileData.Volume >= 0 && *fileData.Volume <= 1 {
		settings.Volume = *fileData.Volume
	}
	if fileData.ChimeEnabled != nil {
		settings.ChimeEnabled = *fileData.ChimeEnabled
	}
	if fileData.ChimePath != "" {
		settings.ChimePath = fileData.ChimePath
	}
	if fileData.Background != "" {
		settings.Background = fileData.Background
	}
	if fileData.BackgroundDim != nil && *fileData.BackgroundDim >= 0 && *fileData.BackgroundDim <= 1 {
		settings.BackgroundDim = *fileData.BackgroundDim
	}
	if fileData.TimerPosition != nil {
		settings.TimerAt = model.Point{X: fileData.TimerPosition.X, Y: fileData.TimerPosition.Y}
	}
	if fileData.TodoPosition != nil {
		settings.TodoAt = model.Point{X: fileData.TodoPosition.X, Y: fileData.TodoPosition.Y}
	}

	presets := make([]ambient.Preset, 0, len(fileData.Presets))
	for _, preset := range fileData.Presets {
		if preset.Name != "" && preset.URL != "" {
			presets = append(presets, preset)
		}
	}
	if len(presets) > 0 {
		settings.Presets = presets
	}
}
