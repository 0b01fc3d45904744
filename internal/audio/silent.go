package audio

import (
	"focusboard/internal/core/ambient"
	"focusboard/internal/logger"
)

// Compile-time interface check.
var _ ambient.Backend = (*Silent)(nil)

// Silent is the backend used when no audio device is available. Every
// track opens fine and plays nothing.
type Silent struct {
	log *logger.Logger
}

// NewSilent creates a silent backend.
func NewSilent(log *logger.Logger) *Silent {
	return &Silent{log: log}
}

// Open returns a track that does nothing.
func (silent *Silent) Open(url string, volume float64) (ambient.Playback, error) {
	return &silentTrack{log: silent.log, url: url}, nil
}

// Alert does nothing. It satisfies timer.Alerter.
func (silent *Silent) Alert() {
	silent.log.Debug("audio: silent chime")
}

type silentTrack struct {
	log *logger.Logger
	url string
}

func (track *silentTrack) Play() error {
	track.log.Debug("audio: silent backend would play %s", track.url)
	return nil
}

func (track *silentTrack) Pause() {}

func (track *silentTrack) Close() error { return nil }
