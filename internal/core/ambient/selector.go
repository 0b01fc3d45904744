// Package ambient chooses and controls the background sound of the board.
package ambient

import (
	"strings"
	"sync"

	"focusboard/internal/logger"
)

// Playback is one looping track handed out by a Backend.
type Playback interface {
	Play() error
	Pause()
	Close() error
}

// Backend opens looping playbacks for direct audio URLs.
type Backend interface {
	Open(url string, volume float64) (Playback, error)
}

// Preset is a named ambient loop offered as a button.
type Preset struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// DefaultPresets are the loops bundled with the application.
func DefaultPresets() []Preset {
	return []Preset{
		{Name: "Rain", URL: "sounds/rain.wav"},
		{Name: "Waves", URL: "sounds/waves.wav"},
		{Name: "Brown noise", URL: "sounds/brown.wav"},
	}
}

// DefaultVolume is the fixed track volume used when none is configured.
const DefaultVolume = 0.4

// Selector owns the single active ambient source. Nothing else may start or
// stop its playback.
type Selector struct {
	mu       sync.Mutex
	backend  Backend
	log      *logger.Logger
	volume   float64
	enabled  bool
	source   Source
	playback Playback
	onChange func(Source)
	closed   bool
}

// NewSelector creates a muted selector with no source.
func NewSelector(backend Backend, log *logger.Logger, volume float64) *Selector {
	return &Selector{
		backend: backend,
		log:     log,
		volume:  clampVolume(volume),
	}
}

// OnChange registers a callback fired with each new active source.
func (selector *Selector) OnChange(handler func(Source)) {
	selector.mu.Lock()
	defer selector.mu.Unlock()
	selector.onChange = handler
}

// Active returns the current source.
func (selector *Selector) Active() Source {
	selector.mu.Lock()
	defer selector.mu.Unlock()
	return selector.source
}

// Enabled reports whether tracks start playing when selected.
func (selector *Selector) Enabled() bool {
	selector.mu.Lock()
	defer selector.mu.Unlock()
	return selector.enabled
}

// Volume returns the volume applied to new tracks.
func (selector *Selector) Volume() float64 {
	selector.mu.Lock()
	defer selector.mu.Unlock()
	return selector.volume
}

// SetVolume changes the volume for tracks opened from now on.
func (selector *Selector) SetVolume(volume float64) {
	selector.mu.Lock()
	defer selector.mu.Unlock()
	selector.volume = clampVolume(volume)
}

// Submit is the "Set" action: it enables playback and selects rawURL.
// Blank input is ignored.
func (selector *Selector) Submit(rawURL string) Source {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return selector.Active()
	}
	selector.enable()
	return selector.SetSource(trimmed)
}

// SelectPreset enables playback, even after Mute, and selects the preset.
func (selector *Selector) SelectPreset(preset Preset) Source {
	if strings.TrimSpace(preset.URL) == "" {
		return selector.Active()
	}
	selector.enable()
	return selector.SetSource(preset.URL)
}

// Enable turns playback on and starts the current track, if any.
func (selector *Selector) Enable() {
	selector.mu.Lock()
	defer selector.mu.Unlock()
	if selector.closed || selector.enabled {
		return
	}
	selector.enabled = true
	if selector.playback != nil {
		selector.startLocked()
	}
}

// SetSource classifies rawURL and makes it the active source. The previous
// track is always stopped first. A new track only starts if playback is
// enabled.
func (selector *Selector) SetSource(rawURL string) Source {
	source := Classify(rawURL)

	selector.mu.Lock()
	if selector.closed {
		selector.mu.Unlock()
		return Source{}
	}
	selector.discardLocked()
	selector.source = source

	if source.Kind == KindTrack {
		playback, err := selector.backend.Open(source.URL, selector.volume)
		if err != nil {
			selector.log.Warn("ambient: open %s: %v", source.URL, err)
		} else {
			selector.playback = playback
			if selector.enabled {
				selector.startLocked()
			}
		}
	}
	handler := selector.onChange
	selector.mu.Unlock()

	selector.log.Debug("ambient: active source %s %s", source.Kind, source.URL)
	if handler != nil {
		handler(source)
	}
	return source
}

// Mute stops and discards the track, clears any embed and disables playback.
func (selector *Selector) Mute() {
	selector.mu.Lock()
	selector.enabled = false
	selector.discardLocked()
	selector.source = Source{}
	handler := selector.onChange
	closed := selector.closed
	selector.mu.Unlock()

	if handler != nil && !closed {
		handler(Source{})
	}
}

// Close mutes and makes the selector inert.
func (selector *Selector) Close() {
	selector.Mute()
	selector.mu.Lock()
	selector.closed = true
	selector.mu.Unlock()
}

func (selector *Selector) enable() {
	selector.mu.Lock()
	defer selector.mu.Unlock()
	selector.enabled = true
}

func (selector *Selector) startLocked() {
	if err := selector.playback.Play(); err != nil {
		selector.log.Warn("ambient: playback of %s rejected: %v", selector.source.URL, err)
	}
}

func (selector *Selector) discardLocked() {
	if selector.playback == nil {
		return
	}
	selector.playback.Pause()
	if err := selector.playback.Close(); err != nil {
		selector.log.Debug("ambient: close %s: %v", selector.source.URL, err)
	}
	selector.playback = nil
}

func clampVolume(volume float64) float64 {
	if volume < 0 {
		return 0
	}
	if volume > 1 {
		return 1
	}
	return volume
}
