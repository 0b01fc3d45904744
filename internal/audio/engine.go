// Package audio plays ambient loops and the completion chime through oto.
package audio

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ebitengine/oto/v3"

	"focusboard/internal/core/ambient"
	"focusboard/internal/logger"
)

// ErrClosed is returned when playing a track that was already closed.
var ErrClosed = errors.New("track closed")

// Compile-time interface check.
var _ ambient.Backend = (*Engine)(nil)

// Engine owns the process-wide oto context.
type Engine struct {
	ctx         *oto.Context
	loader      *Loader
	log         *logger.Logger
	loadTimeout time.Duration
}

// NewEngine opens the system audio device. Returns an error if it is
// unavailable; callers fall back to Silent.
func NewEngine(loader *Loader, log *logger.Logger) (*Engine, error) {
	op := &oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: ChannelCount,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("open audio device: %w", err)
	}
	<-readyChan

	log.Debug("audio engine initialized (rate=%d, channels=%d)", SampleRate, ChannelCount)
	return &Engine{ctx: ctx, loader: loader, log: log, loadTimeout: time.Minute}, nil
}

// Open returns a looping track for url. Loading happens on first Play.
func (engine *Engine) Open(url string, volume float64) (ambient.Playback, error) {
	return &Track{engine: engine, url: url, volume: volume}, nil
}

// Chime returns an Alerter that plays url once per Alert.
func (engine *Engine) Chime(url string, volume float64) *Chime {
	return &Chime{engine: engine, url: url, volume: volume, load: engine.loadPCM}
}

func (engine *Engine) loadPCM(url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), engine.loadTimeout)
	defer cancel()

	data, err := engine.loader.Load(ctx, url)
	if err != nil {
		return nil, err
	}
	pcm, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", url, err)
	}
	return pcm, nil
}
