package audio

import (
	"sync"

	"github.com/ebitengine/oto/v3"
)

// Track is a looping ambient playback. The file is fetched and decoded in
// the background the first time Play is called.
type Track struct {
	engine *Engine
	url    string
	volume float64

	mu       sync.Mutex
	player   *oto.Player
	loading  bool
	wantPlay bool
	closed   bool
}

// Play starts or resumes the loop.
func (track *Track) Play() error {
	track.mu.Lock()
	defer track.mu.Unlock()
	if track.closed {
		return ErrClosed
	}
	track.wantPlay = true
	if track.player != nil {
		track.player.Play()
		return track.player.Err()
	}
	if !track.loading {
		track.loading = true
		go track.load()
	}
	return nil
}

// Pause stops output but keeps the decoded loop.
func (track *Track) Pause() {
	track.mu.Lock()
	defer track.mu.Unlock()
	track.wantPlay = false
	if track.player != nil {
		track.player.Pause()
	}
}

// Close releases the player. A pending load is discarded when it finishes.
func (track *Track) Close() error {
	track.mu.Lock()
	defer track.mu.Unlock()
	if track.closed {
		return nil
	}
	track.closed = true
	track.wantPlay = false
	if track.player == nil {
		return nil
	}
	track.player.Pause()
	err := track.player.Close()
	track.player = nil
	return err
}

func (track *Track) load() {
	pcm, err := track.engine.loadPCM(track.url)

	track.mu.Lock()
	defer track.mu.Unlock()
	track.loading = false
	if err != nil {
		track.engine.log.Warn("audio: track %s unavailable: %v", track.url, err)
		return
	}
	if track.closed {
		return
	}

	player := track.engine.ctx.NewPlayer(newLoopReader(pcm))
	player.SetVolume(track.volume)
	track.player = player
	if track.wantPlay {
		player.Play()
		track.engine.log.Debug("audio: looping %s (%d bytes of PCM)", track.url, len(pcm))
	}
}
