package audio

import (
	"bytes"
	"sync"
	"time"
)

// Chime plays a short sound once per Alert. It satisfies timer.Alerter.
// The decoded sound is kept after the first successful load; failed loads
// are retried on the next Alert.
type Chime struct {
	engine *Engine
	url    string
	volume float64
	load   func(url string) ([]byte, error)

	mu  sync.Mutex
	pcm []byte
}

// Alert plays the chime in the background.
func (chime *Chime) Alert() {
	go chime.play()
}

func (chime *Chime) play() {
	pcm, err := chime.sound()
	if err != nil {
		chime.engine.log.Warn("audio: chime %s unavailable: %v", chime.url, err)
		return
	}

	player := chime.engine.ctx.NewPlayer(bytes.NewReader(pcm))
	player.SetVolume(chime.volume)
	player.Play()
	for player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}
	if err := player.Close(); err != nil {
		chime.engine.log.Debug("audio: close chime player: %v", err)
	}
}

func (chime *Chime) sound() ([]byte, error) {
	chime.mu.Lock()
	defer chime.mu.Unlock()
	if chime.pcm != nil {
		return chime.pcm, nil
	}
	pcm, err := chime.load(chime.url)
	if err != nil {
		return nil, err
	}
	chime.pcm = pcm
	return pcm, nil
}
