package timer

import (
	"sync"
	"time"
)

// Alerter is notified once whenever a countdown reaches zero.
type Alerter interface {
	Alert()
}

// AlerterFunc adapts a function to Alerter.
type AlerterFunc func()

// Alert calls fn.
func (fn AlerterFunc) Alert() {
	fn()
}

// Config contains runtime options for Timer.
type Config struct {
	TickInterval time.Duration
	Clock        Clock
	Alerter      Alerter
}

// Timer is the focus/break/rest countdown state machine.
//
// A fresh ticker is created on every entry into Running and stopped on every
// exit, so at most one ticker is live. Ticks from a stopped ticker are
// discarded under the lock.
type Timer struct {
	mu      sync.Mutex
	options Config
	state   State
	session *tickSession
	events  []chan Event
	closed  bool
}

type tickSession struct {
	ticker Ticker
	stopCh chan struct{}
}

// New creates an idle Timer in focus mode.
func New(options Config) *Timer {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Clock == nil {
		options.Clock = SystemClock()
	}

	return &Timer{
		options: options,
		state: State{
			Mode:      ModeFocus,
			Remaining: ModeFocus.Duration(),
		},
	}
}

// SetAlerter replaces the completion handler.
func (countdown *Timer) SetAlerter(alerter Alerter) {
	countdown.mu.Lock()
	defer countdown.mu.Unlock()
	countdown.options.Alerter = alerter
}

// Subscribe registers a new observer channel.
func (countdown *Timer) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	countdown.mu.Lock()
	defer countdown.mu.Unlock()
	if countdown.closed {
		close(ch)
		return ch
	}
	countdown.events = append(countdown.events, ch)
	return ch
}

// State returns a snapshot of the current state.
func (countdown *Timer) State() State {
	countdown.mu.Lock()
	defer countdown.mu.Unlock()
	return countdown.state
}

// SelectMode switches preset. Any countdown in progress is discarded.
func (countdown *Timer) SelectMode(mode Mode) {
	if !mode.Valid() {
		return
	}
	countdown.mu.Lock()
	defer countdown.mu.Unlock()
	if countdown.closed {
		return
	}
	countdown.stopTicksLocked()
	countdown.state = State{Mode: mode, Remaining: mode.Duration()}
	countdown.emitLocked(EventStateChange)
}

// ToggleRun starts an idle timer or pauses a running one.
// Starting with nothing left is a no-op.
func (countdown *Timer) ToggleRun() {
	countdown.mu.Lock()
	defer countdown.mu.Unlock()
	if countdown.closed {
		return
	}
	if countdown.state.Running {
		countdown.stopTicksLocked()
		countdown.emitLocked(EventStateChange)
		return
	}
	if countdown.state.Remaining <= 0 {
		return
	}
	countdown.startTicksLocked()
	countdown.emitLocked(EventStateChange)
}

// Reset restores the full duration of the current mode and stops.
func (countdown *Timer) Reset() {
	countdown.mu.Lock()
	defer countdown.mu.Unlock()
	if countdown.closed {
		return
	}
	countdown.stopTicksLocked()
	countdown.state.Remaining = countdown.state.Mode.Duration()
	countdown.emitLocked(EventStateChange)
}

// Tick consumes one elapsed second. It has no effect unless running.
func (countdown *Timer) Tick() {
	countdown.mu.Lock()
	alerter := countdown.tickLocked()
	countdown.mu.Unlock()

	if alerter != nil {
		alerter.Alert()
	}
}

// Close stops ticking and closes observers. The timer is inert afterwards.
func (countdown *Timer) Close() {
	countdown.mu.Lock()
	if countdown.closed {
		countdown.mu.Unlock()
		return
	}
	countdown.stopTicksLocked()
	countdown.closed = true
	events := countdown.events
	countdown.events = nil
	countdown.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (countdown *Timer) run(session *tickSession) {
	for {
		select {
		case <-session.stopCh:
			return
		default:
		}
		select {
		case <-session.stopCh:
			return
		case <-session.ticker.C():
			countdown.mu.Lock()
			if countdown.session != session {
				countdown.mu.Unlock()
				return
			}
			alerter := countdown.tickLocked()
			countdown.mu.Unlock()
			if alerter != nil {
				alerter.Alert()
			}
		}
	}
}

// tickLocked returns the alerter to notify when this tick completed the
// countdown, nil otherwise.
func (countdown *Timer) tickLocked() Alerter {
	if countdown.closed || !countdown.state.Running {
		return nil
	}
	if countdown.state.Remaining > 0 {
		countdown.state.Remaining--
	}
	if countdown.state.Remaining > 0 {
		countdown.emitLocked(EventTick)
		return nil
	}

	countdown.stopTicksLocked()
	countdown.emitLocked(EventComplete)
	if countdown.options.Alerter == nil {
		return nil
	}
	return countdown.options.Alerter
}

func (countdown *Timer) startTicksLocked() {
	countdown.stopTicksLocked()
	session := &tickSession{
		ticker: countdown.options.Clock.NewTicker(countdown.options.TickInterval),
		stopCh: make(chan struct{}),
	}
	countdown.session = session
	countdown.state.Running = true
	go countdown.run(session)
}

func (countdown *Timer) stopTicksLocked() {
	countdown.state.Running = false
	if countdown.session == nil {
		return
	}
	countdown.session.ticker.Stop()
	close(countdown.session.stopCh)
	countdown.session = nil
}

func (countdown *Timer) emitLocked(eventType EventType) {
	event := Event{
		Type:  eventType,
		State: countdown.state,
		At:    time.Now(),
	}
	for _, ch := range countdown.events {
		select {
		case ch <- event:
			continue
		default:
		}
		if eventType != EventComplete {
			continue
		}
		// A full subscriber loses its oldest event rather than the completion.
		// Sends only happen under the lock, so one receive makes room.
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- event:
		default:
		}
	}
}
