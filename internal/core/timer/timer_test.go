package timer

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

type manualTicker struct {
	ch      chan time.Time
	stopped atomic.Bool
}

func (ticker *manualTicker) C() <-chan time.Time { return ticker.ch }
func (ticker *manualTicker) Stop()               { ticker.stopped.Store(true) }

// manualClock hands out tickers that only fire when the test says so.
type manualClock struct {
	mu      sync.Mutex
	tickers []*manualTicker
}

func (clock *manualClock) NewTicker(time.Duration) Ticker {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	ticker := &manualTicker{ch: make(chan time.Time)}
	clock.tickers = append(clock.tickers, ticker)
	return ticker
}

func (clock *manualClock) live() int {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	count := 0
	for _, ticker := range clock.tickers {
		if !ticker.stopped.Load() {
			count++
		}
	}
	return count
}

func (clock *manualClock) latest() *manualTicker {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	if len(clock.tickers) == 0 {
		return nil
	}
	return clock.tickers[len(clock.tickers)-1]
}

// fire delivers one tick and reports whether anyone was listening.
func fire(ticker *manualTicker) bool {
	select {
	case ticker.ch <- time.Now():
		return true
	case <-time.After(100 * time.Millisecond):
		return false
	}
}

type countingAlerter struct {
	calls atomic.Int32
}

func (alerter *countingAlerter) Alert() { alerter.calls.Add(1) }

func newTestTimer() (*Timer, *manualClock, *countingAlerter) {
	clock := &manualClock{}
	alerter := &countingAlerter{}
	return New(Config{Clock: clock, Alerter: alerter}), clock, alerter
}

func waitEvent(t *testing.T, events <-chan Event, want EventType) Event {
	t.Helper()
	deadline := time.After(time.Second)
	for {
		select {
		case event, ok := <-events:
			if !ok {
				t.Fatalf("event channel closed while waiting for %s", want)
			}
			if event.Type == want {
				return event
			}
		case <-deadline:
			t.Fatalf("timed out waiting for %s", want)
		}
	}
}

func TestInitialState(t *testing.T) {
	countdown, _, _ := newTestTimer()
	state := countdown.State()
	if state.Mode != ModeFocus || state.Remaining != 1800 || state.Running {
		t.Fatalf("unexpected initial state %+v", state)
	}
}

func TestDurations(t *testing.T) {
	want := map[Mode]int{ModeFocus: 1800, ModeBreak: 300, ModeRest: 900}
	for mode, seconds := range want {
		if got := mode.Duration(); got != seconds {
			t.Errorf("%s duration = %d, want %d", mode, got, seconds)
		}
	}
}

func TestSelectModeResets(t *testing.T) {
	for _, mode := range Modes {
		countdown, clock, _ := newTestTimer()
		countdown.ToggleRun()
		countdown.Tick()
		countdown.Tick()

		countdown.SelectMode(mode)

		state := countdown.State()
		if state.Mode != mode || state.Remaining != mode.Duration() || state.Running {
			t.Errorf("SelectMode(%s) left %+v", mode, state)
		}
		if clock.live() != 0 {
			t.Errorf("SelectMode(%s) left %d live tickers", mode, clock.live())
		}
		countdown.Close()
	}
}

func TestSelectModeIgnoresUnknown(t *testing.T) {
	countdown, _, _ := newTestTimer()
	countdown.SelectMode(Mode("nap"))
	if got := countdown.State().Mode; got != ModeFocus {
		t.Fatalf("mode changed to %q", got)
	}
}

func TestTickOnlyWhileRunning(t *testing.T) {
	countdown, _, _ := newTestTimer()
	countdown.Tick()
	if got := countdown.State().Remaining; got != 1800 {
		t.Fatalf("idle tick decremented to %d", got)
	}
}

func TestTickDecrementsByMinOfCountAndRemaining(t *testing.T) {
	cases := []struct {
		mode  Mode
		ticks int
		want  int
	}{
		{ModeBreak, 1, 299},
		{ModeBreak, 120, 180},
		{ModeBreak, 300, 0},
		{ModeBreak, 450, 0},
		{ModeRest, 899, 1},
	}
	for _, tc := range cases {
		countdown, _, _ := newTestTimer()
		countdown.SelectMode(tc.mode)
		countdown.ToggleRun()
		for i := 0; i < tc.ticks; i++ {
			countdown.Tick()
		}
		if got := countdown.State().Remaining; got != tc.want {
			t.Errorf("%s after %d ticks: remaining %d, want %d", tc.mode, tc.ticks, got, tc.want)
		}
		countdown.Close()
	}
}

func TestCompletionStopsAndAlertsOnce(t *testing.T) {
	countdown, clock, alerter := newTestTimer()
	events := countdown.Subscribe(4)

	countdown.ToggleRun()
	for i := 0; i < 1800; i++ {
		countdown.Tick()
	}

	state := countdown.State()
	if state.Running || state.Remaining != 0 {
		t.Fatalf("expected idle at zero, got %+v", state)
	}
	if calls := alerter.calls.Load(); calls != 1 {
		t.Fatalf("alerter called %d times, want 1", calls)
	}
	if clock.live() != 0 {
		t.Fatalf("ticker still live after completion")
	}

	for i := 0; i < 5; i++ {
		countdown.Tick()
	}
	if calls := alerter.calls.Load(); calls != 1 {
		t.Fatalf("extra ticks re-alerted: %d", calls)
	}
	if got := countdown.State().Remaining; got != 0 {
		t.Fatalf("remaining went to %d", got)
	}

	waitEvent(t, events, EventComplete)
}

func TestToggleRunAtZeroIsNoop(t *testing.T) {
	countdown, clock, _ := newTestTimer()
	countdown.SelectMode(ModeBreak)
	countdown.ToggleRun()
	for i := 0; i < 300; i++ {
		countdown.Tick()
	}

	countdown.ToggleRun()
	if countdown.State().Running {
		t.Fatal("timer started with nothing left")
	}
	if clock.live() != 0 {
		t.Fatal("ticker created for an empty countdown")
	}
}

func TestResetFromRunning(t *testing.T) {
	countdown, clock, _ := newTestTimer()
	countdown.SelectMode(ModeRest)
	countdown.ToggleRun()
	countdown.Tick()

	countdown.Reset()

	state := countdown.State()
	if state.Running || state.Remaining != 900 || state.Mode != ModeRest {
		t.Fatalf("reset left %+v", state)
	}
	if clock.live() != 0 {
		t.Fatal("reset left a live ticker")
	}
}

func TestAtMostOneLiveTicker(t *testing.T) {
	countdown, clock, _ := newTestTimer()
	defer countdown.Close()

	for i := 0; i < 10; i++ {
		countdown.ToggleRun()
		if i%2 == 0 && clock.live() != 1 {
			t.Fatalf("iteration %d: %d live tickers while running", i, clock.live())
		}
		if i%2 == 1 && clock.live() != 0 {
			t.Fatalf("iteration %d: %d live tickers while idle", i, clock.live())
		}
	}
}

func TestTickerDrivesCountdown(t *testing.T) {
	countdown, clock, _ := newTestTimer()
	defer countdown.Close()
	events := countdown.Subscribe(8)

	countdown.ToggleRun()
	waitEvent(t, events, EventStateChange)

	if !fire(clock.latest()) {
		t.Fatal("ticker goroutine not listening")
	}
	event := waitEvent(t, events, EventTick)
	if event.State.Remaining != 1799 {
		t.Fatalf("tick event remaining %d, want 1799", event.State.Remaining)
	}
}

func TestNoTickAfterLeavingRunning(t *testing.T) {
	countdown, clock, _ := newTestTimer()
	defer countdown.Close()

	// The ticker goroutine may still take a tick that raced the pause; it
	// must be discarded, never counted.
	for round := 0; round < 50; round++ {
		countdown.ToggleRun()
		ticker := clock.latest()
		countdown.ToggleRun()

		fire(ticker)
		if clock.live() != 0 {
			t.Fatalf("round %d: ticker live after pause", round)
		}
		if got := countdown.State().Remaining; got != 1800 {
			t.Fatalf("round %d: stale tick decremented to %d", round, got)
		}
	}
}

func TestCompleteSurvivesFullSubscriber(t *testing.T) {
	countdown, _, _ := newTestTimer()
	defer countdown.Close()
	countdown.SelectMode(ModeBreak)
	events := countdown.Subscribe(1)

	countdown.ToggleRun()
	for i := 0; i < 300; i++ {
		countdown.Tick()
	}

	if len(events) != 1 {
		t.Fatalf("%d buffered events, want 1", len(events))
	}
	event := <-events
	if event.Type != EventComplete || event.State.Remaining != 0 || event.State.Running {
		t.Fatalf("buffered %+v, want the completion", event)
	}
}

func TestCloseStopsEverything(t *testing.T) {
	countdown, clock, _ := newTestTimer()
	events := countdown.Subscribe(1)
	countdown.ToggleRun()

	countdown.Close()
	countdown.Close()

	if clock.live() != 0 {
		t.Fatal("close left a live ticker")
	}
	for range events {
	}
	countdown.ToggleRun()
	if countdown.State().Running {
		t.Fatal("closed timer restarted")
	}
	if _, ok := <-countdown.Subscribe(1); ok {
		t.Fatal("subscribe after close should return a closed channel")
	}
}

func TestFormat(t *testing.T) {
	cases := map[int]string{
		0:    "00:00",
		5:    "00:05",
		65:   "01:05",
		300:  "05:00",
		1800: "30:00",
		6000: "100:00",
		-3:   "00:00",
	}
	for seconds, want := range cases {
		if got := Format(seconds); got != want {
			t.Errorf("Format(%d) = %q, want %q", seconds, got, want)
		}
	}
}

func TestParseModeAndLabel(t *testing.T) {
	mode, err := ParseMode(" Break ")
	if err != nil || mode != ModeBreak {
		t.Fatalf("ParseMode = %q, %v", mode, err)
	}
	if _, err := ParseMode("nap"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
	if got := ModeFocus.Label(); got != "Focus" {
		t.Fatalf("label %q", got)
	}
}
