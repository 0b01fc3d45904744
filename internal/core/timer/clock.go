package timer

import "time"

// Ticker delivers periodic ticks until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Clock creates tickers. Tests swap in a manual clock.
type Clock interface {
	NewTicker(interval time.Duration) Ticker
}

// SystemClock returns a Clock backed by time.Ticker.
func SystemClock() Clock {
	return systemClock{}
}

type systemClock struct{}

func (systemClock) NewTicker(interval time.Duration) Ticker {
	return &systemTicker{ticker: time.NewTicker(interval)}
}

type systemTicker struct {
	ticker *time.Ticker
}

func (ticker *systemTicker) C() <-chan time.Time {
	return ticker.ticker.C
}

func (ticker *systemTicker) Stop() {
	ticker.ticker.Stop()
}
