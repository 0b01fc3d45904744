package timer

import (
	"fmt"
	"strings"
)

// Mode is one of the three countdown presets.
type Mode string

const (
	ModeFocus Mode = "focus"
	ModeBreak Mode = "break"
	ModeRest  Mode = "rest"
)

// Modes lists the presets in tab order.
var Modes = []Mode{ModeFocus, ModeBreak, ModeRest}

var durations = map[Mode]int{
	ModeFocus: 30 * 60,
	ModeBreak: 5 * 60,
	ModeRest:  15 * 60,
}

// Duration returns the preset length in seconds, or 0 for an unknown mode.
func (mode Mode) Duration() int {
	return durations[mode]
}

// Valid reports whether mode is one of the presets.
func (mode Mode) Valid() bool {
	_, ok := durations[mode]
	return ok
}

// Label returns the tab caption, e.g. "Focus".
func (mode Mode) Label() string {
	if mode == "" {
		return ""
	}
	return strings.ToUpper(string(mode[:1])) + string(mode[1:])
}

// ParseMode accepts a preset name in any case.
func ParseMode(value string) (Mode, error) {
	mode := Mode(strings.ToLower(strings.TrimSpace(value)))
	if !mode.Valid() {
		return "", fmt.Errorf("unknown timer mode %q", value)
	}
	return mode, nil
}

// State is a snapshot of the timer.
type State struct {
	Mode      Mode
	Remaining int
	Running   bool
}

// Text renders the remaining time as MM:SS.
func (state State) Text() string {
	return Format(state.Remaining)
}

// Format renders seconds as zero-padded MM:SS. Minutes do not wrap at 60.
func Format(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
