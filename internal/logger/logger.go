// Package logger is FocusBoard's leveled log. --quiet maps to LevelOff,
// the default to LevelNormal and --verbose to LevelVerbose, which adds the
// audio, drag and settings debug lines.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// Level is how chatty the board is on stderr.
type Level int

const (
	LevelOff Level = iota
	LevelNormal
	LevelVerbose
)

// LevelFromFlags maps the launcher flags onto a level. Quiet wins.
func LevelFromFlags(verbose, quiet bool) Level {
	switch {
	case quiet:
		return LevelOff
	case verbose:
		return LevelVerbose
	default:
		return LevelNormal
	}
}

type stream int

const (
	streamDebug stream = iota
	streamInfo
	streamWarn
	streamError
)

var streamPrefixes = [...]string{
	streamDebug: "[DBG] ",
	streamInfo:  "[INF] ",
	streamWarn:  "[WRN] ",
	streamError: "[ERR] ",
}

// Logger is shared by every component of the board; a nil *Logger drops
// everything.
type Logger struct {
	mu      sync.RWMutex
	level   Level
	streams [len(streamPrefixes)]*log.Logger
}

// New writes to out, or stderr when out is nil.
func New(level Level, out io.Writer) *Logger {
	if out == nil {
		out = os.Stderr
	}
	board := &Logger{level: level}
	for index, prefix := range streamPrefixes {
		board.streams[index] = log.New(out, prefix, log.Ltime)
	}
	return board
}

// Discard is the logger handed to components under test.
func Discard() *Logger {
	return New(LevelOff, io.Discard)
}

// SetLevel switches verbosity while the board is running.
func (board *Logger) SetLevel(level Level) {
	board.mu.Lock()
	defer board.mu.Unlock()
	board.level = level
}

// Level reports the current verbosity.
func (board *Logger) Level() Level {
	board.mu.RLock()
	defer board.mu.RUnlock()
	return board.level
}

// Debug is only written with --verbose.
func (board *Logger) Debug(format string, args ...any) {
	board.write(LevelVerbose, streamDebug, format, args...)
}

func (board *Logger) Info(format string, args ...any) {
	board.write(LevelNormal, streamInfo, format, args...)
}

func (board *Logger) Warn(format string, args ...any) {
	board.write(LevelNormal, streamWarn, format, args...)
}

func (board *Logger) Error(format string, args ...any) {
	board.write(LevelNormal, streamError, format, args...)
}

func (board *Logger) write(min Level, target stream, format string, args ...any) {
	if board == nil {
		return
	}
	board.mu.RLock()
	defer board.mu.RUnlock()
	if board.level < min {
		return
	}
	_ = board.streams[target].Output(3, fmt.Sprintf(format, args...))
}
