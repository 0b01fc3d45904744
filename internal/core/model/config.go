package model

// Point is a widget's starting offset on the board.
type Point struct {
	X float32
	Y float32
}

// BoardConfig defines the page composition.
type BoardConfig struct {
	Background string
	DimAlpha   uint8
	TimerAt    Point
	TodoAt     Point
}

// AudioConfig contains runtime settings for ambient playback and the alert chime.
type AudioConfig struct {
	Volume       float64
	ChimeEnabled bool
	ChimePath    string
}
