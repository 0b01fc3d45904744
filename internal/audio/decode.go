package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/hajimehoshi/go-mp3"
)

// Output format shared by every player created from the engine's context.
const (
	SampleRate    = 44100
	ChannelCount  = 2
	bytesPerFrame = ChannelCount * 2
)

// ErrUnsupportedFormat is returned for data that is neither PCM WAV nor MP3.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// Decode turns WAV or MP3 bytes into signed 16-bit little-endian stereo PCM
// at SampleRate.
func Decode(data []byte) ([]byte, error) {
	if len(data) >= 12 && string(data[0:4]) == "RIFF" && string(data[8:12]) == "WAVE" {
		return decodeWAV(data)
	}
	if looksLikeMP3(data) {
		return decodeMP3(data)
	}
	return nil, ErrUnsupportedFormat
}

type wavFormat struct {
	audioFormat   uint16
	channels      int
	sampleRate    int
	bitsPerSample int
}

func decodeWAV(data []byte) ([]byte, error) {
	var format *wavFormat
	pos := 12
	for pos+8 <= len(data) {
		chunkID := string(data[pos : pos+4])
		chunkSize := int(binary.LittleEndian.Uint32(data[pos+4 : pos+8]))
		start := pos + 8
		end := start + chunkSize
		if end > len(data) || end < start {
			end = len(data)
		}

		switch chunkID {
		case "fmt ":
			if end-start < 16 {
				return nil, fmt.Errorf("wav fmt chunk too short: %d bytes", end-start)
			}
			body := data[start:end]
			format = &wavFormat{
				audioFormat:   binary.LittleEndian.Uint16(body[0:2]),
				channels:      int(binary.LittleEndian.Uint16(body[2:4])),
				sampleRate:    int(binary.LittleEndian.Uint32(body[4:8])),
				bitsPerSample: int(binary.LittleEndian.Uint16(body[14:16])),
			}
		case "data":
			if format == nil {
				return nil, errors.New("wav data chunk before fmt chunk")
			}
			samples, err := wavSamples(*format, data[start:end])
			if err != nil {
				return nil, err
			}
			return toOutput(samples, format.channels, format.sampleRate), nil
		}

		pos = end
		// Chunks are word-aligned.
		if chunkSize%2 != 0 {
			pos++
		}
	}
	return nil, errors.New("data chunk not found in WAV")
}

func wavSamples(format wavFormat, body []byte) ([]int16, error) {
	if format.audioFormat != 1 {
		return nil, fmt.Errorf("%w: wav encoding %d", ErrUnsupportedFormat, format.audioFormat)
	}
	if format.channels < 1 || format.channels > 2 || format.sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d channels at %d Hz", ErrUnsupportedFormat, format.channels, format.sampleRate)
	}

	switch format.bitsPerSample {
	case 16:
		samples := make([]int16, len(body)/2)
		for i := range samples {
			samples[i] = int16(binary.LittleEndian.Uint16(body[i*2:]))
		}
		return samples, nil
	case 8:
		samples := make([]int16, len(body))
		for i, value := range body {
			samples[i] = int16(int(value)-128) << 8
		}
		return samples, nil
	default:
		return nil, fmt.Errorf("%w: %d-bit wav", ErrUnsupportedFormat, format.bitsPerSample)
	}
}

func looksLikeMP3(data []byte) bool {
	if len(data) >= 3 && string(data[0:3]) == "ID3" {
		return true
	}
	return len(data) >= 2 && data[0] == 0xFF && data[1]&0xE0 == 0xE0
}

func decodeMP3(data []byte) ([]byte, error) {
	decoder, err := mp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode mp3: %w", err)
	}
	raw, err := io.ReadAll(decoder)
	if err != nil {
		return nil, fmt.Errorf("decode mp3: %w", err)
	}
	if decoder.SampleRate() == SampleRate {
		return raw[:len(raw)-len(raw)%bytesPerFrame], nil
	}

	samples := make([]int16, len(raw)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(raw[i*2:]))
	}
	return toOutput(samples, 2, decoder.SampleRate()), nil
}

// toOutput converts interleaved samples to stereo at SampleRate. Resampling
// is nearest-neighbour.
func toOutput(samples []int16, channels, rate int) []byte {
	frames := len(samples) / channels
	outFrames := int(int64(frames) * SampleRate / int64(rate))
	out := make([]byte, outFrames*bytesPerFrame)

	for frame := 0; frame < outFrames; frame++ {
		source := int(int64(frame) * int64(rate) / SampleRate)
		if source >= frames {
			source = frames - 1
		}
		left := samples[source*channels]
		right := left
		if channels == 2 {
			right = samples[source*channels+1]
		}
		binary.LittleEndian.PutUint16(out[frame*bytesPerFrame:], uint16(left))
		binary.LittleEndian.PutUint16(out[frame*bytesPerFrame+2:], uint16(right))
	}
	return out
}
