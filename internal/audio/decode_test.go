package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"focusboard/resources"
)

func buildWAV(t *testing.T, channels, rate, bits int, body []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	write := func(value any) {
		if err := binary.Write(&buf, binary.LittleEndian, value); err != nil {
			t.Fatal(err)
		}
	}
	buf.WriteString("RIFF")
	write(uint32(36 + len(body)))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	write(uint32(16))
	write(uint16(1))
	write(uint16(channels))
	write(uint32(rate))
	write(uint32(rate * channels * bits / 8))
	write(uint16(channels * bits / 8))
	write(uint16(bits))
	buf.WriteString("data")
	write(uint32(len(body)))
	buf.Write(body)
	return buf.Bytes()
}

func frameAt(pcm []byte, frame int) (int16, int16) {
	offset := frame * bytesPerFrame
	return int16(binary.LittleEndian.Uint16(pcm[offset:])), int16(binary.LittleEndian.Uint16(pcm[offset+2:]))
}

func TestDecodeStereoPassThrough(t *testing.T) {
	body := make([]byte, 8)
	binary.LittleEndian.PutUint16(body[0:], uint16(100))
	binary.LittleEndian.PutUint16(body[2:], uint16(0xFF38)) // -200
	binary.LittleEndian.PutUint16(body[4:], uint16(300))
	binary.LittleEndian.PutUint16(body[6:], uint16(400))

	pcm, err := Decode(buildWAV(t, 2, SampleRate, 16, body))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(pcm, body) {
		t.Fatalf("pcm %v, want %v", pcm, body)
	}
}

func TestDecodeMonoUpsamples(t *testing.T) {
	body := make([]byte, 4)
	binary.LittleEndian.PutUint16(body[0:], uint16(1000))
	binary.LittleEndian.PutUint16(body[2:], uint16(2000))

	pcm, err := Decode(buildWAV(t, 1, SampleRate/2, 16, body))
	if err != nil {
		t.Fatal(err)
	}
	if len(pcm) != 4*bytesPerFrame {
		t.Fatalf("got %d frames, want 4", len(pcm)/bytesPerFrame)
	}
	want := []int16{1000, 1000, 2000, 2000}
	for frame, sample := range want {
		left, right := frameAt(pcm, frame)
		if left != sample || right != sample {
			t.Fatalf("frame %d = (%d, %d), want %d on both channels", frame, left, right, sample)
		}
	}
}

func TestDecode8Bit(t *testing.T) {
	pcm, err := Decode(buildWAV(t, 1, SampleRate, 8, []byte{128, 255, 0}))
	if err != nil {
		t.Fatal(err)
	}
	expect := []int16{0, 127 << 8, -128 << 8}
	for frame, sample := range expect {
		if left, _ := frameAt(pcm, frame); left != sample {
			t.Fatalf("frame %d = %d, want %d", frame, left, sample)
		}
	}
}

func TestDecodeRejectsUnknownData(t *testing.T) {
	if _, err := Decode([]byte("<html>not audio</html>")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("err = %v", err)
	}
	if _, err := Decode(buildWAV(t, 1, SampleRate, 24, make([]byte, 6))); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("24-bit err = %v", err)
	}
}

func TestDecodeBundledLoops(t *testing.T) {
	for _, name := range []string{"sounds/chime.wav", "sounds/rain.wav"} {
		data, err := resources.Asset(name)
		if err != nil {
			t.Fatal(err)
		}
		pcm, err := Decode(data)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if len(pcm) == 0 || len(pcm)%bytesPerFrame != 0 {
			t.Fatalf("%s: %d bytes of pcm", name, len(pcm))
		}
	}
}

func TestLoopReaderWraps(t *testing.T) {
	reader := newLoopReader([]byte{1, 2, 3})
	buffer := make([]byte, 7)
	n, err := reader.Read(buffer)
	if err != nil || n != 7 {
		t.Fatalf("read %d, %v", n, err)
	}
	if !bytes.Equal(buffer, []byte{1, 2, 3, 1, 2, 3, 1}) {
		t.Fatalf("buffer %v", buffer)
	}
	n, _ = reader.Read(buffer[:2])
	if n != 2 || buffer[0] != 2 || buffer[1] != 3 {
		t.Fatalf("second read %v", buffer[:2])
	}

	if _, err := newLoopReader(nil).Read(buffer); err != io.EOF {
		t.Fatalf("empty loop err = %v", err)
	}
}
