package audio

import "io"

// loopReader replays pcm forever.
type loopReader struct {
	pcm    []byte
	offset int
}

func newLoopReader(pcm []byte) *loopReader {
	return &loopReader{pcm: pcm}
}

func (reader *loopReader) Read(buffer []byte) (int, error) {
	if len(reader.pcm) == 0 {
		return 0, io.EOF
	}
	written := 0
	for written < len(buffer) {
		copied := copy(buffer[written:], reader.pcm[reader.offset:])
		written += copied
		reader.offset = (reader.offset + copied) % len(reader.pcm)
	}
	return written, nil
}
