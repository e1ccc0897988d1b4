// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"io"
)

// MockSource is a test helper that serves fixed sample bytes.
// It implements the audio.Source interface (without importing it to avoid cycles).
type MockSource struct {
	sampleRate int
	channels   int
	bitDepth   int
	frames     int // Declared frame count
	data       []byte
	offset     int
	bufSize    int
	closed     bool
	readErr    error
}

// NewMockSource creates a mock source declaring the given format.
// frames is the declared frame count; data holds the samples actually served
// and may be shorter to simulate truncated input.
func NewMockSource(sampleRate, channels, bitDepth, frames int, data []byte) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		bitDepth:   bitDepth,
		frames:     frames,
		data:       data,
		bufSize:    4096,
	}
}

// NewPCM8Source creates a mono 8-bit 8 kHz source over data.
func NewPCM8Source(data []byte) *MockSource {
	return NewMockSource(8000, 1, 8, len(data), data)
}

// NewRampSource creates a mono 8-bit 8 kHz source of n frames counting 0..255 repeatedly.
func NewRampSource(n int) *MockSource {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i)
	}
	return NewPCM8Source(data)
}

// WithBufSize overrides the preferred read size.
func (m *MockSource) WithBufSize(n int) *MockSource {
	m.bufSize = n
	return m
}

// WithReadError makes every read fail with err.
func (m *MockSource) WithReadError(err error) *MockSource {
	m.readErr = err
	return m
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BitDepth() int   { return m.bitDepth }
func (m *MockSource) Frames() int     { return m.frames }
func (m *MockSource) BufSize() int    { return m.bufSize }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

// Reset rewinds the source to allow re-reading
func (m *MockSource) Reset() {
	m.offset = 0
}

func (m *MockSource) ReadFrames(dst []byte) (int, error) {
	if m.channels != 1 || m.bitDepth != 8 {
		return 0, errors.New("mock: only mono 8-bit frames can be read")
	}
	if m.readErr != nil {
		return 0, m.readErr
	}
	if m.offset >= len(m.data) {
		return 0, io.EOF
	}

	n := copy(dst, m.data[m.offset:])
	m.offset += n

	return n, nil
}
