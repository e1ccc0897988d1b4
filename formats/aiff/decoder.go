// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/wav2c/audio"
)

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// source wraps go-audio aiff.Decoder to implement audio.Source
type source struct {
	dec        aiffReader
	sampleRate int
	channels   int
	bitDepth   int
	frames     int
	read       int
	unsigned   bool // samples are already offset binary
	intBuf     *goaudio.IntBuffer
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BitDepth() int   { return s.bitDepth }
func (s *source) Frames() int     { return s.frames }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return audio.DefaultBufSize
}

func (s *source) ReadFrames(dst []byte) (int, error) {
	if s.channels != 1 || s.bitDepth != 8 {
		return 0, audio.ErrUnsupportedFrameLayout
	}
	if len(dst) == 0 {
		return 0, nil
	}

	want := min(len(dst), s.frames-s.read)
	if want == 0 {
		return 0, io.EOF
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < want {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, want),
			Format: s.dec.Format(),
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:want]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return 0, fmt.Errorf("reading aiff samples: %w", err)
	}
	if n == 0 {
		if err != nil && err != io.EOF {
			return 0, fmt.Errorf("%w: read %d of %d frames: %w", audio.ErrTruncatedData, s.read, s.frames, err)
		}
		return 0, fmt.Errorf("%w: read %d of %d frames", audio.ErrTruncatedData, s.read, s.frames)
	}
	n = min(n, want)

	// AIFF stores 8-bit samples signed, flipping the sign bit makes them
	// offset binary like 8-bit WAV
	var flip byte = 0x80
	if s.unsigned {
		flip = 0
	}
	for i := range n {
		dst[i] = byte(s.intBuf.Data[i]) ^ flip
	}
	s.read += n

	return n, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker
	rs, err := audio.ReadSeeker(r)
	if err != nil {
		return nil, fmt.Errorf("reading aiff data: %w", err)
	}

	header := make([]byte, 12)
	if _, err := io.ReadFull(rs, header); err != nil {
		return nil, fmt.Errorf("reading aiff header: %w", err)
	}

	form := header[8:12]
	if !bytes.Equal(header[:4], []byte("FORM")) ||
		(!bytes.Equal(form, []byte("AIFF")) && !bytes.Equal(form, []byte("AIFC"))) {
		return nil, ErrNotAiffFile
	}

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewinding aiff input: %w", err)
	}

	dec := aiff.NewDecoder(rs)
	dec.ReadInfo()

	if dec.NumChans == 0 || dec.BitDepth == 0 {
		return nil, ErrMissingCommChunk
	}

	unsigned := false
	if bytes.Equal(form, []byte("AIFC")) {
		switch string(dec.Encoding[:]) {
		case "NONE", "twos", "sowt":
		case "raw ":
			unsigned = true
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, dec.Encoding[:])
		}
	}

	return &source{
		dec:        dec,
		sampleRate: int(dec.SampleRate),
		channels:   int(dec.NumChans),
		bitDepth:   int(dec.BitDepth),
		frames:     int(dec.NumSampleFrames),
		unsigned:   unsigned,
	}, nil
}
