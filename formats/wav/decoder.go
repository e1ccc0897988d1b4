// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/wav2c/audio"
)

const (
	formatPCM        = 1
	formatExtensible = 0xFFFE
)

// pcmReader is the part of wav.Decoder the source reads samples through
type pcmReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type source struct {
	dec        pcmReader
	format     *goaudio.Format
	sampleRate int
	channels   int
	bitDepth   int
	frames     int
	read       int
	intBuf     *goaudio.IntBuffer
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BitDepth() int   { return s.bitDepth }
func (s *source) Frames() int     { return s.frames }
func (s *source) BufSize() int    { return audio.DefaultBufSize }
func (s *source) Close() error    { return nil }

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
			Format: s.format,
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:want]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return 0, fmt.Errorf("reading wav samples: %w", err)
	}
	if n == 0 {
		if err != nil && err != io.EOF {
			return 0, fmt.Errorf("%w: read %d of %d frames: %w", audio.ErrTruncatedData, s.read, s.frames, err)
		}
		return 0, fmt.Errorf("%w: read %d of %d frames", audio.ErrTruncatedData, s.read, s.frames)
	}

	// 8-bit WAV samples are unsigned, go-audio hands them over as is
	for i := range n {
		dst[i] = byte(s.intBuf.Data[i])
	}
	s.read += n

	return n, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := audio.ReadSeeker(r)
	if err != nil {
		return nil, err
	}

	header := make([]byte, 12)
	if _, err := io.ReadFull(rs, header); err != nil {
		return nil, fmt.Errorf("reading wav header: %w", err)
	}

	if !bytes.Equal(header[:4], []byte("RIFF")) || !bytes.Equal(header[8:12], []byte("WAVE")) {
		return nil, ErrNotWavFile
	}

	dataSize, err := dataChunkSize(rs)
	if err != nil {
		return nil, err
	}

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewinding wav input: %w", err)
	}

	dec := gowav.NewDecoder(rs)
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("reading wav info: %w", err)
	}

	if dec.NumChans == 0 || dec.BitDepth == 0 {
		return nil, ErrMissingFmtChunk
	}

	if dec.WavAudioFormat != formatPCM && dec.WavAudioFormat != formatExtensible {
		return nil, ErrOnlyPCMSupported
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingDataChunk, err)
	}

	channels := int(dec.NumChans)
	bitDepth := int(dec.BitDepth)
	blockAlign := channels * ((bitDepth + 7) / 8)

	return &source{
		dec:        dec,
		format:     dec.Format(),
		sampleRate: int(dec.SampleRate),
		channels:   channels,
		bitDepth:   bitDepth,
		frames:     int(dataSize) / blockAlign,
	}, nil
}

// dataChunkSize walks the RIFF chunks after the 12-byte header and returns
// the size declared by the data chunk. go-audio rounds odd chunk sizes up
// to include the pad byte, which would add a frame to odd 8-bit streams.
func dataChunkSize(rs io.ReadSeeker) (uint32, error) {
	if _, err := rs.Seek(12, io.SeekStart); err != nil {
		return 0, fmt.Errorf("seeking wav chunks: %w", err)
	}

	chunk := make([]byte, 8)
	for {
		if _, err := io.ReadFull(rs, chunk); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return 0, ErrMissingDataChunk
			}
			return 0, fmt.Errorf("reading wav chunk: %w", err)
		}

		size := binary.LittleEndian.Uint32(chunk[4:8])
		if bytes.Equal(chunk[:4], []byte("data")) {
			return size, nil
		}

		if _, err := rs.Seek(int64(size)+int64(size&1), io.SeekCurrent); err != nil {
			return 0, fmt.Errorf("skipping wav chunk %q: %w", chunk[:4], err)
		}
	}
}
