// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"
)

// DefaultBufSize is the number of frames a Source prefers per read.
const DefaultBufSize = 4096

type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// BitDepth is the width of one sample in bits.
	BitDepth() int
	// Frames is the total number of frames declared by the container.
	Frames() int
	// ReadFrames fills dst with unsigned 8-bit samples, one per frame, in
	// stream order. Only mono 8-bit sources can be read.
	// When n == 0 with err == io.EOF, the stream is finished.
	ReadFrames(dst []byte) (n int, err error)

	BufSize() int

	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry for decoders by format key (e.g., "wav", "aiff").
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[strings.ToLower(format)] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[strings.ToLower(format)]
	return d, ok
}

// ForPath returns the decoder registered for the extension of path,
// falling back to the fallback format when the extension is unknown.
func (r *Registry) ForPath(path, fallback string) (Decoder, bool) {
	ext := filepath.Ext(path)
	if len(ext) > 0 {
		if d, ok := r.Get(ext[1:]); ok {
			return d, true
		}
	}

	return r.Get(fallback)
}

// ReadSeeker returns r as an io.ReadSeeker, buffering it in memory when
// it cannot seek. The go-audio decoders need to seek between chunks.
func ReadSeeker(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffering input: %w", err)
	}

	return bytes.NewReader(data), nil
}
