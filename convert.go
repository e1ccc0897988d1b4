// SPDX-License-Identifier: EPL-2.0

package wav2c

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ik5/wav2c/audio"
	"github.com/ik5/wav2c/formats/aiff"
	"github.com/ik5/wav2c/formats/wav"
)

// The only audio layout that can be embedded.
const (
	RequiredChannels   = 1
	RequiredBitDepth   = 8
	RequiredSampleRate = 8000
)

// DefaultFormat is used for inputs whose extension has no registered decoder.
const DefaultFormat = "wav"

// NewRegistry returns a registry with the WAV and AIFF decoders.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aifc", aiff.Decoder{})

	return reg
}

// Converter turns audio files into C headers.
type Converter struct {
	registry *audio.Registry
}

// NewConverter creates a converter that picks decoders from registry by
// file extension. A nil registry means NewRegistry().
func NewConverter(registry *audio.Registry) *Converter {
	if registry == nil {
		registry = NewRegistry()
	}

	return &Converter{registry: registry}
}

// Convert reads the mono 8-bit 8 kHz audio file at inputPath and writes a C
// header declaring its samples as a uint8_t array named symbol to
// outputPath.
//
// The header is written to a temporary file in the output directory and
// renamed over outputPath once complete, so a failed conversion leaves
// outputPath untouched.
//
// Validation failures wrap ErrValidation and one of ErrNotMono,
// ErrWrongSampleWidth or ErrWrongFrameRate. Everything else wraps ErrIO,
// including ErrNoDecoder when the registry has nothing for the input.
func (c *Converter) Convert(inputPath, outputPath, symbol string) error {
	dec, ok := c.registry.ForPath(inputPath, DefaultFormat)
	if !ok {
		return ioError("selecting decoder", fmt.Errorf("%w for %q", ErrNoDecoder, inputPath))
	}

	in, err := os.Open(inputPath)
	if err != nil {
		return ioError("opening input", err)
	}
	defer in.Close()

	src, err := dec.Decode(in)
	if err != nil {
		return ioError("decoding "+inputPath, err)
	}
	defer src.Close()

	if err := Validate(src); err != nil {
		return err
	}

	h := Header{
		Symbol: symbol,
		Input:  inputPath,
		Output: outputPath,
	}

	return writeFile(outputPath, func(w io.Writer) error {
		return Generate(w, src, h)
	})
}

// Convert converts with a converter using NewRegistry.
func Convert(inputPath, outputPath, symbol string) error {
	return NewConverter(nil).Convert(inputPath, outputPath, symbol)
}

// Validate checks, in order, that src is mono, 8-bit and 8 kHz, and reports
// the first violation.
func Validate(src audio.Source) error {
	if src.Channels() != RequiredChannels {
		return fmt.Errorf("%w: got %d channels", ErrNotMono, src.Channels())
	}

	if src.BitDepth() != RequiredBitDepth {
		return fmt.Errorf("%w: got %d bits", ErrWrongSampleWidth, src.BitDepth())
	}

	if src.SampleRate() != RequiredSampleRate {
		return fmt.Errorf("%w: got %d Hz", ErrWrongFrameRate, src.SampleRate())
	}

	return nil
}

// writeFile runs write against a temporary file next to path and renames it
// to path when write succeeds. An existing file at path keeps its mode, a new
// one gets 0666 minus the umask.
func writeFile(path string, write func(w io.Writer) error) (err error) {
	tmp, err := createTemp(filepath.Dir(path), filepath.Base(path))
	if err != nil {
		return ioError("creating output", err)
	}

	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = write(tmp); err != nil {
		return err
	}

	if info, serr := os.Stat(path); serr == nil {
		if err = tmp.Chmod(info.Mode().Perm()); err != nil {
			return ioError("setting output mode", err)
		}
	}

	if err = tmp.Close(); err != nil {
		return ioError("closing output", err)
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		return ioError("renaming output", err)
	}

	return nil
}

// createTemp is os.CreateTemp with a 0666 mode, so the umask decides the
// permissions of a new output file.
func createTemp(dir, base string) (*os.File, error) {
	for range 10000 {
		name := filepath.Join(dir, "."+base+"."+strconv.FormatUint(uint64(rand.Uint32()), 10)+".tmp")

		f, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o666)
		if errors.Is(err, fs.ErrExist) {
			continue
		}

		return f, err
	}

	return nil, &fs.PathError{Op: "createtemp", Path: filepath.Join(dir, "."+base+".*.tmp"), Err: fs.ErrExist}
}
