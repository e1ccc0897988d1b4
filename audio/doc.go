// SPDX-License-Identifier: EPL-2.0

// Package audio provides the low-level audio abstractions used by wav2c.
//
// This package contains:
//   - Source interface for decoded audio input
//   - Decoder interface implemented by the container packages
//   - Format registry for decoder registration
//
// # Source Interface
//
// A Source describes the stream it reads from and hands out its samples:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    BitDepth() int
//	    Frames() int
//	    ReadFrames(dst []byte) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// The format methods are available right after decoding, so a caller can
// validate a stream before reading any sample data.
//
// # Sample Format
//
// ReadFrames only serves mono 8-bit streams. Each byte is one frame, an
// unsigned value where 128 is silence. Decoders for containers that store
// 8-bit audio as signed values (AIFF) convert to this representation.
// Reading from any other layout fails with ErrUnsupportedFrameLayout.
//
// # Format Registry
//
// The registry maps format names to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.ForPath("sound.wav", "wav")
//
// # Error Handling
//
// ReadFrames returns io.EOF when no more data is available:
//
//	for {
//	    n, err := source.ReadFrames(buf)
//	    // use buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
//
// A stream that ends before the number of frames declared by its header
// fails with ErrTruncatedData.
package audio
