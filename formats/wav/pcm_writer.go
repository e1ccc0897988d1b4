// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

var ErrInvalidFormat = errors.New("invalid PCM format")

// WritePCM writes a canonical PCM WAV with a 44-byte header followed by data.
// data must already be interleaved little-endian samples of bitDepth bits;
// 8-bit samples are unsigned.
func WritePCM(w io.Writer, sampleRate, channels, bitDepth int, data []byte) error {
	if sampleRate <= 0 || channels <= 0 || bitDepth <= 0 || bitDepth%8 != 0 {
		return fmt.Errorf("%w: %d Hz, %d channels, %d bits", ErrInvalidFormat, sampleRate, channels, bitDepth)
	}

	numChannels := uint16(channels)
	bitsPerSample := uint16(bitDepth)
	blockAlign := numChannels * (bitsPerSample / 8)
	byteRate := uint32(sampleRate) * uint32(blockAlign)
	dataSize := uint32(len(data))
	pad := dataSize % 2
	riffSize := 36 + dataSize + pad

	header := make([]byte, 44)

	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], riffSize)
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], 1)  // PCM format
	binary.LittleEndian.PutUint16(header[22:24], numChannels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	// data chunk header (8 bytes)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("writing wav header: %w", err)
	}

	if len(data) == 0 {
		return nil
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing wav data: %w", err)
	}

	// RIFF chunks are word aligned
	if pad == 1 {
		if _, err := w.Write([]byte{0}); err != nil {
			return fmt.Errorf("writing wav padding: %w", err)
		}
	}

	return nil
}
