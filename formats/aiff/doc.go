// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files, so
// sounds exported from macOS tools can be embedded without a round trip
// through WAV.
//
// # Decoding AIFF Files
//
//	f, _ := os.Open("horn.aiff")
//	src, err := aiff.Decoder{}.Decode(f)
//	if err != nil {
//	    // Handle error
//	}
//
// The format (channels, bit depth, sample rate, frame count) comes from the
// COMM chunk and is available before any sample is read.
//
// # Sample Format
//
// AIFF stores 8-bit samples as signed values. ReadFrames converts them to
// the unsigned representation used by 8-bit WAV (0 becomes 128), so the
// bytes handed out by either decoder mean the same thing. Like the WAV
// decoder, only mono 8-bit streams can be read.
//
// # Error Handling
//
//   - ErrNotAiffFile: the input is not a FORM/AIFF or FORM/AIFC file
//   - ErrMissingCommChunk: the file carries no usable COMM chunk
//
// # AIFF vs. WAV
//
// AIFF is similar to WAV but:
//   - Uses big-endian byte order (WAV uses little-endian)
//   - Stores sample rate as 80-bit float (WAV uses 32-bit int)
//   - Stores 8-bit samples signed (WAV stores them unsigned)
package aiff
