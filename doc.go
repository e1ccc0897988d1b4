// SPDX-License-Identifier: EPL-2.0

// Package wav2c turns short 8 kHz, 8-bit, mono sound clips into C headers
// that embed the samples as a uint8_t array, ready to be played back by AVR
// firmware straight out of program memory.
//
// # Quick Start
//
//	if err := wav2c.Convert("horn.wav", "horn.h", "HORN"); err != nil {
//	    // Handle error
//	}
//
// produces
//
//	/* wav2c horn.wav horn.h HORN */
//	#ifndef HORN_H
//	#define HORN_H
//
//	#include <stdint.h>
//	#ifdef __AVR__
//	#include <avr/pgmspace.h>
//	#else
//	#define PROGMEM
//	#endif
//
//	#define HORN_SIZE 1234
//	static const uint8_t HORN[HORN_SIZE] PROGMEM = {
//	128, 129, 131, ...
//	};
//	#endif
//
// Values are written in file order, each followed by ", ", sixteen to a
// line. HORN_SIZE always equals the number of values in the array.
//
// # Input Formats
//
// The decoder is picked from the input extension:
//   - .aif, .aiff, .aifc via formats/aiff
//   - anything else via formats/wav
//
// Only mono, 8-bit, 8000 Hz audio is accepted. Nothing is resampled, mixed
// down or requantised; the bytes in the array are the bytes of the file
// (AIFF samples are shifted from signed to unsigned).
//
// # Error Handling
//
// Validation runs before any output is created and checks, in order, the
// channel count, the sample width and the sample rate:
//
//	err := wav2c.Convert(in, out, "HORN")
//	switch {
//	case errors.Is(err, wav2c.ErrNotMono):
//	case errors.Is(err, wav2c.ErrWrongSampleWidth):
//	case errors.Is(err, wav2c.ErrWrongFrameRate):
//	case errors.Is(err, wav2c.ErrIO):
//	}
//
// All three validation errors also match ErrValidation.
//
// The header is written to a temporary file that replaces the output path
// only once it is complete. A failed conversion never leaves a partial
// header behind.
//
// # Lower Level API
//
// Generate writes a header for an already decoded source to any io.Writer,
// and Validate exposes the format checks on their own:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	if err := wav2c.Validate(src); err != nil {
//	    // Handle error
//	}
//	err := wav2c.Generate(os.Stdout, src, wav2c.Header{Symbol: "HORN", Input: "horn.wav", Output: "-"})
package wav2c
