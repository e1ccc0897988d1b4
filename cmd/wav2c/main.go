// SPDX-License-Identifier: EPL-2.0

// Command wav2c converts a mono 8-bit 8 kHz WAV file into a C header holding
// the samples as a PROGMEM uint8_t array.
//
//	wav2c sound_file.wav code_file.h var_name
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ik5/wav2c"
)

const usage = `wav2c - Convert a 8KHz, 8bit, mono file to a C header file
    usage: wav2c sound_file.wav code_file.h var_name
`

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	if len(args) != 3 {
		fmt.Fprint(stderr, usage)
		return 1
	}

	inPath, outPath, symbol := args[0], args[1], args[2]

	info, err := os.Stat(inPath)
	if err != nil || !info.Mode().IsRegular() {
		fmt.Fprintln(stderr, "Error: wav file does not exist!")
		return 1
	}

	if err := wav2c.Convert(inPath, outPath, symbol); err != nil {
		fmt.Fprintln(stderr, message(err))
		return 1
	}

	return 0
}

func message(err error) string {
	switch {
	case errors.Is(err, wav2c.ErrNotMono):
		return "Error: wav file must be a MONO track!"
	case errors.Is(err, wav2c.ErrWrongSampleWidth):
		return "Error: wav sample must be 8 bits!"
	case errors.Is(err, wav2c.ErrWrongFrameRate):
		return "Error: wav sample rate must be 8 kHz!"
	}

	return "Error: " + err.Error()
}
