// SPDX-License-Identifier: EPL-2.0

package wav2c

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/ik5/wav2c/audio"
)

const (
	// Command is the tool name recorded in the generated header comment.
	Command = "wav2c"

	// ValuesPerLine is the number of array values written before a line break.
	ValuesPerLine = 16
)

// Header names what goes into a generated C header.
type Header struct {
	// Symbol is used for the include guard, the size macro and the array.
	// It is written as is and must be a valid C identifier.
	Symbol string
	// Input and Output are quoted in the invocation comment.
	Input  string
	Output string
}

const preamble = `/* %[1]s %[2]s %[3]s %[4]s */
#ifndef %[4]s_H
#define %[4]s_H

#include <stdint.h>
#ifdef __AVR__
#include <avr/pgmspace.h>
#else
#define PROGMEM
#endif

#define %[4]s_SIZE %[5]d
static const uint8_t %[4]s[%[4]s_SIZE] PROGMEM = {
`

const closing = "};\n#endif\n"

// Generate writes src as a C header to w. src is expected to be a validated
// mono 8-bit source; the number of values written always equals src.Frames()
// or Generate fails.
func Generate(w io.Writer, src audio.Source, h Header) error {
	bw := bufio.NewWriter(w)
	frames := src.Frames()

	if _, err := fmt.Fprintf(bw, preamble, Command, h.Input, h.Output, h.Symbol, frames); err != nil {
		return ioError("writing header", err)
	}

	written, err := writeValues(bw, src)
	if err != nil {
		return err
	}

	if written != frames {
		return ioError("writing values", fmt.Errorf("%w: got %d of %d frames", audio.ErrTruncatedData, written, frames))
	}

	if _, err := bw.WriteString(closing); err != nil {
		return ioError("writing footer", err)
	}

	if err := bw.Flush(); err != nil {
		return ioError("flushing output", err)
	}

	return nil
}

// writeValues streams every frame of src as "v, " with a line break after
// each ValuesPerLine values. A partial last line is terminated as well.
func writeValues(w *bufio.Writer, src audio.Source) (int, error) {
	size := src.BufSize()
	if size <= 0 {
		size = audio.DefaultBufSize
	}

	buf := make([]byte, size)
	// "255, " is the longest value, plus one line break per ValuesPerLine
	out := make([]byte, 0, size*5+size/ValuesPerLine+1)
	written := 0

	for {
		n, err := src.ReadFrames(buf)
		if n > 0 {
			out = out[:0]
			for _, v := range buf[:n] {
				out = strconv.AppendUint(out, uint64(v), 10)
				out = append(out, ", "...)
				written++
				if written%ValuesPerLine == 0 {
					out = append(out, '\n')
				}
			}

			if _, werr := w.Write(out); werr != nil {
				return written, ioError("writing values", werr)
			}
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return written, ioError("reading samples", err)
		}
	}

	if written%ValuesPerLine != 0 {
		if err := w.WriteByte('\n'); err != nil {
			return written, ioError("writing values", err)
		}
	}

	return written, nil
}
