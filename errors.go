// SPDX-License-Identifier: EPL-2.0

package wav2c

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is wrapped by every input format violation.
	ErrValidation = errors.New("invalid input audio")

	ErrNotMono          = fmt.Errorf("%w: wav file must be a MONO track", ErrValidation)
	ErrWrongSampleWidth = fmt.Errorf("%w: wav sample must be 8 bits", ErrValidation)
	ErrWrongFrameRate   = fmt.Errorf("%w: wav sample rate must be 8 kHz", ErrValidation)

	// ErrIO is wrapped by read, write and container failures.
	ErrIO = errors.New("i/o failure")

	// ErrNoDecoder means the registry has no decoder for the input's
	// extension nor for the default format. Convert reports it wrapped in
	// ErrIO.
	ErrNoDecoder = errors.New("no decoder registered")
)

func ioError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrIO, op, err)
}
