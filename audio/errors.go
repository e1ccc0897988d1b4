// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrUnsupportedFrameLayout = errors.New("only mono 8-bit frames can be read")
	ErrTruncatedData          = errors.New("sample data shorter than declared frame count")
)
