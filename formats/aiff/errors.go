package aiff

import "errors"

var (
	// ErrNotAiffFile indicates the file is not a valid AIFF file
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrMissingCommChunk indicates the COMM chunk holding the format is absent
	ErrMissingCommChunk = errors.New("AIFF file has no COMM chunk")

	// ErrUnsupportedEncoding is returned for AIFF-C compression types that
	// are not linear PCM
	ErrUnsupportedEncoding = errors.New("unsupported AIFF-C compression type")
)
