package wav

import "errors"

var (
	ErrNotWavFile       = errors.New("not a WAV file")
	ErrMissingFmtChunk  = errors.New("WAV file has no fmt chunk")
	ErrMissingDataChunk = errors.New("WAV file has no data chunk")
	ErrOnlyPCMSupported = errors.New("only PCM WAV supported")
)
