// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and a PCM WAV writer.
//
// Decoding uses the github.com/go-audio/wav library for chunk parsing and
// sample reads.
//
// # Supported Formats
//
// Any PCM (or extensible PCM) WAV file can be decoded and inspected. Sample
// data can only be read from mono 8-bit streams, which is what the C header
// generator embeds.
//
// # Decoding WAV Files
//
//	file, _ := os.Open("horn.wav")
//	source, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	fmt.Println(source.Channels(), source.BitDepth(), source.SampleRate(), source.Frames())
//
//	buf := make([]byte, source.BufSize())
//	n, err := source.ReadFrames(buf)
//
// 8-bit WAV samples are unsigned, 128 being silence. They are returned
// unchanged.
//
// The frame count is the size declared by the data chunk divided by the
// block alignment. The pad byte that follows an odd sized data chunk is
// never counted as a frame.
//
// # Writing WAV Files
//
// WritePCM writes a canonical 44-byte header followed by raw sample data:
//
//	err := wav.WritePCM(file, 8000, 1, 8, []byte{0, 128, 255})
//
// # Error Handling
//
//   - ErrNotWavFile: the input does not start with RIFF/WAVE
//   - ErrMissingFmtChunk: no fmt chunk was found
//   - ErrMissingDataChunk: no data chunk was found
//   - ErrOnlyPCMSupported: compressed or floating point audio
//   - ErrInvalidFormat: WritePCM was given an impossible format
package wav
