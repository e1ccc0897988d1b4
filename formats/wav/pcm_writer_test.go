package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func TestWritePCM_ValidFile(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)

	err := WritePCM(buf, 8000, 1, 8, []byte{0, 128, 255, 64})
	if err != nil {
		t.Fatalf("WritePCM() error = %v, want nil", err)
	}

	if buf.Len() != 48 {
		t.Fatalf("WAV file size = %d, want 48", buf.Len())
	}

	data := buf.Bytes()
	if string(data[0:4]) != "RIFF" {
		t.Errorf("RIFF marker = %q, want \"RIFF\"", string(data[0:4]))
	}

	if string(data[8:12]) != "WAVE" {
		t.Errorf("WAVE marker = %q, want \"WAVE\"", string(data[8:12]))
	}

	if !bytes.Equal(data[44:], []byte{0, 128, 255, 64}) {
		t.Errorf("sample data = %v, want [0 128 255 64]", data[44:])
	}
}

func TestWritePCM_EmptyData(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)

	if err := WritePCM(buf, 8000, 1, 8, nil); err != nil {
		t.Fatalf("WritePCM() error = %v, want nil", err)
	}

	if buf.Len() != 44 {
		t.Errorf("WAV file size = %d, want 44 (header only)", buf.Len())
	}

	if size := binary.LittleEndian.Uint32(buf.Bytes()[40:44]); size != 0 {
		t.Errorf("data size = %d, want 0", size)
	}
}

func TestWritePCM_OddDataIsPadded(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)

	if err := WritePCM(buf, 8000, 1, 8, []byte{1, 2, 3}); err != nil {
		t.Fatalf("WritePCM() error = %v", err)
	}

	data := buf.Bytes()
	if len(data) != 48 {
		t.Fatalf("WAV file size = %d, want 48 (header + 3 bytes + pad)", len(data))
	}

	if size := binary.LittleEndian.Uint32(data[40:44]); size != 3 {
		t.Errorf("data size = %d, want 3 (padding excluded)", size)
	}

	if riffSize := binary.LittleEndian.Uint32(data[4:8]); riffSize != 40 {
		t.Errorf("RIFF size = %d, want 40", riffSize)
	}
}

func TestWritePCM_CorrectHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		sampleRate int
		channels   int
		bitDepth   int
		blockAlign uint16
		byteRate   uint32
	}{
		{"mono 8-bit 8kHz", 8000, 1, 8, 1, 8000},
		{"stereo 8-bit 8kHz", 8000, 2, 8, 2, 16000},
		{"mono 16-bit 8kHz", 8000, 1, 16, 2, 16000},
		{"stereo 16-bit 44.1kHz", 44100, 2, 16, 4, 176400},
		{"mono 24-bit 48kHz", 48000, 1, 24, 3, 144000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf := new(bytes.Buffer)
			if err := WritePCM(buf, tt.sampleRate, tt.channels, tt.bitDepth, make([]byte, 12)); err != nil {
				t.Fatalf("WritePCM() error = %v", err)
			}

			data := buf.Bytes()

			if string(data[12:16]) != "fmt " {
				t.Errorf("fmt marker = %q, want \"fmt \"", string(data[12:16]))
			}

			if fmtSize := binary.LittleEndian.Uint32(data[16:20]); fmtSize != 16 {
				t.Errorf("fmt chunk size = %d, want 16", fmtSize)
			}

			if audioFormat := binary.LittleEndian.Uint16(data[20:22]); audioFormat != 1 {
				t.Errorf("audio format = %d, want 1 (PCM)", audioFormat)
			}

			if ch := binary.LittleEndian.Uint16(data[22:24]); int(ch) != tt.channels {
				t.Errorf("num channels = %d, want %d", ch, tt.channels)
			}

			if rate := binary.LittleEndian.Uint32(data[24:28]); int(rate) != tt.sampleRate {
				t.Errorf("sample rate = %d, want %d", rate, tt.sampleRate)
			}

			if byteRate := binary.LittleEndian.Uint32(data[28:32]); byteRate != tt.byteRate {
				t.Errorf("byte rate = %d, want %d", byteRate, tt.byteRate)
			}

			if blockAlign := binary.LittleEndian.Uint16(data[32:34]); blockAlign != tt.blockAlign {
				t.Errorf("block align = %d, want %d", blockAlign, tt.blockAlign)
			}

			if bits := binary.LittleEndian.Uint16(data[34:36]); int(bits) != tt.bitDepth {
				t.Errorf("bits per sample = %d, want %d", bits, tt.bitDepth)
			}

			if string(data[36:40]) != "data" {
				t.Errorf("data marker = %q, want \"data\"", string(data[36:40]))
			}
		})
	}
}

func TestWritePCM_InvalidFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                           string
		sampleRate, channels, bitDepth int
	}{
		{"zero rate", 0, 1, 8},
		{"zero channels", 8000, 0, 8},
		{"zero bits", 8000, 1, 0},
		{"12 bits", 8000, 1, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf := new(bytes.Buffer)
			err := WritePCM(buf, tt.sampleRate, tt.channels, tt.bitDepth, []byte{1})
			if !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("WritePCM() error = %v, want ErrInvalidFormat", err)
			}
			if buf.Len() != 0 {
				t.Errorf("WritePCM() wrote %d bytes on error", buf.Len())
			}
		})
	}
}

func BenchmarkWritePCM(b *testing.B) {
	data := make([]byte, 8000)
	buf := new(bytes.Buffer)

	b.ReportAllocs()

	for b.Loop() {
		buf.Reset()
		_ = WritePCM(buf, 8000, 1, 8, data)
	}
}
