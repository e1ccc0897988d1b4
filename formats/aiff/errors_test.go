package aiff

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrNotAiffFile(t *testing.T) {
	t.Parallel()

	expectedMsg := "not an AIFF file"
	if ErrNotAiffFile.Error() != expectedMsg {
		t.Errorf("ErrNotAiffFile.Error() = %q, want %q", ErrNotAiffFile.Error(), expectedMsg)
	}
}

func TestErrors_Distinct(t *testing.T) {
	t.Parallel()

	all := []error{ErrNotAiffFile, ErrMissingCommChunk, ErrUnsupportedEncoding}

	for i := range all {
		for j := range all {
			if i != j && (errors.Is(all[i], all[j]) || all[i].Error() == all[j].Error()) {
				t.Errorf("%v and %v are not distinct", all[i], all[j])
			}
		}
	}
}

func TestErrors_Wrapping(t *testing.T) {
	t.Parallel()

	for _, err := range []error{ErrNotAiffFile, ErrMissingCommChunk, ErrUnsupportedEncoding} {
		wrappedErr := fmt.Errorf("decoding horn.aiff: %w", err)
		if !errors.Is(wrappedErr, err) {
			t.Errorf("errors.Is(wrappedErr, %v) = false, want true", err)
		}
	}
}
