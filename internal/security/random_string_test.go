package security

import (
	"errors"
	"strings"
	"testing"
)

func TestRandomStringLengthAndAlphabet(t *testing.T) {
	t.Parallel()

	const alphabet = "abcdef123456"
	value, err := RandomString(48, alphabet)
	if err != nil {
		t.Fatalf("RandomString returned error: %v", err)
	}
	if len(value) != 48 {
		t.Fatalf("expected 48 characters, got %d", len(value))
	}
	for _, char := range value {
		if !strings.ContainsRune(alphabet, char) {
			t.Fatalf("character %q is outside the alphabet", char)
		}
	}
}

func TestRandomStringZeroLength(t *testing.T) {
	t.Parallel()

	value, err := RandomString(0, "abc")
	if err != nil {
		t.Fatalf("RandomString returned error: %v", err)
	}
	if value != "" {
		t.Fatalf("expected empty string, got %q", value)
	}
}

func TestRandomStringRejectsBadSpec(t *testing.T) {
	t.Parallel()

	if _, err := RandomString(-1, "abc"); !errors.Is(err, ErrBadRandomSpec) {
		t.Fatalf("expected ErrBadRandomSpec for negative length, got %v", err)
	}
	if _, err := RandomString(4, ""); !errors.Is(err, ErrBadRandomSpec) {
		t.Fatalf("expected ErrBadRandomSpec for empty alphabet, got %v", err)
	}
}
