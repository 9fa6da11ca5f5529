package security

import (
	"strings"
	"testing"
)

func TestRandomStringRejectsBadInput(t *testing.T) {
	if _, err := RandomString(-1, "abc"); err == nil {
		t.Fatal("expected error for negative length")
	}
	if _, err := RandomString(4, ""); err == nil {
		t.Fatal("expected error for empty alphabet")
	}
}

func TestRandomStringZeroLength(t *testing.T) {
	got, err := RandomString(0, "abc")
	if err != nil {
		t.Fatalf("RandomString(0) unexpected error: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestRandomStringDrawsFromAlphabet(t *testing.T) {
	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

	got, err := RandomString(48, alphabet)
	if err != nil {
		t.Fatalf("RandomString() unexpected error: %v", err)
	}
	if len(got) != 48 {
		t.Fatalf("expected 48 characters, got %d", len(got))
	}
	for _, char := range got {
		if !strings.ContainsRune(alphabet, char) {
			t.Fatalf("character %q outside alphabet", char)
		}
	}
}
