package auth

import (
	"strings"
	"testing"
)

func classify(s string) (upper, lower, digit, symbol int) {
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			upper++
		case r >= 'a' && r <= 'z':
			lower++
		case r >= '0' && r <= '9':
			digit++
		case strings.ContainsRune(symbolChars, r):
			symbol++
		}
	}
	return
}

func TestGenerateTempPasswordClasses(t *testing.T) {
	for i := 0; i < 10000; i++ {
		pw, err := GenerateTempPassword(TempPasswordLength)
		if err != nil {
			t.Fatalf("trial %d: %v", i, err)
		}
		if len(pw) != TempPasswordLength {
			t.Fatalf("trial %d: got length %d, want %d", i, len(pw), TempPasswordLength)
		}

		upper, lower, digit, symbol := classify(pw)
		if upper < 1 || lower < 1 || digit < 1 || symbol < 1 {
			t.Fatalf("trial %d: password %q missing a character class (u=%d l=%d d=%d s=%d)",
				i, pw, upper, lower, digit, symbol)
		}
		if upper+lower+digit+symbol != len(pw) {
			t.Fatalf("trial %d: password %q contains characters outside the charset", i, pw)
		}
	}
}

func TestGenerateTempPasswordMinLength(t *testing.T) {
	pw, err := GenerateTempPassword(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(pw) != 4 {
		t.Fatalf("length below 4 should clamp to 4, got %d", len(pw))
	}
}

func TestGenerateTempPasswordNotRepeating(t *testing.T) {
	a, err := GenerateTempPassword(TempPasswordLength)
	if err != nil {
		t.Fatal(err)
	}
	b, err := GenerateTempPassword(TempPasswordLength)
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Fatalf("two generated passwords are identical: %q", a)
	}
}
