package auth

import (
	"strings"
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("S3cret@pw")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Fatalf("expected a bcrypt hash, got %q", hash)
	}
	if hash == "S3cret@pw" {
		t.Fatal("hash must not equal the plaintext")
	}

	if !CheckPassword("S3cret@pw", hash) {
		t.Fatal("correct password rejected")
	}
	if CheckPassword("wrong", hash) {
		t.Fatal("wrong password accepted")
	}
	if CheckPassword("", hash) {
		t.Fatal("empty password accepted")
	}
	if CheckPassword("S3cret@pw", "not-a-hash") {
		t.Fatal("invalid hash accepted")
	}
}
