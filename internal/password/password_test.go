package password_test

import (
	"testing"

	"github.com/akarimov/imagefeed/internal/password"
)

func TestHashAndMatch(t *testing.T) {
	hash, err := password.Hash("my1P455w0rd15Gr347")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "my1P455w0rd15Gr347" {
		t.Fatal("hash equals plaintext")
	}

	if !password.Matches("my1P455w0rd15Gr347", hash) {
		t.Error("correct password did not match")
	}
	if password.Matches("wrong password", hash) {
		t.Error("wrong password matched")
	}
}

func TestMatches_GarbageHash(t *testing.T) {
	if password.Matches("1234", "not-a-bcrypt-hash") {
		t.Error("garbage hash matched")
	}
}
