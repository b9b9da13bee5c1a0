package service

import "testing"

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "secret" {
		t.Fatal("hash equals plaintext")
	}
	if !CheckPassword(hash, "secret") {
		t.Fatal("correct password rejected")
	}
	if CheckPassword(hash, "wrong") {
		t.Fatal("wrong password accepted")
	}
	if CheckPassword("not-a-hash", "secret") {
		t.Fatal("malformed hash accepted")
	}
}
