package utils

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("secreto")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hashed == "secreto" {
		t.Fatal("hash must not equal the plain-text password")
	}

	if !CheckPassword(hashed, "secreto") {
		t.Error("correct password should verify")
	}
	if CheckPassword(hashed, "otro") {
		t.Error("wrong password should not verify")
	}
}

func TestCheckPasswordAgainstPlainText(t *testing.T) {
	// A stored value that is not a bcrypt hash never verifies.
	if CheckPassword("secreto", "secreto") {
		t.Error("plain-text stored value should not verify")
	}
}
