package security

import "testing"

func TestPasswordHashAndVerify(t *testing.T) {
	hashed, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hashed == "hunter2" {
		t.Fatal("hash equals plaintext")
	}
	if !VerifyPassword("hunter2", hashed) {
		t.Error("correct password rejected")
	}
	if VerifyPassword("wrong", hashed) {
		t.Error("wrong password accepted")
	}
	if VerifyPassword("hunter2", "not-a-bcrypt-hash") {
		t.Error("bogus hash accepted")
	}
}
