package security

import (
	"testing"
	"time"
)

func TestJwtRoundTrip(t *testing.T) {
	opts := DefaultOptions([]byte("test-secret"))

	token, expireAt, err := Generate(opts, 42)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}
	if until := time.Until(expireAt); until < 23*time.Hour {
		t.Errorf("expireAt too close: %v", until)
	}

	uid, err := Verify(opts, token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if uid != 42 {
		t.Errorf("uid = %d, want 42", uid)
	}
}

func TestJwtExpired(t *testing.T) {
	opts := DefaultOptions([]byte("test-secret"))
	opts.TTL = -time.Minute

	token, _, err := Generate(opts, 7)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if _, err := Verify(opts, token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestJwtWrongSecret(t *testing.T) {
	token, _, err := Generate(DefaultOptions([]byte("secret-a")), 7)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if _, err := Verify(DefaultOptions([]byte("secret-b")), token); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

func TestJwtGarbage(t *testing.T) {
	opts := DefaultOptions([]byte("test-secret"))
	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := Verify(opts, token); err == nil {
			t.Errorf("expected error for token %q", token)
		}
	}
}

func TestVerifierWrapsOptions(t *testing.T) {
	opts := DefaultOptions([]byte("test-secret"))
	token, _, err := Generate(opts, 99)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	uid, err := NewVerifier(opts).VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken failed: %v", err)
	}
	if uid != 99 {
		t.Errorf("uid = %d, want 99", uid)
	}
}
