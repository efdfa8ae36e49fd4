package service

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha512"
	"encoding/base64"
	"testing"
)

func TestHashVerifyRoundTrip(t *testing.T) {
	h := NewPasswordHasher()

	for _, password := range []string{"p4ssword", "", "correct horse battery staple", "пароль"} {
		stored, err := h.Hash(password)
		if err != nil {
			t.Fatalf("Hash(%q): %v", password, err)
		}
		if !h.Verify(password, stored) {
			t.Fatalf("Verify(%q, Hash(%q)) = false", password, password)
		}
	}
}

func TestVerifyRejectsWrongPassword(t *testing.T) {
	h := NewPasswordHasher()

	stored, err := h.Hash("p4ssword")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if h.Verify("p4ssw0rd", stored) {
		t.Fatal("wrong password verified")
	}
}

func TestHashWritesCurrentFormat(t *testing.T) {
	h := NewPasswordHasher()

	stored, err := h.Hash("p4ssword")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	decoded, err := base64.StdEncoding.DecodeString(stored)
	if err != nil {
		t.Fatalf("stored hash is not base64: %v", err)
	}
	if len(decoded) != 16+32 {
		t.Fatalf("expected 16-byte salt + 32-byte digest, got %d bytes", len(decoded))
	}
}

func TestVerifyMalformedInput(t *testing.T) {
	h := NewPasswordHasher()

	tests := []struct {
		name   string
		stored string
	}{
		{name: "empty", stored: ""},
		{name: "not-base64", stored: "!!!not base64!!!"},
		{name: "truncated-base64", stored: "YWJjZA"},
		{name: "wrong-length", stored: base64.StdEncoding.EncodeToString([]byte("short"))},
		{name: "almost-current-length", stored: base64.StdEncoding.EncodeToString(make([]byte, 47))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if h.Verify("p4ssword", tt.stored) {
				t.Fatalf("Verify accepted malformed input %q", tt.stored)
			}
		})
	}
}

// legacyHash reproduces the stored format of earlier releases:
// base64(salt || HMAC-SHA512(key=salt, msg=password)) with a 64- or
// 128-byte salt.
func legacyHash(t *testing.T, password string, saltSize int) string {
	t.Helper()
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		t.Fatalf("rand: %v", err)
	}
	mac := hmac.New(sha512.New, salt)
	mac.Write([]byte(password))
	return base64.StdEncoding.EncodeToString(mac.Sum(salt))
}

func TestVerifyLegacyFormats(t *testing.T) {
	h := NewPasswordHasher()

	for _, saltSize := range []int{64, 128} {
		stored := legacyHash(t, "legacy-pass", saltSize)
		if !h.Verify("legacy-pass", stored) {
			t.Fatalf("legacy %d-byte-salt hash did not verify", saltSize)
		}
		if h.Verify("other-pass", stored) {
			t.Fatalf("legacy %d-byte-salt hash verified the wrong password", saltSize)
		}
	}
}
