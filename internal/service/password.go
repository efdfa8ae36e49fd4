package service

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"hash"
)

const currentSaltSize = 16

// hashStrategy verifies a password against an already-decoded stored
// blob laid out as salt || HMAC(key=salt, msg=password).
type hashStrategy struct {
	saltSize   int
	digestSize int
	newHash    func() hash.Hash
}

// Strategies are tried in order until one matches. The first entry is
// the format Hash writes today; the SHA-512 entries only exist so that
// hashes written by earlier releases keep verifying.
var verifyStrategies = []hashStrategy{
	{saltSize: currentSaltSize, digestSize: sha256.Size, newHash: sha256.New},
	{saltSize: 64, digestSize: sha512.Size, newHash: sha512.New},
	{saltSize: 128, digestSize: sha512.Size, newHash: sha512.New},
}

type PasswordHasher struct{}

func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{}
}

// Hash salts and hashes a plaintext credential, returning
// base64(salt || HMAC-SHA256(key=salt, msg=password)) with a fresh
// random 16-byte salt.
func (h *PasswordHasher) Hash(password string) (string, error) {
	salt := make([]byte, currentSaltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	mac := hmac.New(sha256.New, salt)
	mac.Write([]byte(password))
	return base64.StdEncoding.EncodeToString(mac.Sum(salt)), nil
}

// Verify reports whether password matches a stored hash in any of the
// supported formats. Malformed input yields false, never an error.
func (h *PasswordHasher) Verify(password, stored string) bool {
	decoded, err := base64.StdEncoding.DecodeString(stored)
	if err != nil {
		return false
	}
	for _, s := range verifyStrategies {
		if len(decoded) != s.saltSize+s.digestSize {
			continue
		}
		mac := hmac.New(s.newHash, decoded[:s.saltSize])
		mac.Write([]byte(password))
		if hmac.Equal(mac.Sum(nil), decoded[s.saltSize:]) {
			return true
		}
	}
	return false
}
