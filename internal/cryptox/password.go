// Package cryptox implements the password credential primitives: salted
// one-way digests and constant-time verification.
package cryptox

import (
	"crypto/subtle"

	"github.com/CARE-UiT/Reflectometer/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	// SaltSize is the per-user random salt length in bytes.
	SaltSize = 16

	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	digestSize   = 32
)

// GenerateSalt returns a fresh random salt. Salts are generated once at
// registration and never reused across users.
func GenerateSalt() []byte {
	return common.GenerateRandByteArray(SaltSize)
}

// HashPassword derives the stored digest for a plaintext password and salt.
// The transform is deterministic: the same (password, salt) pair always
// yields the same digest.
func HashPassword(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, digestSize)
}

// VerifyPassword reports whether password hashes to digest under salt.
// The comparison runs in constant time regardless of where a mismatch occurs.
func VerifyPassword(password, digest, salt []byte) bool {
	candidate := HashPassword(password, salt)
	return subtle.ConstantTimeCompare(candidate, digest) == 1
}
