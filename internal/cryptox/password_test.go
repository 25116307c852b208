package cryptox

import (
	"bytes"
	"testing"
)

func TestHashPassword_Deterministic(t *testing.T) {
	t.Parallel()

	salt := []byte("0123456789abcdef")
	a := HashPassword([]byte("pw1"), salt)
	b := HashPassword([]byte("pw1"), salt)

	if !bytes.Equal(a, b) {
		t.Fatalf("same (password, salt) produced different digests")
	}
	if len(a) != digestSize {
		t.Fatalf("expected digest length %d, got %d", digestSize, len(a))
	}
}

func TestHashPassword_SaltChangesDigest(t *testing.T) {
	t.Parallel()

	a := HashPassword([]byte("pw1"), []byte("salt-aaaa-aaaa-aa"))
	b := HashPassword([]byte("pw1"), []byte("salt-bbbb-bbbb-bb"))

	if bytes.Equal(a, b) {
		t.Fatalf("different salts produced identical digests")
	}
}

func TestVerifyPassword_RoundTrip(t *testing.T) {
	t.Parallel()

	salt := GenerateSalt()
	digest := HashPassword([]byte("correct horse"), salt)

	if !VerifyPassword([]byte("correct horse"), digest, salt) {
		t.Fatalf("expected verification to succeed")
	}
}

func TestVerifyPassword_SingleCharDifference(t *testing.T) {
	t.Parallel()

	salt := GenerateSalt()
	digest := HashPassword([]byte("correct horse"), salt)

	if VerifyPassword([]byte("correct horsf"), digest, salt) {
		t.Fatalf("altered password must not verify")
	}

	tampered := append([]byte(nil), digest...)
	tampered[0] ^= 0x01
	if VerifyPassword([]byte("correct horse"), tampered, salt) {
		t.Fatalf("altered digest must not verify")
	}
}

func TestGenerateSalt_Size(t *testing.T) {
	t.Parallel()

	s := GenerateSalt()
	if len(s) != SaltSize {
		t.Fatalf("expected salt length %d, got %d", SaltSize, len(s))
	}
}
