package service

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/accessd/accessd/internal/core/domain"
)

func newTestTokenService(t *testing.T) *TokenService {
	t.Helper()
	ts, err := NewTokenService("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}
	return ts
}

func TestNewTokenService_RequiresSecret(t *testing.T) {
	if _, err := NewTokenService("", time.Hour); err == nil {
		t.Fatalf("expected error for empty secret")
	}
}

func TestToken_RoundTrip(t *testing.T) {
	ts := newTestTokenService(t)

	token, err := ts.Issue(42)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	sub, err := ts.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if sub != 42 {
		t.Fatalf("subject = %d, want 42", sub)
	}
}

func TestToken_Expired(t *testing.T) {
	ts := newTestTokenService(t)

	token, err := ts.Issue(7)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	// Move the clock past the validity window before verifying.
	ts.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	if _, err := ts.Verify(token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestToken_WrongSecret(t *testing.T) {
	ts := newTestTokenService(t)
	other, err := NewTokenService("different-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}

	token, err := ts.Issue(7)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := other.Verify(token); !errors.Is(err, domain.ErrSignatureInvalid) {
		t.Fatalf("expected ErrSignatureInvalid, got %v", err)
	}
}

func TestToken_TamperedSignature(t *testing.T) {
	ts := newTestTokenService(t)

	token, err := ts.Issue(7)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("expected three token segments, got %d", len(parts))
	}

	sig, err := base64.RawURLEncoding.DecodeString(parts[2])
	if err != nil {
		t.Fatalf("decode signature: %v", err)
	}
	sig[0] ^= 0x01
	parts[2] = base64.RawURLEncoding.EncodeToString(sig)

	if _, err := ts.Verify(strings.Join(parts, ".")); !errors.Is(err, domain.ErrSignatureInvalid) {
		t.Fatalf("expected ErrSignatureInvalid, got %v", err)
	}
}

func TestToken_Malformed(t *testing.T) {
	ts := newTestTokenService(t)

	for _, tok := range []string{"", "not-a-token", "a.b", "a.b.c"} {
		if _, err := ts.Verify(tok); !errors.Is(err, domain.ErrTokenMalformed) {
			t.Fatalf("Verify(%q): expected ErrTokenMalformed, got %v", tok, err)
		}
	}
}

func TestPassword_RoundTrip(t *testing.T) {
	ts := newTestTokenService(t)

	hash, err := ts.HashPassword("s3cr3t")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "s3cr3t" {
		t.Fatalf("hash must not equal the plaintext")
	}
	if !ts.VerifyPassword("s3cr3t", hash) {
		t.Fatalf("expected password to verify against its own hash")
	}
	if ts.VerifyPassword("other", hash) {
		t.Fatalf("wrong password must not verify")
	}
}

func TestPassword_CorruptHashReportsMismatch(t *testing.T) {
	ts := newTestTokenService(t)
	if ts.VerifyPassword("anything", "not-a-bcrypt-hash") {
		t.Fatalf("corrupt hash must report mismatch, not match")
	}
}
