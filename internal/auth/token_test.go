package auth

import (
	"testing"
	"time"
)

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("super-secret", time.Hour)

	tok, err := svc.Issue("a@b.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	email, ok := svc.Verify(tok)
	if !ok {
		t.Fatalf("Verify reported invalid for a fresh token")
	}
	if email != "a@b.com" {
		t.Fatalf("email mismatch: got %q want %q", email, "a@b.com")
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("secret", time.Hour)
	svc.ttl = -1 * time.Second

	tok, err := svc.Issue("a@b.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, ok := svc.Verify(tok); ok {
		t.Fatalf("expected expired token to be rejected")
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenService("right-secret", time.Hour).Issue("a@b.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, ok := NewTokenService("wrong-secret", time.Hour).Verify(tok); ok {
		t.Fatalf("expected token signed with another secret to be rejected")
	}
}

func TestVerify_Tampered(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("secret", time.Hour)
	tok, err := svc.Issue("a@b.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, ok := svc.Verify(tok + "x"); ok {
		t.Fatalf("expected tampered token to be rejected")
	}
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("k", time.Hour)
	for _, tok := range []string{"", "not.a.jwt", "garbage"} {
		if _, ok := svc.Verify(tok); ok {
			t.Fatalf("expected %q to be rejected", tok)
		}
	}
}
