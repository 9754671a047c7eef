package utils

import (
	"testing"
	"time"
)

func TestIssueAndParse_Success(t *testing.T) {
	t.Parallel()

	manager := JWTManager{Secret: []byte("super-secret"), TokenTTL: 7 * 24 * time.Hour}
	userID := "9f4c2a6e-0000-4000-8000-123456789abc"

	token, ttl, err := manager.IssueToken(userID)
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}
	if ttl != 7*24*time.Hour {
		t.Fatalf("unexpected ttl: %v", ttl)
	}

	gotUserID, err := manager.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken error: %v", err)
	}
	if gotUserID != userID {
		t.Fatalf("userID mismatch: got %q want %q", gotUserID, userID)
	}
}

func TestIssueToken_DefaultTTL(t *testing.T) {
	t.Parallel()

	manager := JWTManager{Secret: []byte("k")}
	_, ttl, err := manager.IssueToken("u1")
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}
	if ttl != 7*24*time.Hour {
		t.Fatalf("expected 7 day default ttl, got %v", ttl)
	}
}

func TestParseToken_Expired(t *testing.T) {
	t.Parallel()

	manager := JWTManager{Secret: []byte("secret"), TokenTTL: -time.Minute}
	token, _, err := manager.IssueToken("u1")
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}

	if _, err := manager.ParseToken(token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := JWTManager{Secret: []byte("right-secret"), TokenTTL: time.Hour}
	token, _, err := issuer.IssueToken("u2")
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}

	verifier := JWTManager{Secret: []byte("wrong-secret")}
	if _, err := verifier.ParseToken(token); err == nil {
		t.Fatalf("expected error for invalid signature, got nil")
	}
}

func TestParseToken_Malformed(t *testing.T) {
	t.Parallel()

	manager := JWTManager{Secret: []byte("k")}
	if _, err := manager.ParseToken("not.a.jwt"); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}

func TestParseToken_TwoTokensSameUser(t *testing.T) {
	t.Parallel()

	manager := JWTManager{Secret: []byte("k"), TokenTTL: time.Hour}
	first, _, err := manager.IssueToken("user-1")
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}
	second, _, err := manager.IssueToken("user-1")
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}

	firstID, err := manager.ParseToken(first)
	if err != nil {
		t.Fatalf("ParseToken error: %v", err)
	}
	secondID, err := manager.ParseToken(second)
	if err != nil {
		t.Fatalf("ParseToken error: %v", err)
	}
	if firstID != secondID {
		t.Fatalf("tokens resolve to different users: %q vs %q", firstID, secondID)
	}
}
