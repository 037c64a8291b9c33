package users

import (
	"testing"
	"time"
)

func TestVerificationTokenExpired(t *testing.T) {
	now := time.Now()
	tok := VerificationToken{
		Type:      TokenEmailVerification,
		ExpiresAt: now.Add(time.Hour),
	}
	if tok.Expired(now) {
		t.Error("token expiring in an hour must not be expired")
	}
	if !tok.Expired(now.Add(2 * time.Hour)) {
		t.Error("token past its expiry must be expired")
	}
}

func TestTokenTypesDistinct(t *testing.T) {
	if TokenEmailVerification == TokenPasswordReset {
		t.Error("token types must be distinct")
	}
}
