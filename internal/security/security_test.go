package security

import (
	"testing"
	"time"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if hash == "correct horse battery staple" {
		t.Fatal("hash should not equal the plaintext password")
	}

	if !CheckPassword("correct horse battery staple", hash) {
		t.Error("CheckPassword() should accept the original password")
	}

	if CheckPassword("wrong password", hash) {
		t.Error("CheckPassword() should reject a different password")
	}
}

func TestTokenIssueAndParse(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour)

	token, err := manager.Issue("parent-123", "parent@example.com", true)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	claims, err := manager.Parse(token)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if claims.ParentID != "parent-123" {
		t.Errorf("ParentID = %v, want parent-123", claims.ParentID)
	}
	if claims.Email != "parent@example.com" {
		t.Errorf("Email = %v, want parent@example.com", claims.Email)
	}
	if !claims.IsAdmin {
		t.Error("IsAdmin should be true")
	}
}

func TestTokenParseRejectsTampering(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour)
	other := NewTokenManager("different-secret", time.Hour)

	token, err := manager.Issue("parent-123", "parent@example.com", false)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := other.Parse(token); err == nil {
		t.Error("Parse() should reject a token signed with another secret")
	}

	if _, err := manager.Parse(token + "x"); err == nil {
		t.Error("Parse() should reject a corrupted token")
	}
}

func TestTokenParseRejectsExpired(t *testing.T) {
	manager := NewTokenManager("test-secret", -time.Minute)

	token, err := manager.Issue("parent-123", "parent@example.com", false)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := manager.Parse(token); err != ErrTokenExpired {
		t.Errorf("Parse() error = %v, want ErrTokenExpired", err)
	}
}

func TestRateLimiterAllow(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)

	if !rl.Allow("10.0.0.1") {
		t.Error("first request should be allowed")
	}
	if !rl.Allow("10.0.0.1") {
		t.Error("second request should be allowed")
	}
	if rl.Allow("10.0.0.1") {
		t.Error("third request should be rejected")
	}

	// A different client has its own bucket
	if !rl.Allow("10.0.0.2") {
		t.Error("request from a new client should be allowed")
	}
}
