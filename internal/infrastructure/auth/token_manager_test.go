package auth

import (
	"errors"
	"strings"
	"testing"
	"time"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestNewTokenManager(t *testing.T) {
	if _, err := NewTokenManager("short", time.Hour); !errors.Is(err, ErrWeakSecret) {
		t.Fatalf("expected ErrWeakSecret, got %v", err)
	}
	m, err := NewTokenManager(testSecret, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.ttl != 12*time.Hour {
		t.Fatalf("expected default ttl, got %s", m.ttl)
	}
}

func TestTokenManager_IssueAndParse(t *testing.T) {
	m, _ := NewTokenManager(testSecret, time.Hour)
	now := time.Date(2025, 12, 10, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	token, exp, err := m.Issue("Admin@UPA.org")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if !exp.Equal(now.Add(time.Hour)) {
		t.Fatalf("unexpected expiry %s", exp)
	}

	t.Run("valid", func(t *testing.T) {
		claims, err := m.Parse(token)
		if err != nil {
			t.Fatalf("parse: %v", err)
		}
		if claims.Email != "admin@upa.org" {
			t.Fatalf("unexpected email %q", claims.Email)
		}
	})

	t.Run("expired", func(t *testing.T) {
		later, _ := NewTokenManager(testSecret, time.Hour)
		later.now = func() time.Time { return now.Add(2 * time.Hour) }
		if _, err := later.Parse(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("other secret", func(t *testing.T) {
		other, _ := NewTokenManager(strings.Repeat("x", 32), time.Hour)
		other.now = m.now
		if _, err := other.Parse(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := m.Parse("not.a.token"); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})
}
