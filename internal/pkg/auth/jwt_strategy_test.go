package auth

import (
	"testing"
	"time"

	"github.com/digishoplabs/digishop/internal/domain/model"
)

func TestJWTStrategyRoundTrip(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{TTL: time.Hour})
	user := &model.User{ID: "u-1", Name: "Alex", Email: "alex@example.com", IsAdmin: true}

	token, err := strategy.IssueToken(user)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	claims, err := strategy.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != "u-1" || claims.Email != "alex@example.com" || claims.Name != "Alex" {
		t.Fatalf("unexpected claims %+v", claims)
	}
	if !claims.IsAdmin {
		t.Fatal("expected admin claim to survive round trip")
	}
}

func TestJWTStrategyRejectsExpired(t *testing.T) {
	strategy := &JWTStrategy{secret: []byte("secret"), ttl: -time.Minute}
	token, err := strategy.IssueToken(&model.User{ID: "u-1"})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if _, err := strategy.ParseToken(token); err != ErrInvalidToken {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestJWTStrategyRejectsForeignSignature(t *testing.T) {
	issuer := NewJWTStrategy("one-secret", Options{TTL: time.Hour})
	verifier := NewJWTStrategy("another-secret", Options{TTL: time.Hour})

	token, err := issuer.IssueToken(&model.User{ID: "u-1"})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if _, err := verifier.ParseToken(token); err != ErrInvalidToken {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestJWTStrategyRejectsGarbage(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{})
	for _, token := range []string{"", "abc", "a.b.c"} {
		if _, err := strategy.ParseToken(token); err != ErrInvalidToken {
			t.Fatalf("expected invalid token error for %q, got %v", token, err)
		}
	}
}

func TestDefaultTTL(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{})
	if strategy.ttl != 10*time.Hour {
		t.Fatalf("unexpected default ttl %s", strategy.ttl)
	}
}
