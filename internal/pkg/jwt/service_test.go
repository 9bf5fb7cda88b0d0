package jwt

import (
	"errors"
	"testing"
	"time"

	"job-portal/internal/domain/user"

	"github.com/google/uuid"
)

func TestGenerateValidateRoundTrip(t *testing.T) {
	s := NewHMACService("secret", time.Hour)

	id := uuid.New()
	token, err := s.Generate(id, user.RoleEmployer)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := s.Validate(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != id {
		t.Fatalf("user id = %v, want %v", claims.UserID, id)
	}
	if claims.Role != user.RoleEmployer {
		t.Fatalf("role = %q", claims.Role)
	}
}

func TestValidateExpiredToken(t *testing.T) {
	s := NewHMACService("secret", time.Hour)
	s.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := s.Generate(uuid.New(), user.RoleJobseeker)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	s.now = time.Now
	if _, err := s.Validate(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("got %v, want ErrTokenExpired", err)
	}
}

func TestValidateWrongSecret(t *testing.T) {
	a := NewHMACService("secret-a", time.Hour)
	b := NewHMACService("secret-b", time.Hour)

	token, err := a.Generate(uuid.New(), user.RoleJobseeker)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := b.Validate(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("got %v, want ErrTokenInvalid", err)
	}
}

func TestValidateGarbage(t *testing.T) {
	s := NewHMACService("secret", time.Hour)
	if _, err := s.Validate("not-a-token"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("got %v, want ErrTokenInvalid", err)
	}
}
