package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestLogin_Success(t *testing.T) {
	uc := NewUsecase("admin", "admin123", "test-secret").
		WithClock(func() time.Time { return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC) })

	dto, err := uc.Login("admin", "admin123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if dto.Admin.Username != "admin" || dto.Admin.ID != 1 {
		t.Fatalf("unexpected admin: %+v", dto.Admin)
	}

	// token must verify with the same secret and carry the subject
	tok, err := jwt.Parse(dto.Token, func(*jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithTimeFunc(func() time.Time {
		return time.Date(2026, 9, 1, 13, 0, 0, 0, time.UTC)
	}))
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	sub, err := tok.Claims.GetSubject()
	if err != nil || sub != "admin" {
		t.Fatalf("subject = %q, err = %v", sub, err)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	uc := NewUsecase("admin", "admin123", "test-secret")

	cases := [][2]string{
		{"admin", "wrong"},
		{"root", "admin123"},
		{"", ""},
	}
	for _, c := range cases {
		if _, err := uc.Login(c[0], c[1]); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("login(%q,%q): want ErrInvalidCredentials, got %v", c[0], c[1], err)
		}
	}
}
