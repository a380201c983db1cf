package adapters

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	domainerror "github.com/brecho/backoffice/internal/domain/error"
)

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("secret")
	userID := uuid.New()

	token, err := svc.GenerateAccessToken(userID, "loja@example.com", time.Hour)
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	claims, err := svc.ValidateAccessToken(context.Background(), token)
	if err != nil {
		t.Fatalf("ValidateAccessToken() error = %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("UserID = %s, want %s", claims.UserID, userID)
	}
	if claims.Email != "loja@example.com" {
		t.Errorf("Email = %s, want loja@example.com", claims.Email)
	}
}

func TestTokenService_Rejects(t *testing.T) {
	userID := uuid.New()
	now := time.Now().UTC()

	sign := func(secret string, claims jwt.Claims) string {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		if err != nil {
			t.Fatalf("sign error = %v", err)
		}
		return token
	}

	tests := []struct {
		name  string
		token string
	}{
		{
			name: "expired",
			token: sign("secret", CustomClaims{
				UserID:           userID.String(),
				TokenType:        tokenTypeAccess,
				RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute))},
			}),
		},
		{
			name: "wrong secret",
			token: sign("other", CustomClaims{
				UserID:           userID.String(),
				TokenType:        tokenTypeAccess,
				RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour))},
			}),
		},
		{
			name: "refresh token",
			token: sign("secret", CustomClaims{
				UserID:           userID.String(),
				TokenType:        "refresh",
				RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour))},
			}),
		},
		{
			name: "missing expiry",
			token: sign("secret", CustomClaims{
				UserID:    userID.String(),
				TokenType: tokenTypeAccess,
			}),
		},
		{
			name: "invalid user id",
			token: sign("secret", CustomClaims{
				UserID:           "not-a-uuid",
				TokenType:        tokenTypeAccess,
				RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour))},
			}),
		},
		{name: "garbage", token: "abc.def.ghi"},
	}

	svc := NewTokenService("secret")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateAccessToken(context.Background(), tt.token)
			want := domainerror.ErrInvalidToken
			if tt.name == "expired" {
				want = domainerror.ErrExpiredToken
			}
			if !errors.Is(err, want) {
				t.Errorf("ValidateAccessToken() error = %v, want %v", err, want)
			}
		})
	}
}

func TestTokenService_AcceptsSubjectOnlyTokens(t *testing.T) {
	userID := uuid.New()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign error = %v", err)
	}

	claims, err := NewTokenService("secret").ValidateAccessToken(context.Background(), token)
	if err != nil {
		t.Fatalf("ValidateAccessToken() error = %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("UserID = %s, want %s", claims.UserID, userID)
	}
}
