package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/brecho/backoffice/internal/integration/adapters"
)

func TestAuthenticate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tokens := adapters.NewTokenService("test-secret")
	userID := uuid.New()
	valid, err := tokens.GenerateAccessToken(userID, "loja@example.com", time.Hour)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	expired, err := tokens.GenerateAccessToken(userID, "loja@example.com", -time.Minute)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	router := gin.New()
	router.Use(NewAuthMiddleware(tokens).Authenticate())
	router.GET("/me", func(c *gin.Context) {
		id, ok := GetUserIDFromContext(c)
		email, _ := GetUserEmailFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, id.String()+" "+email)
	})

	tests := []struct {
		name   string
		header string
		status int
		code   string
	}{
		{name: "missing header", header: "", status: http.StatusUnauthorized, code: "AUTH-030003"},
		{name: "wrong scheme", header: "Basic " + valid, status: http.StatusUnauthorized, code: "AUTH-030001"},
		{name: "empty token", header: "Bearer ", status: http.StatusUnauthorized},
		{name: "tampered token", header: "Bearer " + valid + "x", status: http.StatusUnauthorized, code: "AUTH-030001"},
		{name: "expired token", header: "Bearer " + expired, status: http.StatusUnauthorized, code: "AUTH-030002"},
		{name: "valid token", header: "Bearer " + valid, status: http.StatusOK},
		{name: "lowercase scheme", header: "bearer " + valid, status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.status {
				t.Fatalf("expected status %d, got %d: %s", tt.status, rec.Code, rec.Body.String())
			}
			if tt.code != "" && !strings.Contains(rec.Body.String(), tt.code) {
				t.Errorf("expected code %s in %s", tt.code, rec.Body.String())
			}
			if tt.status == http.StatusOK && rec.Body.String() != userID.String()+" loja@example.com" {
				t.Errorf("unexpected body %q", rec.Body.String())
			}
		})
	}
}
