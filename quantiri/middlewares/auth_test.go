package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"quantiri/quantiri/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func runMiddleware(t *testing.T, authHeader string) (*httptest.ResponseRecorder, *uuid.UUID) {
	t.Helper()
	cfg := config.Config{JWTSecret: "test-secret"}

	var gotID *uuid.UUID
	handler := AuthMiddleware(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id, ok := r.Context().Value(UserIDKey).(uuid.UUID); ok {
			gotID = &id
		}
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec, gotID
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	userID := uuid.New()
	token := signToken(t, "test-secret", jwt.MapClaims{
		"user_id": userID.String(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	rec, gotID := runMiddleware(t, "Bearer "+token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotID == nil || *gotID != userID {
		t.Errorf("user id not propagated on context")
	}
}

func TestAuthMiddlewareRejects(t *testing.T) {
	expired := signToken(t, "test-secret", jwt.MapClaims{
		"user_id": uuid.New().String(),
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})
	wrongKey := signToken(t, "other-secret", jwt.MapClaims{
		"user_id": uuid.New().String(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	noUserID := signToken(t, "test-secret", jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	cases := map[string]string{
		"missing header":  "",
		"not bearer":      "Basic abc123",
		"malformed token": "Bearer not.a.jwt",
		"expired":         "Bearer " + expired,
		"wrong key":       "Bearer " + wrongKey,
		"no user id":      "Bearer " + noUserID,
	}
	for name, header := range cases {
		rec, gotID := runMiddleware(t, header)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s: expected 401, got %d", name, rec.Code)
		}
		if gotID != nil {
			t.Errorf("%s: handler must not run", name)
		}
	}
}
