package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	pkgAuth "github.com/carnamarket/backend/pkg/auth"
	"github.com/carnamarket/backend/pkg/config"
	"github.com/carnamarket/backend/pkg/types"
)

func authTestConfig() config.JWTConfig {
	return config.JWTConfig{Secret: "test-secret", Issuer: "carnamarket", ExpirationDays: 7}
}

func runAuth(t *testing.T, header string) (*httptest.ResponseRecorder, uuid.UUID) {
	t.Helper()

	var seen uuid.UUID
	handler := Auth(authTestConfig(), nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest("GET", "/api/auth/me", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec, seen
}

func TestAuthAcceptsValidBearer(t *testing.T) {
	userID := uuid.New()
	token, err := pkgAuth.MintAccessToken(authTestConfig(), time.Now(), userID)
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	rec, seen := runAuth(t, "Bearer "+token)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", rec.Code, rec.Body.String())
	}
	if seen != userID {
		t.Fatal("user id not propagated to context")
	}
}

func TestAuthRejectsMissingHeader(t *testing.T) {
	rec, _ := runAuth(t, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	var envelope types.ErrorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if envelope.Success {
		t.Fatal("error envelope must have success=false")
	}
	if envelope.Error.Message != "Authentication required" {
		t.Fatalf("unexpected message %q", envelope.Error.Message)
	}
}

func TestAuthRejectsGarbageToken(t *testing.T) {
	rec, _ := runAuth(t, "Bearer not.a.jwt")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthDistinguishesExpiredToken(t *testing.T) {
	cfg := authTestConfig()
	token, err := pkgAuth.MintAccessToken(cfg, time.Now().Add(-8*24*time.Hour), uuid.New())
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	rec, _ := runAuth(t, "Bearer "+token)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	var envelope types.ErrorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if envelope.Error.Message != "Token expired" {
		t.Fatalf("expected expiry message, got %q", envelope.Error.Message)
	}
}
