package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ekivenapictured-ship-it/venaok/internal/domain"
	"github.com/ekivenapictured-ship-it/venaok/internal/server/authctx"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return tok
}

func TestAuthMiddlewareSetsCurrentUser(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"sub":        "42",
		"email":      "admin@studio.test",
		"role":       "admin",
		"token_type": "access",
		"exp":        time.Now().Add(time.Hour).Unix(),
	})

	var got *authctx.CurrentUser
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = authctx.FromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/clients", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	AuthMiddleware(testSecret)(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got == nil {
		t.Fatal("current user not set")
	}
	if got.ID != 42 || got.Email != "admin@studio.test" || got.Role != domain.RoleAdmin {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestAuthMiddlewareRejectsRefreshToken(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"sub":        "42",
		"token_type": "refresh",
		"exp":        time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/clients", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	called := false
	AuthMiddleware(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if called {
		t.Fatal("next handler should not run")
	}
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/clients", nil)
	rec := httptest.NewRecorder()

	AuthMiddleware(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not run")
	})).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestRequireRole(t *testing.T) {
	handler := RequireRole(domain.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	adminCtx := authctx.WithCurrentUser(httptest.NewRequest(http.MethodGet, "/reports/clients/summary", nil).Context(),
		authctx.CurrentUser{ID: 1, Role: domain.RoleAdmin})
	req := httptest.NewRequest(http.MethodGet, "/reports/clients/summary", nil).WithContext(adminCtx)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("admin status = %d, want 204", rec.Code)
	}

	memberCtx := authctx.WithCurrentUser(httptest.NewRequest(http.MethodGet, "/reports/clients/summary", nil).Context(),
		authctx.CurrentUser{ID: 2, Role: domain.RoleMember})
	req = httptest.NewRequest(http.MethodGet, "/reports/clients/summary", nil).WithContext(memberCtx)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("member status = %d, want 403", rec.Code)
	}
}
