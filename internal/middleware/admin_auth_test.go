package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/avictorin/photos-ms-go/internal/api_context"
)

const testSecret = "test-secret"

func signClaims(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestWithAdminAuth(t *testing.T) {
	mw := WithAdminAuth(testSecret)

	baseClaims := jwt.MapClaims{
		"sub": "admin-123",
		"exp": time.Now().Add(time.Minute).Unix(),
		"iat": time.Now().Unix(),
	}

	tests := []struct {
		name           string
		authHeader     func(t *testing.T) string
		wantStatus     int
		expectNextCall bool
	}{
		{
			name:       "missing header",
			authHeader: func(t *testing.T) string { return "" },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong prefix",
			authHeader: func(t *testing.T) string { return "Token abc" },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "bad signature",
			authHeader: func(t *testing.T) string {
				return "Bearer " + signClaims(t, baseClaims, "other-secret")
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "expired",
			authHeader: func(t *testing.T) string {
				c := jwt.MapClaims{"sub": "admin-123", "exp": time.Now().Add(-time.Minute).Unix()}
				return "Bearer " + signClaims(t, c, testSecret)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "missing sub",
			authHeader: func(t *testing.T) string {
				c := jwt.MapClaims{"exp": time.Now().Add(time.Minute).Unix()}
				return "Bearer " + signClaims(t, c, testSecret)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "valid token",
			authHeader: func(t *testing.T) string {
				return "Bearer " + signClaims(t, baseClaims, testSecret)
			},
			wantStatus:     http.StatusNoContent,
			expectNextCall: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				if sub, ok := api_context.AuthSubjectFromContext(r.Context()); ok {
					w.Header().Set("X-Subject", sub)
				}
				w.WriteHeader(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodPost, "/", nil)
			if h := tc.authHeader(t); h != "" {
				req.Header.Set("Authorization", h)
			}

			rec := httptest.NewRecorder()
			mw(next).ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d; want %d", rec.Code, tc.wantStatus)
			}
			if nextCalled != tc.expectNextCall {
				t.Fatalf("nextCalled = %v; want %v", nextCalled, tc.expectNextCall)
			}
			if tc.expectNextCall {
				if got := rec.Header().Get("X-Subject"); got != "admin-123" {
					t.Fatalf("subject = %q; want %q", got, "admin-123")
				}
			}
		})
	}
}

func TestWithAdminAuth_Passthrough(t *testing.T) {
	mw := WithAdminAuth("")

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	mw(next).ServeHTTP(rec, req)

	if !nextCalled {
		t.Fatal("middleware must pass through when no secret is configured")
	}
}
