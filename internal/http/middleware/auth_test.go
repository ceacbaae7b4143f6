package middleware

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/giladbarnea/assetvista-core/internal/security"
)

type stubAuth struct {
	verifyFn func(ctx context.Context, token string) (bool, error)
}

func (s *stubAuth) Login(context.Context, string) (string, time.Time, error) {
	return "", time.Time{}, errors.New("not implemented")
}
func (s *stubAuth) Logout(context.Context, string) error { return errors.New("not implemented") }
func (s *stubAuth) Verify(ctx context.Context, token string) (bool, error) {
	return s.verifyFn(ctx, token)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRequireSession(t *testing.T) {
	cases := []struct {
		name       string
		cookie     string
		verifyFn   func(ctx context.Context, token string) (bool, error)
		wantStatus int
		wantNext   bool
	}{
		{
			name:   "valid session",
			cookie: "tok-1",
			verifyFn: func(_ context.Context, token string) (bool, error) {
				if token != "tok-1" {
					return false, nil
				}
				return true, nil
			},
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:       "missing cookie",
			verifyFn:   func(_ context.Context, token string) (bool, error) { return token != "", nil },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid session",
			cookie:     "tok-bad",
			verifyFn:   func(context.Context, string) (bool, error) { return false, nil },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "store failure denies",
			cookie: "tok-1",
			verifyFn: func(context.Context, string) (bool, error) {
				return false, errors.New("redis unavailable")
			},
			wantStatus: http.StatusUnauthorized,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})
			mw := RequireSession(&stubAuth{verifyFn: tc.verifyFn}, discardLogger())

			req := httptest.NewRequest(http.MethodGet, "/api/assets", nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: security.SessionCookieName, Value: tc.cookie})
			}
			rec := httptest.NewRecorder()
			mw(next).ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status=%d want %d", rec.Code, tc.wantStatus)
			}
			if nextCalled != tc.wantNext {
				t.Fatalf("next called=%v want %v", nextCalled, tc.wantNext)
			}
		})
	}
}
