package middlewarectx_test

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billennium/platform-api/internal/http/middlewarectx"
	customjwt "github.com/billennium/platform-api/internal/lib/jwt"
	"github.com/billennium/platform-api/internal/models"
	"github.com/billennium/platform-api/internal/services/auth"
)

type mockAuthenticator struct {
	AuthenticateFunc func(ctx context.Context, token string) (*models.User, error)
}

func (m *mockAuthenticator) Authenticate(ctx context.Context, token string) (*models.User, error) {
	return m.AuthenticateFunc(ctx, token)
}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

func makeLogger() *slog.Logger {
	return slog.New(discardHandler{})
}

func TestJWTMiddleware(t *testing.T) {
	user := &models.User{ID: "uid-1", Email: "user@example.com", Role: models.RoleUser}

	t.Run("success puts user into context", func(t *testing.T) {
		authService := &mockAuthenticator{
			AuthenticateFunc: func(ctx context.Context, token string) (*models.User, error) {
				require.Equal(t, "valid-token", token)
				return user, nil
			},
		}

		nextCalled := false
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nextCalled = true
			got, ok := middlewarectx.UserFromContext(r.Context())
			require.True(t, ok)
			assert.Equal(t, user, got)
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer valid-token")
		w := httptest.NewRecorder()

		middlewarectx.JWTMiddleware(authService, makeLogger())(next).ServeHTTP(w, req)

		assert.True(t, nextCalled)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing authorization header", func(t *testing.T) {
		authService := &mockAuthenticator{
			AuthenticateFunc: func(ctx context.Context, token string) (*models.User, error) {
				t.Fatal("Authenticate should not be called")
				return nil, nil
			},
		}

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("next handler should not be called")
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()

		middlewarectx.JWTMiddleware(authService, makeLogger())(next).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Token inválido")
	})

	t.Run("expired token", func(t *testing.T) {
		authService := &mockAuthenticator{
			AuthenticateFunc: func(ctx context.Context, token string) (*models.User, error) {
				return nil, fmt.Errorf("%w: %w", auth.ErrUnauthorized, customjwt.ErrExpiredToken)
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer expired-token")
		w := httptest.NewRecorder()

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("next handler should not be called")
		})
		middlewarectx.JWTMiddleware(authService, makeLogger())(next).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Token expirado")
	})

	t.Run("vanished user", func(t *testing.T) {
		authService := &mockAuthenticator{
			AuthenticateFunc: func(ctx context.Context, token string) (*models.User, error) {
				return nil, auth.ErrUnauthorized
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer orphan-token")
		w := httptest.NewRecorder()

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("next handler should not be called")
		})
		middlewarectx.JWTMiddleware(authService, makeLogger())(next).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Usuario no encontrado")
	})
}

func TestAdminOnly(t *testing.T) {
	withUser := func(req *http.Request, user *models.User) *http.Request {
		ctx := context.WithValue(req.Context(), middlewarectx.UserKey, user)
		return req.WithContext(ctx)
	}

	t.Run("admin passes", func(t *testing.T) {
		nextCalled := false
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nextCalled = true
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = withUser(req, &models.User{ID: "uid-1", Role: models.RoleAdmin})
		w := httptest.NewRecorder()

		middlewarectx.AdminOnly(makeLogger())(next).ServeHTTP(w, req)

		assert.True(t, nextCalled)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("ordinary user is rejected", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("next handler should not be called")
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = withUser(req, &models.User{ID: "uid-1", Role: models.RoleUser})
		w := httptest.NewRecorder()

		middlewarectx.AdminOnly(makeLogger())(next).ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "Acceso denegado")
	})

	t.Run("no user in context", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("next handler should not be called")
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()

		middlewarectx.AdminOnly(makeLogger())(next).ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
