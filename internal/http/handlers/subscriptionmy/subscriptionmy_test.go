package subscriptionmy_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billennium/platform-api/internal/http/handlers/subscriptionmy"
	"github.com/billennium/platform-api/internal/http/middlewarectx"
	"github.com/billennium/platform-api/internal/models"
)

type mockLister struct {
	ListMineFunc func(ctx context.Context, userID string) ([]*models.Subscription, error)
}

func (m *mockLister) ListMine(ctx context.Context, userID string) ([]*models.Subscription, error) {
	return m.ListMineFunc(ctx, userID)
}

// discard logger
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

func makeLogger() *slog.Logger {
	return slog.New(discardHandler{})
}

func authedRequest(t *testing.T) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/subscriptions/my", nil)
	ctx := context.WithValue(req.Context(), middlewarectx.UserKey, &models.User{
		ID:    "uid-1",
		Email: "user@example.com",
		Name:  "User",
		Role:  models.RoleUser,
	})
	return req.WithContext(ctx)
}

func TestSubscriptionMyHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		lister := &mockLister{
			ListMineFunc: func(ctx context.Context, userID string) ([]*models.Subscription, error) {
				require.Equal(t, "uid-1", userID)
				return []*models.Subscription{
					{ID: "sub-1", UserID: userID, ProductID: "restoflow"},
					{ID: "sub-2", UserID: userID, ProductID: "lopdp"},
				}, nil
			},
		}

		w := httptest.NewRecorder()
		subscriptionmy.New(makeLogger(), lister).ServeHTTP(w, authedRequest(t))

		require.Equal(t, http.StatusOK, w.Code)

		var resp []models.Subscription
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp, 2)
		assert.Equal(t, "sub-1", resp[0].ID)
		assert.Equal(t, "sub-2", resp[1].ID)
	})

	t.Run("empty list renders as json array", func(t *testing.T) {
		lister := &mockLister{
			ListMineFunc: func(ctx context.Context, userID string) ([]*models.Subscription, error) {
				return []*models.Subscription{}, nil
			},
		}

		w := httptest.NewRecorder()
		subscriptionmy.New(makeLogger(), lister).ServeHTTP(w, authedRequest(t))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
	})

	t.Run("no user in context", func(t *testing.T) {
		lister := &mockLister{
			ListMineFunc: func(ctx context.Context, userID string) ([]*models.Subscription, error) {
				t.Fatal("service must not be called")
				return nil, nil
			},
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/subscriptions/my", nil)
		subscriptionmy.New(makeLogger(), lister).ServeHTTP(w, req)

		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"detail": "Token inválido"}`, w.Body.String())
	})

	t.Run("service error", func(t *testing.T) {
		lister := &mockLister{
			ListMineFunc: func(ctx context.Context, userID string) ([]*models.Subscription, error) {
				return nil, errors.New("db down")
			},
		}

		w := httptest.NewRecorder()
		subscriptionmy.New(makeLogger(), lister).ServeHTTP(w, authedRequest(t))

		require.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
