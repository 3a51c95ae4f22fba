package productread_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billennium/platform-api/internal/http/handlers/productread"
	"github.com/billennium/platform-api/internal/models"
)

// discard logger
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

func makeLogger() *slog.Logger {
	return slog.New(discardHandler{})
}

func serve(productID string) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	router.Get("/products/{product_id}", productread.New(makeLogger()))

	req := httptest.NewRequest(http.MethodGet, "/products/"+productID, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestProductReadHandler(t *testing.T) {
	t.Run("found by id", func(t *testing.T) {
		w := serve("restoflow")

		require.Equal(t, http.StatusOK, w.Code)

		var product models.Product
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &product))
		assert.Equal(t, "restoflow", product.ID)
	})

	t.Run("found by slug", func(t *testing.T) {
		w := serve("pedidos-sentinel")

		require.Equal(t, http.StatusOK, w.Code)

		var product models.Product
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &product))
		assert.Equal(t, "sentinel", product.ID)
	})

	t.Run("not found", func(t *testing.T) {
		w := serve("no-such-product")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Producto no encontrado")
	})
}
