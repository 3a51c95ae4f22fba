// Package productread содержит обработчик чтения одного продукта каталога.
// Продукт ищется по id или по slug.
package productread

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/billennium/platform-api/internal/catalog"
	"github.com/billennium/platform-api/internal/http/response"
	"github.com/billennium/platform-api/internal/lib/sl"
)

// New
// @Summary Продукт каталога по id или slug
// @Tags products
// @Produce json
// @Param   product_id path string true "Идентификатор или slug продукта"
// @Success 200 {object} models.Product "Продукт"
// @Failure 404 {object} response.ErrorResponse "Продукт не найден"
// @Router /products/{product_id} [get]
func New(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.productread.New"

		productID := chi.URLParam(r, "product_id")

		product, err := catalog.Get(productID)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("Producto no encontrado"))
				return
			}
			log.Error("failed to read product", slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())), sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to read product"))
			return
		}

		render.JSON(w, r, product)
	}
}
