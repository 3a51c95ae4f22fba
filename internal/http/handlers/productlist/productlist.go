// Package productlist содержит обработчик списка продуктов каталога.
package productlist

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/billennium/platform-api/internal/catalog"
)

// New
// @Summary Список продуктов каталога
// @Tags products
// @Produce json
// @Success 200 {array} models.Product "Продукты платформы"
// @Router /products [get]
func New(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, catalog.List())
	}
}
