// Package admincompanylist содержит обработчик списка всех компаний
// для админ-консоли.
package admincompanylist

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/billennium/platform-api/internal/http/response"
	"github.com/billennium/platform-api/internal/lib/sl"
	"github.com/billennium/platform-api/internal/models"
)

type Lister interface {
	ListAll(ctx context.Context) ([]*models.Company, error)
}

// New
// @Summary Все компании платформы
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Company "Компании всех пользователей"
// @Failure 403 {object} response.ErrorResponse "Требуется роль администратора"
// @Router /admin/companies [get]
func New(log *slog.Logger, lister Lister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admincompanylist.New"

		companies, err := lister.ListAll(r.Context())
		if err != nil {
			log.Error("failed to list companies",
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
				sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list companies"))
			return
		}

		render.JSON(w, r, companies)
	}
}
