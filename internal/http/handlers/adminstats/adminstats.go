// Package adminstats содержит обработчик сводной статистики платформы.
package adminstats

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

type StatsProvider interface {
	Stats(ctx context.Context) (*models.AdminStats, error)
}

// New
// @Summary Сводные счётчики платформы
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.AdminStats "Счётчики пользователей, подписок, сообщений и компаний"
// @Failure 403 {object} response.ErrorResponse "Требуется роль администратора"
// @Router /admin/stats [get]
func New(log *slog.Logger, provider StatsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.adminstats.New"

		stats, err := provider.Stats(r.Context())
		if err != nil {
			log.Error("failed to collect stats",
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
				sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to collect stats"))
			return
		}

		render.JSON(w, r, stats)
	}
}
