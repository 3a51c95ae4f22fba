// Package adminsubscriptionlist содержит обработчик списка всех подписок
// для админ-консоли.
package adminsubscriptionlist

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
	ListAll(ctx context.Context) ([]*models.Subscription, error)
}

// New
// @Summary Все подписки платформы
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Subscription "Подписки всех пользователей"
// @Failure 403 {object} response.ErrorResponse "Требуется роль администратора"
// @Router /admin/subscriptions [get]
func New(log *slog.Logger, lister Lister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.adminsubscriptionlist.New"

		subs, err := lister.ListAll(r.Context())
		if err != nil {
			log.Error("failed to list subscriptions",
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
				sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list subscriptions"))
			return
		}

		render.JSON(w, r, subs)
	}
}
