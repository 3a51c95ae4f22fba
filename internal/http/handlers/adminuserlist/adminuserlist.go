// Package adminuserlist содержит обработчик списка всех пользователей
// для админ-консоли.
package adminuserlist

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
	ListUsers(ctx context.Context) ([]*models.User, error)
}

// New
// @Summary Все пользователи платформы
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.User "Пользователи без хэшей паролей"
// @Failure 403 {object} response.ErrorResponse "Требуется роль администратора"
// @Router /admin/users [get]
func New(log *slog.Logger, lister Lister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.adminuserlist.New"

		users, err := lister.ListUsers(r.Context())
		if err != nil {
			log.Error("failed to list users",
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
				sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list users"))
			return
		}

		render.JSON(w, r, users)
	}
}
