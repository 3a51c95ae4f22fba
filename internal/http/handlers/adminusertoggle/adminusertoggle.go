// Package adminusertoggle содержит обработчик блокировки/разблокировки
// пользователя администратором.
package adminusertoggle

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/billennium/platform-api/internal/http/response"
	"github.com/billennium/platform-api/internal/lib/sl"
	"github.com/billennium/platform-api/internal/storage"
)

type Toggler interface {
	ToggleActive(ctx context.Context, id string) (bool, error)
}

// New
// @Summary Инвертирование флага активности пользователя
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param   user_id path string true "Идентификатор пользователя"
// @Success 200 {object} response.MessageResponse "Пользователь активирован или деактивирован"
// @Failure 403 {object} response.ErrorResponse "Требуется роль администратора"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Router /admin/users/{user_id}/toggle-active [put]
func New(log *slog.Logger, toggler Toggler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.adminusertoggle.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		userID := chi.URLParam(r, "user_id")

		newState, err := toggler.ToggleActive(r.Context(), userID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("Usuario no encontrado"))
				return
			}
			log.Error("failed to toggle user", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to toggle user"))
			return
		}

		log.Info("user toggled", slog.String("user_id", userID), slog.Bool("is_active", newState))

		if newState {
			render.JSON(w, r, response.Message("Usuario activado correctamente"))
			return
		}
		render.JSON(w, r, response.Message("Usuario desactivado correctamente"))
	}
}
