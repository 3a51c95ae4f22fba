// Package adminmessageread содержит обработчик пометки сообщения прочитанным.
package adminmessageread

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

type Marker interface {
	MarkRead(ctx context.Context, id string) error
}

// New
// @Summary Пометка сообщения прочитанным
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param   message_id path string true "Идентификатор сообщения"
// @Success 200 {object} response.MessageResponse "Сообщение помечено прочитанным"
// @Failure 403 {object} response.ErrorResponse "Требуется роль администратора"
// @Failure 404 {object} response.ErrorResponse "Сообщение не найдено"
// @Router /admin/messages/{message_id}/read [put]
func New(log *slog.Logger, marker Marker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.adminmessageread.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		messageID := chi.URLParam(r, "message_id")

		if err := marker.MarkRead(r.Context(), messageID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("Mensaje no encontrado"))
				return
			}
			log.Error("failed to mark message as read", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to mark message as read"))
			return
		}

		log.Info("message marked as read", slog.String("message_id", messageID))
		render.JSON(w, r, response.Message("Mensaje marcado como leído"))
	}
}
