// Package adminmessagelist содержит обработчик списка сообщений формы
// обратной связи для админ-консоли.
package adminmessagelist

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
	ListAll(ctx context.Context) ([]*models.ContactMessage, error)
}

// New
// @Summary Сообщения формы обратной связи, новые первыми
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.ContactMessage "Сообщения"
// @Failure 403 {object} response.ErrorResponse "Требуется роль администратора"
// @Router /admin/messages [get]
func New(log *slog.Logger, lister Lister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.adminmessagelist.New"

		msgs, err := lister.ListAll(r.Context())
		if err != nil {
			log.Error("failed to list contact messages",
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
				sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list contact messages"))
			return
		}

		render.JSON(w, r, msgs)
	}
}
