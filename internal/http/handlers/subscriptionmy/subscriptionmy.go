// Package subscriptionmy содержит обработчик списка подписок текущего пользователя.
package subscriptionmy

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/billennium/platform-api/internal/http/middlewarectx"
	"github.com/billennium/platform-api/internal/http/response"
	"github.com/billennium/platform-api/internal/lib/sl"
	"github.com/billennium/platform-api/internal/models"
)

type Lister interface {
	ListMine(ctx context.Context, userID string) ([]*models.Subscription, error)
}

// New
// @Summary Подписки текущего пользователя
// @Tags subscriptions
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Subscription "Подписки пользователя"
// @Failure 401 {object} response.ErrorResponse "Токен отсутствует или недействителен"
// @Router /subscriptions/my [get]
func New(log *slog.Logger, lister Lister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.subscriptionmy.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		user, ok := middlewarectx.UserFromContext(r.Context())
		if !ok {
			log.Error("user missing from context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("Token inválido"))
			return
		}

		subs, err := lister.ListMine(r.Context(), user.ID)
		if err != nil {
			log.Error("failed to list subscriptions", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list subscriptions"))
			return
		}

		render.JSON(w, r, subs)
	}
}
