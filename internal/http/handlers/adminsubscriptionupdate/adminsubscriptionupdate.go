// Package adminsubscriptionupdate содержит обработчик административного
// включения/выключения подписки.
package adminsubscriptionupdate

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/billennium/platform-api/internal/http/middlewarectx"
	"github.com/billennium/platform-api/internal/http/response"
	"github.com/billennium/platform-api/internal/lib/sl"
	"github.com/billennium/platform-api/internal/models"
	"github.com/billennium/platform-api/internal/storage"
)

type Updater interface {
	AdminUpdate(ctx context.Context, admin *models.User, id string, req models.SubscriptionUpdateRequest) error
}

// New
// @Summary Включение или выключение подписки администратором
// @Tags admin
// @Security BearerAuth
// @Accept  json
// @Produce json
// @Param   subscription_id path string true "Идентификатор подписки"
// @Param   updateRequest body models.SubscriptionUpdateRequest true "Флаг is_enabled и опциональный статус"
// @Success 200 {object} response.MessageResponse "Подписка обновлена"
// @Failure 403 {object} response.ErrorResponse "Требуется роль администратора"
// @Failure 404 {object} response.ErrorResponse "Подписка не найдена"
// @Router /admin/subscriptions/{subscription_id} [put]
func New(log *slog.Logger, updater Updater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.adminsubscriptionupdate.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		admin, ok := middlewarectx.UserFromContext(r.Context())
		if !ok {
			log.Error("user missing from context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("Token inválido"))
			return
		}

		subscriptionID := chi.URLParam(r, "subscription_id")

		var req models.SubscriptionUpdateRequest
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err := updater.AdminUpdate(r.Context(), admin, subscriptionID, req); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("Suscripción no encontrada"))
				return
			}
			log.Error("failed to update subscription", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update subscription"))
			return
		}

		log.Info("subscription updated",
			slog.String("subscription_id", subscriptionID),
			slog.Bool("is_enabled", req.IsEnabled))
		render.JSON(w, r, response.Message("Suscripción actualizada correctamente"))
	}
}
