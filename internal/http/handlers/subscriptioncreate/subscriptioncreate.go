// Package subscriptioncreate содержит обработчик оформления заявки
// на подключение продукта.
package subscriptioncreate

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/billennium/platform-api/internal/http/middlewarectx"
	"github.com/billennium/platform-api/internal/http/response"
	"github.com/billennium/platform-api/internal/lib/sl"
	"github.com/billennium/platform-api/internal/models"
	"github.com/billennium/platform-api/internal/services/subscription"
)

type Creater interface {
	Create(ctx context.Context, user *models.User, req models.SubscriptionCreateRequest) (*models.Subscription, error)
}

// New
// @Summary Оформление заявки на подключение продукта
// @Tags subscriptions
// @Security BearerAuth
// @Accept  json
// @Produce json
// @Param   subscriptionRequest body models.SubscriptionCreateRequest true "Заявка (product_id, plan_name, billing_cycle)"
// @Success 200 {object} models.Subscription "Созданная подписка"
// @Failure 400 {object} response.ErrorResponse "Повторная заявка или ошибка валидации"
// @Failure 404 {object} response.ErrorResponse "Продукт не найден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /subscriptions [post]
func New(log *slog.Logger, creater Creater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.subscriptioncreate.New"

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

		var req models.SubscriptionCreateRequest

		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err := validator.New().Struct(req); err != nil {
			validateErr := err.(validator.ValidationErrors)
			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		sub, err := creater.Create(r.Context(), user, req)
		if err != nil {
			switch {
			case errors.Is(err, subscription.ErrProductNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("Producto no encontrado"))
			case errors.Is(err, subscription.ErrAlreadySubscribed):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("Ya tienes una suscripción activa a este producto"))
			default:
				log.Error("failed to create subscription", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to create subscription"))
			}
			return
		}

		log.Info("created new subscription",
			slog.String("subscription_id", sub.ID),
			slog.String("product_id", sub.ProductID))
		render.JSON(w, r, sub)
	}
}
