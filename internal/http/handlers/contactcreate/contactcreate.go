// Package contactcreate содержит обработчик публичной формы обратной связи.
package contactcreate

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/billennium/platform-api/internal/http/response"
	"github.com/billennium/platform-api/internal/lib/sl"
	"github.com/billennium/platform-api/internal/models"
)

type Creater interface {
	Create(ctx context.Context, req models.ContactMessageCreateRequest) (*models.ContactMessage, error)
}

// New
// @Summary Отправка сообщения через форму обратной связи
// @Tags contact
// @Accept  json
// @Produce json
// @Param   contactRequest body models.ContactMessageCreateRequest true "Данные лида"
// @Success 200 {object} models.ContactMessage "Сохранённое сообщение"
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /contact [post]
func New(log *slog.Logger, creater Creater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.contactcreate.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req models.ContactMessageCreateRequest

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

		msg, err := creater.Create(r.Context(), req)
		if err != nil {
			log.Error("failed to create contact message", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create contact message"))
			return
		}

		log.Info("created contact message", slog.String("message_id", msg.ID))
		render.JSON(w, r, msg)
	}
}
