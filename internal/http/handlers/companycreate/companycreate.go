// Package companycreate содержит обработчик регистрации компании пользователем.
package companycreate

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/billennium/platform-api/internal/http/middlewarectx"
	"github.com/billennium/platform-api/internal/http/response"
	"github.com/billennium/platform-api/internal/lib/sl"
	"github.com/billennium/platform-api/internal/models"
)

type Creater interface {
	Create(ctx context.Context, owner *models.User, req models.CompanyCreateRequest) (*models.Company, error)
}

// New
// @Summary Регистрация компании текущего пользователя
// @Tags companies
// @Security BearerAuth
// @Accept  json
// @Produce json
// @Param   companyRequest body models.CompanyCreateRequest true "Данные компании"
// @Success 200 {object} models.Company "Созданная компания"
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 401 {object} response.ErrorResponse "Токен отсутствует или недействителен"
// @Router /companies [post]
func New(log *slog.Logger, creater Creater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.companycreate.New"

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

		var req models.CompanyCreateRequest

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

		company, err := creater.Create(r.Context(), user, req)
		if err != nil {
			log.Error("failed to create company", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create company"))
			return
		}

		log.Info("created company", slog.String("company_id", company.ID))
		render.JSON(w, r, company)
	}
}
