// Package login содержит обработчик входа пользователя.
package login

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/billennium/platform-api/internal/http/response"
	"github.com/billennium/platform-api/internal/lib/sl"
	"github.com/billennium/platform-api/internal/models"
	"github.com/billennium/platform-api/internal/services/auth"
)

type Authorizer interface {
	Login(ctx context.Context, req models.LoginRequest) (string, *models.User, error)
}

// New
// @Summary Вход пользователя
// @Tags auth
// @Accept  json
// @Produce json
// @Param   loginRequest body models.LoginRequest true "Учетные данные (email, password)"
// @Success 200 {object} models.TokenResponse "Успешный вход, выдан токен"
// @Failure 401 {object} response.ErrorResponse "Неверные учетные данные или аккаунт отключен"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /auth/login [post]
func New(log *slog.Logger, authorizer Authorizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.login.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req models.LoginRequest

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

		token, user, err := authorizer.Login(r.Context(), req)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrInvalidCredentials):
				log.Info("invalid credentials", slog.String("email", req.Email))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("Credenciales inválidas"))
			case errors.Is(err, auth.ErrUserInactive):
				log.Info("inactive account", slog.String("email", req.Email))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("Usuario desactivado"))
			default:
				log.Error("failed to login", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to login"))
			}
			return
		}

		log.Info("user logged in", slog.String("email", user.Email))
		render.JSON(w, r, models.TokenResponse{
			AccessToken: token,
			TokenType:   "bearer",
			User:        *user,
		})
	}
}
