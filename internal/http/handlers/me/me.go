// Package me содержит обработчик, возвращающий профиль текущего пользователя.
package me

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/billennium/platform-api/internal/http/middlewarectx"
	"github.com/billennium/platform-api/internal/http/response"
)

// New
// @Summary Профиль текущего пользователя
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.User "Профиль пользователя"
// @Failure 401 {object} response.ErrorResponse "Токен отсутствует или недействителен"
// @Router /auth/me [get]
func New(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.me.New"

		user, ok := middlewarectx.UserFromContext(r.Context())
		if !ok {
			log.Error("user missing from context",
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())))
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("Token inválido"))
			return
		}

		render.JSON(w, r, user)
	}
}
