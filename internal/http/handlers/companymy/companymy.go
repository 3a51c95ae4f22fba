// Package companymy содержит обработчик списка компаний текущего пользователя.
package companymy

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
	ListMine(ctx context.Context, ownerID string) ([]*models.Company, error)
}

// New
// @Summary Компании текущего пользователя
// @Tags companies
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Company "Компании пользователя"
// @Failure 401 {object} response.ErrorResponse "Токен отсутствует или недействителен"
// @Router /companies/my [get]
func New(log *slog.Logger, lister Lister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.companymy.New"

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

		companies, err := lister.ListMine(r.Context(), user.ID)
		if err != nil {
			log.Error("failed to list companies", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list companies"))
			return
		}

		render.JSON(w, r, companies)
	}
}
