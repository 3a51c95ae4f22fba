// Package admincompanyupdate содержит обработчик частичного обновления
// компании администратором.
package admincompanyupdate

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
	"github.com/billennium/platform-api/internal/models"
	"github.com/billennium/platform-api/internal/storage"
)

type Updater interface {
	AdminUpdate(ctx context.Context, id string, req models.CompanyUpdateRequest) error
}

// New
// @Summary Частичное обновление компании администратором
// @Tags admin
// @Security BearerAuth
// @Accept  json
// @Produce json
// @Param   company_id path string true "Идентификатор компании"
// @Param   updateRequest body models.CompanyUpdateRequest true "Изменяемые поля (nil-поля не трогаются)"
// @Success 200 {object} response.MessageResponse "Компания обновлена"
// @Failure 403 {object} response.ErrorResponse "Требуется роль администратора"
// @Failure 404 {object} response.ErrorResponse "Компания не найдена"
// @Router /admin/companies/{company_id} [put]
func New(log *slog.Logger, updater Updater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admincompanyupdate.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		companyID := chi.URLParam(r, "company_id")

		var req models.CompanyUpdateRequest
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err := updater.AdminUpdate(r.Context(), companyID, req); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("Empresa no encontrada"))
				return
			}
			log.Error("failed to update company", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update company"))
			return
		}

		log.Info("company updated", slog.String("company_id", companyID))
		render.JSON(w, r, response.Message("Empresa actualizada correctamente"))
	}
}
