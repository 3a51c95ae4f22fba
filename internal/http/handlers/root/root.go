// Package root содержит обработчик корневого эндпоинта API.
package root

import (
	"net/http"

	"github.com/go-chi/render"
)

// StatusResponse — ответ корневого эндпоинта.
type StatusResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// New
// @Summary Статус API
// @Tags status
// @Produce json
// @Success 200 {object} root.StatusResponse "Версия и состояние сервиса"
// @Router / [get]
func New() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, StatusResponse{
			Message: "Billennium System API v1.0",
			Status:  "running",
		})
	}
}
