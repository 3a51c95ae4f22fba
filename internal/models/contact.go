package models

import "time"

// ContactMessage представляет лид, оставленный через форму обратной связи.
// Сообщения никогда не удаляются, админ лишь помечает их прочитанными.
type ContactMessage struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           *string   `json:"phone"`
	Company         *string   `json:"company"`
	Message         string    `json:"message"`
	ProductInterest *string   `json:"product_interest"`
	IsRead          bool      `json:"is_read"`
	CreatedAt       time.Time `json:"created_at"`
}

// ContactMessageCreateRequest используется для приёма анонимной заявки.
type ContactMessageCreateRequest struct {
	Name            string  `json:"name" validate:"required"`
	Email           string  `json:"email" validate:"required,email"`
	Phone           *string `json:"phone"`
	Company         *string `json:"company"`
	Message         string  `json:"message" validate:"required"`
	ProductInterest *string `json:"product_interest"`
}
