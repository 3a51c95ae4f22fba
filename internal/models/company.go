package models

import "time"

// Company представляет компанию, принадлежащую пользователю (owner_id).
// Обновляется только администратором, частично: применяются лишь
// непустые поля из CompanyUpdateRequest.
type Company struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	RUC             *string   `json:"ruc"` // Налоговый идентификатор
	Email           string    `json:"email"`
	Phone           *string   `json:"phone"`
	Address         *string   `json:"address"`
	OwnerID         string    `json:"owner_id"`
	EnabledProducts []string  `json:"enabled_products"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}

// CompanyCreateRequest используется для приёма данных новой компании.
type CompanyCreateRequest struct {
	Name    string  `json:"name" validate:"required"`
	RUC     *string `json:"ruc"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// CompanyUpdateRequest — частичное обновление компании администратором.
// nil-поля не трогаются.
type CompanyUpdateRequest struct {
	Name            *string  `json:"name"`
	RUC             *string  `json:"ruc"`
	Email           *string  `json:"email"`
	Phone           *string  `json:"phone"`
	Address         *string  `json:"address"`
	EnabledProducts []string `json:"enabled_products"`
	IsActive        *bool    `json:"is_active"`
}
