// Package models содержит доменные структуры платформы: пользователей,
// подписки, лиды с формы обратной связи, компании и продукты каталога.
// Структуры используются в бизнес‑логике, при работе с хранилищем и
// при сериализации HTTP-ответов.
package models

import "time"

// Роли пользователей системы.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User представляет зарегистрированного пользователя системы.
// PasswordHash никогда не сериализуется в ответы.
type User struct {
	ID           string    `json:"id"`           // Уникальный идентификатор (uuid)
	Email        string    `json:"email"`        // Электронная почта (уникальная)
	Name         string    `json:"name"`         // Отображаемое имя
	CompanyName  *string   `json:"company_name"` // Название компании (опционально)
	Phone        *string   `json:"phone"`        // Телефон (опционально)
	Role         string    `json:"role"`         // Роль: admin или user
	IsActive     bool      `json:"is_active"`    // Флаг активности учетной записи
	PasswordHash string    `json:"-"`            // bcrypt-хэш пароля
	CreatedAt    time.Time `json:"created_at"`   // Дата создания
}

// RegisterRequest используется для приёма данных регистрации из JSON-запроса.
type RegisterRequest struct {
	Email       string  `json:"email" validate:"required,email"`
	Name        string  `json:"name" validate:"required"`
	Password    string  `json:"password" validate:"required,min=6"`
	CompanyName *string `json:"company_name"`
	Phone       *string `json:"phone"`
}

// LoginRequest используется для приёма учетных данных при входе.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse — ответ на успешную регистрацию или вход.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}
