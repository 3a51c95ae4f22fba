package models

import "time"

// Статусы подписки. Статус cancelled присутствует в модели данных,
// но ни один обработчик его не выставляет.
const (
	SubscriptionStatusPending   = "pending"
	SubscriptionStatusActive    = "active"
	SubscriptionStatusSuspended = "suspended"
	SubscriptionStatusCancelled = "cancelled"
)

// Subscription представляет заявку пользователя на подключение продукта.
// Поля user_email, user_name, company_name и product_name — снимки данных
// на момент создания, они не обновляются при изменении профиля.
type Subscription struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	UserEmail    string     `json:"user_email"`
	UserName     string     `json:"user_name"`
	CompanyName  *string    `json:"company_name"`
	ProductID    string     `json:"product_id"`
	ProductName  string     `json:"product_name"`
	PlanName     string     `json:"plan_name"`
	BillingCycle string     `json:"billing_cycle"`
	IsEnabled    bool       `json:"is_enabled"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	EnabledAt    *time.Time `json:"enabled_at"`
	EnabledBy    *string    `json:"enabled_by"` // Email администратора, включившего подписку
}

// SubscriptionCreateRequest используется для приёма данных новой подписки.
type SubscriptionCreateRequest struct {
	ProductID    string `json:"product_id" validate:"required"`
	PlanName     string `json:"plan_name" validate:"required"`
	BillingCycle string `json:"billing_cycle"`
}

// SubscriptionUpdateRequest — административное включение/выключение подписки.
// Status учитывается только при выключении; при nil используется suspended.
type SubscriptionUpdateRequest struct {
	IsEnabled bool    `json:"is_enabled"`
	Status    *string `json:"status"`
}
