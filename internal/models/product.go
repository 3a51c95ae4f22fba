package models

// Product — продукт каталога. Каталог статичен: он задаётся один раз
// при старте процесса и не хранится в базе.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Features    []string `json:"features"`
	Plans       []Plan   `json:"plans"`
}

// Plan — тарифный план продукта с зачёркнутой и актуальной ценой.
type Plan struct {
	Name        string   `json:"name"`
	PriceBefore int      `json:"price_before"`
	PriceNow    int      `json:"price_now"`
	Billing     string   `json:"billing"`
	Popular     bool     `json:"popular,omitempty"`
	Features    []string `json:"features"`
}

// AdminStats — агрегированные счётчики для админ-панели.
type AdminStats struct {
	TotalUsers           int `json:"total_users"`
	TotalSubscriptions   int `json:"total_subscriptions"`
	ActiveSubscriptions  int `json:"active_subscriptions"`
	PendingSubscriptions int `json:"pending_subscriptions"`
	TotalMessages        int `json:"total_messages"`
	UnreadMessages       int `json:"unread_messages"`
	TotalCompanies       int `json:"total_companies"`
}
