// Package platformapi предоставляет маршруты приложения.
package platformapi

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/billennium/platform-api/internal/http/handlers/admincompanylist"
	"github.com/billennium/platform-api/internal/http/handlers/admincompanyupdate"
	"github.com/billennium/platform-api/internal/http/handlers/adminmessagelist"
	"github.com/billennium/platform-api/internal/http/handlers/adminmessageread"
	"github.com/billennium/platform-api/internal/http/handlers/adminstats"
	"github.com/billennium/platform-api/internal/http/handlers/adminsubscriptionlist"
	"github.com/billennium/platform-api/internal/http/handlers/adminsubscriptionupdate"
	"github.com/billennium/platform-api/internal/http/handlers/adminuserlist"
	"github.com/billennium/platform-api/internal/http/handlers/adminusertoggle"
	"github.com/billennium/platform-api/internal/http/handlers/companycreate"
	"github.com/billennium/platform-api/internal/http/handlers/companymy"
	"github.com/billennium/platform-api/internal/http/handlers/contactcreate"
	"github.com/billennium/platform-api/internal/http/handlers/login"
	"github.com/billennium/platform-api/internal/http/handlers/me"
	"github.com/billennium/platform-api/internal/http/handlers/productlist"
	"github.com/billennium/platform-api/internal/http/handlers/productread"
	"github.com/billennium/platform-api/internal/http/handlers/register"
	"github.com/billennium/platform-api/internal/http/handlers/root"
	"github.com/billennium/platform-api/internal/http/handlers/subscriptioncreate"
	"github.com/billennium/platform-api/internal/http/handlers/subscriptionmy"
	"github.com/billennium/platform-api/internal/http/middlewarectx"
	adminservice "github.com/billennium/platform-api/internal/services/admin"
	authservice "github.com/billennium/platform-api/internal/services/auth"
	companyservice "github.com/billennium/platform-api/internal/services/company"
	contactservice "github.com/billennium/platform-api/internal/services/contact"
	subscriptionservice "github.com/billennium/platform-api/internal/services/subscription"
)

// Services объединяет сервисы, нужные маршрутам.
type Services struct {
	Auth         *authservice.Service
	Subscription *subscriptionservice.Service
	Contact      *contactservice.Service
	Company      *companyservice.Service
	Admin        *adminservice.Service
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, allowedOrigins []string, services *Services) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		// Открытые конечные точки
		r.Get("/", root.New().ServeHTTP)
		r.Post("/auth/register", register.New(logger, services.Auth).ServeHTTP)
		r.Post("/auth/login", login.New(logger, services.Auth).ServeHTTP)
		r.Get("/products", productlist.New(logger).ServeHTTP)
		r.Get("/products/{product_id}", productread.New(logger).ServeHTTP)
		r.Post("/contact", contactcreate.New(logger, services.Contact).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(services.Auth, logger))

			r.Get("/auth/me", me.New(logger).ServeHTTP)
			r.Post("/subscriptions", subscriptioncreate.New(logger, services.Subscription).ServeHTTP)
			r.Get("/subscriptions/my", subscriptionmy.New(logger, services.Subscription).ServeHTTP)
			r.Post("/companies", companycreate.New(logger, services.Company).ServeHTTP)
			r.Get("/companies/my", companymy.New(logger, services.Company).ServeHTTP)

			// Админ-консоль
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.AdminOnly(logger))

				r.Get("/admin/subscriptions", adminsubscriptionlist.New(logger, services.Subscription).ServeHTTP)
				r.Put("/admin/subscriptions/{subscription_id}", adminsubscriptionupdate.New(logger, services.Subscription).ServeHTTP)
				r.Get("/admin/messages", adminmessagelist.New(logger, services.Contact).ServeHTTP)
				r.Put("/admin/messages/{message_id}/read", adminmessageread.New(logger, services.Contact).ServeHTTP)
				r.Get("/admin/companies", admincompanylist.New(logger, services.Company).ServeHTTP)
				r.Put("/admin/companies/{company_id}", admincompanyupdate.New(logger, services.Company).ServeHTTP)
				r.Get("/admin/users", adminuserlist.New(logger, services.Admin).ServeHTTP)
				r.Put("/admin/users/{user_id}/toggle-active", adminusertoggle.New(logger, services.Admin).ServeHTTP)
				r.Get("/admin/stats", adminstats.New(logger, services.Admin).ServeHTTP)
			})
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
