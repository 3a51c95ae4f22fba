// Package platformapi собирает приложение: хранилище, миграции, посев
// учетных записей, сервисы и HTTP-сервер.
package platformapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/billennium/platform-api/internal/config"
	customjwt "github.com/billennium/platform-api/internal/lib/jwt"
	"github.com/billennium/platform-api/internal/migrations"
	"github.com/billennium/platform-api/internal/seed"
	adminservice "github.com/billennium/platform-api/internal/services/admin"
	authservice "github.com/billennium/platform-api/internal/services/auth"
	companyservice "github.com/billennium/platform-api/internal/services/company"
	contactservice "github.com/billennium/platform-api/internal/services/contact"
	subscriptionservice "github.com/billennium/platform-api/internal/services/subscription"
	"github.com/billennium/platform-api/internal/storage"
)

type App struct {
	server *http.Server
	logger *slog.Logger
	db     *storage.Storage
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := storage.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, "./migrations"); err != nil {
		return nil, err
	}
	if err = storage.CheckDatabaseReady(db); err != nil {
		return nil, err
	}
	if err = seed.EnsureDefaults(ctx, logger, db); err != nil {
		return nil, err
	}

	jwtMaker := customjwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	authService := authservice.New(db, jwtMaker)
	subscriptionService := subscriptionservice.New(db)
	contactService := contactservice.New(db)
	companyService := companyservice.New(db)
	adminService := adminservice.New(db)

	router := chi.NewRouter()

	RegisterRoutes(router, logger, cfg.CORSAllowedOrigins, &Services{
		Auth:         authService,
		Subscription: subscriptionService,
		Contact:      contactService,
		Company:      companyService,
		Admin:        adminService,
	})

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.db.DB.Close()
		return err
	}
}
