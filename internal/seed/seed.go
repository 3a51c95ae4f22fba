// Package seed создает учетные записи по умолчанию при старте приложения.
// Операция идемпотентна: существующие аккаунты не пересоздаются.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/billennium/platform-api/internal/lib/password"
	"github.com/billennium/platform-api/internal/models"
	"github.com/billennium/platform-api/internal/storage"
)

// UserRepository описывает операции хранилища, нужные для посева.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

type defaultAccount struct {
	email    string
	name     string
	password string
	role     string
}

var defaultAccounts = []defaultAccount{
	{
		email:    "admin@billennium.com",
		name:     "Administrador",
		password: "Admin2024!",
		role:     models.RoleAdmin,
	},
	{
		email:    "kerly@hotmail.com",
		name:     "Kerly Usuario",
		password: "kerly2026",
		role:     models.RoleUser,
	},
}

// EnsureDefaults создает стандартные учетные записи, если их еще нет.
func EnsureDefaults(ctx context.Context, log *slog.Logger, repo UserRepository) error {
	const op = "seed.EnsureDefaults"

	for _, acc := range defaultAccounts {
		_, err := repo.GetUserByEmail(ctx, acc.email)
		if err == nil {
			continue
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, err)
		}

		hash, err := password.GetHash(acc.password)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		user := models.User{
			ID:           uuid.NewString(),
			Email:        acc.email,
			Name:         acc.name,
			Role:         acc.role,
			IsActive:     true,
			PasswordHash: hash,
			CreatedAt:    time.Now().UTC(),
		}
		if err := repo.CreateUser(ctx, user); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		log.Info("created default account",
			slog.String("op", op),
			slog.String("email", acc.email),
			slog.String("role", acc.role))
	}

	return nil
}
