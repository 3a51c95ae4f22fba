// Package admin реализует операции админ-консоли: список пользователей,
// блокировка аккаунтов и сводная статистика платформы.
package admin

import (
	"context"
	"fmt"

	"github.com/billennium/platform-api/internal/models"
	"github.com/billennium/platform-api/internal/storage"
)

// AdminRepository описывает операции хранилища, нужные админ-консоли.
type AdminRepository interface {
	ListUsers(ctx context.Context, limit int) ([]*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	SetUserActive(ctx context.Context, id string, isActive bool) error
	CountUsers(ctx context.Context) (int, error)
	CountSubscriptions(ctx context.Context) (int, error)
	CountEnabledSubscriptions(ctx context.Context) (int, error)
	CountSubscriptionsByStatus(ctx context.Context, status string) (int, error)
	CountContactMessages(ctx context.Context) (int, error)
	CountUnreadContactMessages(ctx context.Context) (int, error)
	CountCompanies(ctx context.Context) (int, error)
}

// Service инкапсулирует операции админ-консоли.
type Service struct {
	repo AdminRepository
}

// New создает новый экземпляр Service.
func New(repo AdminRepository) *Service {
	return &Service{repo: repo}
}

// ListUsers возвращает пользователей платформы.
func (s *Service) ListUsers(ctx context.Context) ([]*models.User, error) {
	const op = "services.admin.ListUsers"

	users, err := s.repo.ListUsers(ctx, storage.AdminListLimit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return users, nil
}

// ToggleActive инвертирует флаг is_active пользователя и возвращает
// новое значение флага.
func (s *Service) ToggleActive(ctx context.Context, id string) (bool, error) {
	const op = "services.admin.ToggleActive"

	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	newState := !user.IsActive
	if err := s.repo.SetUserActive(ctx, id, newState); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return newState, nil
}

// Stats собирает сводные счетчики платформы. Счетчики читаются
// последовательно без транзакции, значения могут быть слегка несогласованы
// между собой.
func (s *Service) Stats(ctx context.Context) (*models.AdminStats, error) {
	const op = "services.admin.Stats"

	stats := &models.AdminStats{}
	var err error

	if stats.TotalUsers, err = s.repo.CountUsers(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if stats.TotalSubscriptions, err = s.repo.CountSubscriptions(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if stats.ActiveSubscriptions, err = s.repo.CountEnabledSubscriptions(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if stats.PendingSubscriptions, err = s.repo.CountSubscriptionsByStatus(ctx, models.SubscriptionStatusPending); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if stats.TotalMessages, err = s.repo.CountContactMessages(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if stats.UnreadMessages, err = s.repo.CountUnreadContactMessages(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if stats.TotalCompanies, err = s.repo.CountCompanies(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return stats, nil
}
