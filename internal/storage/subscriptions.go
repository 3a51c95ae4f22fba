package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/billennium/platform-api/internal/models"
)

// CreateSubscription сохраняет новую заявку на подписку.
func (s *Storage) CreateSubscription(ctx context.Context, sub models.Subscription) error {
	const op = "storage.CreateSubscription"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO subscriptions (id, user_id, user_email, user_name,
			      company_name, product_id, product_name, plan_name, billing_cycle,
			      is_enabled, status, created_at, enabled_at, enabled_by)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	if _, err := s.DB.ExecContext(ctx, query,
		sub.ID, sub.UserID, sub.UserEmail, sub.UserName, sub.CompanyName,
		sub.ProductID, sub.ProductName, sub.PlanName, sub.BillingCycle,
		sub.IsEnabled, sub.Status, sub.CreatedAt, sub.EnabledAt, sub.EnabledBy); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ExistsActiveSubscription сообщает, есть ли у пользователя неотменённая
// подписка на продукт. Проверка намеренно не подкреплена уникальным
// индексом: гонка check-then-insert сохранена как в исходной системе.
func (s *Storage) ExistsActiveSubscription(ctx context.Context, userID, productID string) (bool, error) {
	const op = "storage.ExistsActiveSubscription"
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT EXISTS (
			      SELECT 1 FROM subscriptions
			      WHERE user_id = $1 AND product_id = $2 AND status <> $3
			  )`
	var exists bool
	if err := s.DB.QueryRowContext(ctx, query,
		userID, productID, models.SubscriptionStatusCancelled).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return exists, nil
}

// GetSubscription возвращает подписку по идентификатору или ErrNotFound.
func (s *Storage) GetSubscription(ctx context.Context, id string) (*models.Subscription, error) {
	const op = "storage.GetSubscription"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_id, user_email, user_name, company_name, product_id,
			      product_name, plan_name, billing_cycle, is_enabled, status,
			      created_at, enabled_at, enabled_by
			  FROM subscriptions
			  WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)

	sub, err := scanSubscription(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return sub, nil
}

// ListSubscriptionsByUser возвращает подписки пользователя в порядке
// добавления, не более limit записей.
func (s *Storage) ListSubscriptionsByUser(ctx context.Context, userID string, limit int) ([]*models.Subscription, error) {
	const op = "storage.ListSubscriptionsByUser"

	query := `SELECT id, user_id, user_email, user_name, company_name, product_id,
			      product_name, plan_name, billing_cycle, is_enabled, status,
			      created_at, enabled_at, enabled_by
			  FROM subscriptions
			  WHERE user_id = $1
			  ORDER BY created_at
			  LIMIT $2`
	return s.querySubscriptions(ctx, op, query, userID, limit)
}

// ListSubscriptions возвращает все подписки в порядке добавления,
// не более limit записей.
func (s *Storage) ListSubscriptions(ctx context.Context, limit int) ([]*models.Subscription, error) {
	const op = "storage.ListSubscriptions"

	query := `SELECT id, user_id, user_email, user_name, company_name, product_id,
			      product_name, plan_name, billing_cycle, is_enabled, status,
			      created_at, enabled_at, enabled_by
			  FROM subscriptions
			  ORDER BY created_at
			  LIMIT $1`
	return s.querySubscriptions(ctx, op, query, limit)
}

func (s *Storage) querySubscriptions(ctx context.Context, op, query string, args ...any) ([]*models.Subscription, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	// Пустая выборка остаётся непустым срезом: JSON-ответ должен быть [], а не null.
	result := []*models.Subscription{}
	for rows.Next() {
		sub, err := scanSubscription(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, sub)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSubscription(row rowScanner) (*models.Subscription, error) {
	sub := &models.Subscription{}
	var companyName, enabledBy sql.NullString
	var enabledAt sql.NullTime
	if err := row.Scan(&sub.ID, &sub.UserID, &sub.UserEmail, &sub.UserName,
		&companyName, &sub.ProductID, &sub.ProductName, &sub.PlanName,
		&sub.BillingCycle, &sub.IsEnabled, &sub.Status, &sub.CreatedAt,
		&enabledAt, &enabledBy); err != nil {
		return nil, err
	}
	if companyName.Valid {
		sub.CompanyName = &companyName.String
	}
	if enabledAt.Valid {
		sub.EnabledAt = &enabledAt.Time
	}
	if enabledBy.Valid {
		sub.EnabledBy = &enabledBy.String
	}
	return sub, nil
}

// UpdateSubscriptionEnablement обновляет поля включения подписки.
// enabledAt и enabledBy передаются только при включении, при выключении
// прежние значения штампа сохраняются.
func (s *Storage) UpdateSubscriptionEnablement(ctx context.Context, id string, isEnabled bool, status string, enabledAt *time.Time, enabledBy *string) error {
	const op = "storage.UpdateSubscriptionEnablement"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE subscriptions
			  SET is_enabled = $1,
			      status = $2,
			      enabled_at = COALESCE($3, enabled_at),
			      enabled_by = COALESCE($4, enabled_by)
			  WHERE id = $5`
	res, err := s.DB.ExecContext(ctx, query, isEnabled, status, enabledAt, enabledBy, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}

// CountSubscriptions возвращает общее количество подписок.
func (s *Storage) CountSubscriptions(ctx context.Context) (int, error) {
	const op = "storage.CountSubscriptions"

	var count int
	if err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM subscriptions`).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

// CountEnabledSubscriptions возвращает количество включённых подписок.
func (s *Storage) CountEnabledSubscriptions(ctx context.Context) (int, error) {
	const op = "storage.CountEnabledSubscriptions"

	var count int
	if err := s.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM subscriptions WHERE is_enabled = TRUE`).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

// CountSubscriptionsByStatus возвращает количество подписок с данным статусом.
func (s *Storage) CountSubscriptionsByStatus(ctx context.Context, status string) (int, error) {
	const op = "storage.CountSubscriptionsByStatus"

	var count int
	if err := s.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM subscriptions WHERE status = $1`, status).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}
