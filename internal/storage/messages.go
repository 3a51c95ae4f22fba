package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/billennium/platform-api/internal/models"
)

// CreateContactMessage сохраняет новый лид с формы обратной связи.
func (s *Storage) CreateContactMessage(ctx context.Context, msg models.ContactMessage) error {
	const op = "storage.CreateContactMessage"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO contact_messages (id, name, email, phone, company,
			      message, product_interest, is_read, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	if _, err := s.DB.ExecContext(ctx, query,
		msg.ID, msg.Name, msg.Email, msg.Phone, msg.Company,
		msg.Message, msg.ProductInterest, msg.IsRead, msg.CreatedAt); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ListContactMessages возвращает сообщения от новых к старым,
// не более limit записей.
func (s *Storage) ListContactMessages(ctx context.Context, limit int) ([]*models.ContactMessage, error) {
	const op = "storage.ListContactMessages"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, email, phone, company, message, product_interest,
			      is_read, created_at
			  FROM contact_messages
			  ORDER BY created_at DESC
			  LIMIT $1`
	rows, err := s.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := []*models.ContactMessage{}
	for rows.Next() {
		var m models.ContactMessage
		var phone, company, productInterest sql.NullString
		if err = rows.Scan(&m.ID, &m.Name, &m.Email, &phone, &company,
			&m.Message, &productInterest, &m.IsRead, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if phone.Valid {
			m.Phone = &phone.String
		}
		if company.Valid {
			m.Company = &company.String
		}
		if productInterest.Valid {
			m.ProductInterest = &productInterest.String
		}
		result = append(result, &m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// MarkContactMessageRead помечает сообщение прочитанным.
// Возвращает ErrNotFound, если сообщения с таким id нет.
func (s *Storage) MarkContactMessageRead(ctx context.Context, id string) error {
	const op = "storage.MarkContactMessageRead"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	res, err := s.DB.ExecContext(ctx,
		`UPDATE contact_messages SET is_read = TRUE WHERE id = $1`, id)
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

// CountContactMessages возвращает общее количество сообщений.
func (s *Storage) CountContactMessages(ctx context.Context) (int, error) {
	const op = "storage.CountContactMessages"

	var count int
	if err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM contact_messages`).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

// CountUnreadContactMessages возвращает количество непрочитанных сообщений.
func (s *Storage) CountUnreadContactMessages(ctx context.Context) (int, error) {
	const op = "storage.CountUnreadContactMessages"

	var count int
	if err := s.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM contact_messages WHERE is_read = FALSE`).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}
