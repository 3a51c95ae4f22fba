package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/billennium/platform-api/internal/models"
)

// CreateCompany сохраняет новую компанию. Список подключённых продуктов
// хранится как jsonb-документ.
func (s *Storage) CreateCompany(ctx context.Context, company models.Company) error {
	const op = "storage.CreateCompany"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	enabledProducts, err := json.Marshal(company.EnabledProducts)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `INSERT INTO companies (id, name, ruc, email, phone, address,
			      owner_id, enabled_products, is_active, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	if _, err = s.DB.ExecContext(ctx, query,
		company.ID, company.Name, company.RUC, company.Email, company.Phone,
		company.Address, company.OwnerID, enabledProducts, company.IsActive,
		company.CreatedAt); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// GetCompany возвращает компанию по идентификатору или ErrNotFound.
func (s *Storage) GetCompany(ctx context.Context, id string) (*models.Company, error) {
	const op = "storage.GetCompany"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, ruc, email, phone, address, owner_id,
			      enabled_products, is_active, created_at
			  FROM companies
			  WHERE id = $1`
	company, err := scanCompany(s.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return company, nil
}

// ListCompaniesByOwner возвращает компании пользователя в порядке
// добавления, не более limit записей.
func (s *Storage) ListCompaniesByOwner(ctx context.Context, ownerID string, limit int) ([]*models.Company, error) {
	const op = "storage.ListCompaniesByOwner"

	query := `SELECT id, name, ruc, email, phone, address, owner_id,
			      enabled_products, is_active, created_at
			  FROM companies
			  WHERE owner_id = $1
			  ORDER BY created_at
			  LIMIT $2`
	return s.queryCompanies(ctx, op, query, ownerID, limit)
}

// ListCompanies возвращает все компании в порядке добавления,
// не более limit записей.
func (s *Storage) ListCompanies(ctx context.Context, limit int) ([]*models.Company, error) {
	const op = "storage.ListCompanies"

	query := `SELECT id, name, ruc, email, phone, address, owner_id,
			      enabled_products, is_active, created_at
			  FROM companies
			  ORDER BY created_at
			  LIMIT $1`
	return s.queryCompanies(ctx, op, query, limit)
}

func (s *Storage) queryCompanies(ctx context.Context, op, query string, args ...any) ([]*models.Company, error) {
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

	result := []*models.Company{}
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, company)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

func scanCompany(row rowScanner) (*models.Company, error) {
	c := &models.Company{}
	var ruc, phone, address sql.NullString
	var enabledProducts []byte
	if err := row.Scan(&c.ID, &c.Name, &ruc, &c.Email, &phone, &address,
		&c.OwnerID, &enabledProducts, &c.IsActive, &c.CreatedAt); err != nil {
		return nil, err
	}
	if ruc.Valid {
		c.RUC = &ruc.String
	}
	if phone.Valid {
		c.Phone = &phone.String
	}
	if address.Valid {
		c.Address = &address.String
	}
	if err := json.Unmarshal(enabledProducts, &c.EnabledProducts); err != nil {
		return nil, err
	}
	if c.EnabledProducts == nil {
		c.EnabledProducts = []string{}
	}
	return c, nil
}

// UpdateCompany применяет частичное обновление: в SET попадают только
// заполненные поля запроса. Пустое обновление — допустимый no-op.
// Возвращает ErrNotFound, если компании с таким id нет.
func (s *Storage) UpdateCompany(ctx context.Context, id string, upd models.CompanyUpdateRequest) error {
	const op = "storage.UpdateCompany"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var sets []string
	var args []any
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Name != nil {
		add("name", *upd.Name)
	}
	if upd.RUC != nil {
		add("ruc", *upd.RUC)
	}
	if upd.Email != nil {
		add("email", *upd.Email)
	}
	if upd.Phone != nil {
		add("phone", *upd.Phone)
	}
	if upd.Address != nil {
		add("address", *upd.Address)
	}
	if upd.EnabledProducts != nil {
		enabledProducts, err := json.Marshal(upd.EnabledProducts)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		add("enabled_products", enabledProducts)
	}
	if upd.IsActive != nil {
		add("is_active", *upd.IsActive)
	}

	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE companies SET %s WHERE id = $%d`,
		strings.Join(sets, ", "), len(args))
	res, err := s.DB.ExecContext(ctx, query, args...)
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

// CountCompanies возвращает общее количество компаний.
func (s *Storage) CountCompanies(ctx context.Context) (int, error) {
	const op = "storage.CountCompanies"

	var count int
	if err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM companies`).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}
