// Package company реализует работу с компаниями пользователей: создание
// владельцем и частичное административное обновление.
package company

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/billennium/platform-api/internal/models"
	"github.com/billennium/platform-api/internal/storage"
)

// CompanyRepository описывает операции хранилища компаний.
type CompanyRepository interface {
	CreateCompany(ctx context.Context, company models.Company) error
	GetCompany(ctx context.Context, id string) (*models.Company, error)
	ListCompaniesByOwner(ctx context.Context, ownerID string, limit int) ([]*models.Company, error)
	ListCompanies(ctx context.Context, limit int) ([]*models.Company, error)
	UpdateCompany(ctx context.Context, id string, upd models.CompanyUpdateRequest) error
}

// Service инкапсулирует бизнес-логику компаний.
type Service struct {
	repo CompanyRepository
}

// New создает новый экземпляр Service.
func New(repo CompanyRepository) *Service {
	return &Service{repo: repo}
}

// Create регистрирует компанию от имени владельца owner. Компания
// создается активной и без включенных продуктов.
func (s *Service) Create(ctx context.Context, owner *models.User, req models.CompanyCreateRequest) (*models.Company, error) {
	const op = "services.company.Create"

	company := models.Company{
		ID:              uuid.NewString(),
		Name:            req.Name,
		RUC:             req.RUC,
		Email:           req.Email,
		Phone:           req.Phone,
		Address:         req.Address,
		OwnerID:         owner.ID,
		EnabledProducts: []string{},
		IsActive:        true,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.repo.CreateCompany(ctx, company); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &company, nil
}

// ListMine возвращает компании, принадлежащие пользователю.
func (s *Service) ListMine(ctx context.Context, ownerID string) ([]*models.Company, error) {
	const op = "services.company.ListMine"

	companies, err := s.repo.ListCompaniesByOwner(ctx, ownerID, storage.UserListLimit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return companies, nil
}

// ListAll возвращает все компании для админ-консоли.
func (s *Service) ListAll(ctx context.Context) ([]*models.Company, error) {
	const op = "services.company.ListAll"

	companies, err := s.repo.ListCompanies(ctx, storage.AdminListLimit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return companies, nil
}

// AdminUpdate частично обновляет компанию: применяются только заданные
// поля запроса, nil-поля не трогаются.
func (s *Service) AdminUpdate(ctx context.Context, id string, req models.CompanyUpdateRequest) error {
	const op = "services.company.AdminUpdate"

	if _, err := s.repo.GetCompany(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.UpdateCompany(ctx, id, req); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
