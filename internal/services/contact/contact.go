// Package contact реализует работу с сообщениями формы обратной связи.
package contact

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/billennium/platform-api/internal/models"
	"github.com/billennium/platform-api/internal/storage"
)

// MessageRepository описывает операции хранилища сообщений.
type MessageRepository interface {
	CreateContactMessage(ctx context.Context, msg models.ContactMessage) error
	ListContactMessages(ctx context.Context, limit int) ([]*models.ContactMessage, error)
	MarkContactMessageRead(ctx context.Context, id string) error
}

// Service инкапсулирует логику работы с входящими сообщениями.
type Service struct {
	repo MessageRepository
}

// New создает новый экземпляр Service.
func New(repo MessageRepository) *Service {
	return &Service{repo: repo}
}

// Create сохраняет сообщение формы обратной связи. Эндпоинт публичный,
// аутентификация не требуется.
func (s *Service) Create(ctx context.Context, req models.ContactMessageCreateRequest) (*models.ContactMessage, error) {
	const op = "services.contact.Create"

	msg := models.ContactMessage{
		ID:              uuid.NewString(),
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Company:         req.Company,
		Message:         req.Message,
		ProductInterest: req.ProductInterest,
		IsRead:          false,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.repo.CreateContactMessage(ctx, msg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &msg, nil
}

// ListAll возвращает сообщения для админ-консоли, новые первыми.
func (s *Service) ListAll(ctx context.Context) ([]*models.ContactMessage, error) {
	const op = "services.contact.ListAll"

	msgs, err := s.repo.ListContactMessages(ctx, storage.AdminListLimit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return msgs, nil
}

// MarkRead помечает сообщение прочитанным.
func (s *Service) MarkRead(ctx context.Context, id string) error {
	const op = "services.contact.MarkRead"

	if err := s.repo.MarkContactMessageRead(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
