// Package subscription реализует бизнес-логику заявок на подключение продуктов:
// создание заявки пользователем и административное включение/выключение.
package subscription

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/billennium/platform-api/internal/catalog"
	"github.com/billennium/platform-api/internal/models"
	"github.com/billennium/platform-api/internal/storage"
)

var (
	// ErrProductNotFound возвращается при неизвестном product_id.
	ErrProductNotFound = errors.New("product not found")
	// ErrAlreadySubscribed возвращается при повторной заявке на тот же продукт.
	ErrAlreadySubscribed = errors.New("you already have a subscription for this product")
)

// SubscriptionRepository описывает операции хранилища подписок.
type SubscriptionRepository interface {
	CreateSubscription(ctx context.Context, sub models.Subscription) error
	ExistsActiveSubscription(ctx context.Context, userID, productID string) (bool, error)
	GetSubscription(ctx context.Context, id string) (*models.Subscription, error)
	ListSubscriptionsByUser(ctx context.Context, userID string, limit int) ([]*models.Subscription, error)
	ListSubscriptions(ctx context.Context, limit int) ([]*models.Subscription, error)
	UpdateSubscriptionEnablement(ctx context.Context, id string, isEnabled bool, status string,
		enabledAt *time.Time, enabledBy *string) error
}

// Service инкапсулирует работу с подписками поверх каталога и хранилища.
type Service struct {
	repo SubscriptionRepository
}

// New создает новый экземпляр Service.
func New(repo SubscriptionRepository) *Service {
	return &Service{repo: repo}
}

// Create оформляет заявку на подключение продукта для пользователя user.
// Продукт ищется в каталоге строго по id; совпадение по slug здесь не
// принимается. Заявка создается в статусе pending и выключенной.
func (s *Service) Create(ctx context.Context, user *models.User, req models.SubscriptionCreateRequest) (*models.Subscription, error) {
	const op = "services.subscription.Create"

	var product *models.Product
	for _, p := range catalog.List() {
		if p.ID == req.ProductID {
			product = &p
			break
		}
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	// Проверка и вставка не атомарны: две одновременные заявки на один
	// продукт могут пройти обе. Уникального индекса в схеме нет.
	exists, err := s.repo.ExistsActiveSubscription(ctx, user.ID, product.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if exists {
		return nil, ErrAlreadySubscribed
	}

	billing := req.BillingCycle
	if billing == "" {
		billing = "monthly"
	}

	sub := models.Subscription{
		ID:           uuid.NewString(),
		UserID:       user.ID,
		UserEmail:    user.Email,
		UserName:     user.Name,
		CompanyName:  user.CompanyName,
		ProductID:    product.ID,
		ProductName:  product.Name,
		PlanName:     req.PlanName,
		BillingCycle: billing,
		IsEnabled:    false,
		Status:       models.SubscriptionStatusPending,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.CreateSubscription(ctx, sub); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &sub, nil
}

// ListMine возвращает подписки пользователя.
func (s *Service) ListMine(ctx context.Context, userID string) ([]*models.Subscription, error) {
	const op = "services.subscription.ListMine"

	subs, err := s.repo.ListSubscriptionsByUser(ctx, userID, storage.UserListLimit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return subs, nil
}

// ListAll возвращает подписки всех пользователей для админ-консоли.
func (s *Service) ListAll(ctx context.Context) ([]*models.Subscription, error) {
	const op = "services.subscription.ListAll"

	subs, err := s.repo.ListSubscriptions(ctx, storage.AdminListLimit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return subs, nil
}

// AdminUpdate включает или выключает подписку от имени администратора admin.
// Включение переводит заявку в статус active и фиксирует момент и автора
// включения; выключение ставит переданный статус либо suspended, а отметки
// enabled_at/enabled_by сохраняются от последнего включения.
func (s *Service) AdminUpdate(ctx context.Context, admin *models.User, id string, req models.SubscriptionUpdateRequest) error {
	const op = "services.subscription.AdminUpdate"

	if _, err := s.repo.GetSubscription(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	var (
		status    string
		enabledAt *time.Time
		enabledBy *string
	)
	if req.IsEnabled {
		status = models.SubscriptionStatusActive
		now := time.Now().UTC()
		enabledAt = &now
		enabledBy = &admin.Email
	} else {
		status = models.SubscriptionStatusSuspended
		if req.Status != nil {
			status = *req.Status
		}
	}

	if err := s.repo.UpdateSubscriptionEnablement(ctx, id, req.IsEnabled, status, enabledAt, enabledBy); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
