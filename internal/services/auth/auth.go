// Package auth содержит бизнес-логику регистрации, входа и проверки токенов.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/billennium/platform-api/internal/lib/jwt"
	"github.com/billennium/platform-api/internal/lib/password"
	"github.com/billennium/platform-api/internal/models"
	"github.com/billennium/platform-api/internal/storage"
)

// Ошибки бизнес-уровня. Обработчики отображают их в HTTP-коды:
// ErrEmailTaken -> 400, остальные -> 401.
var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user is deactivated")
	ErrUnauthorized       = errors.New("unauthorized")
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя.
	CreateUser(ctx context.Context, user models.User) error
	// GetUserByEmail возвращает пользователя по email или storage.ErrNotFound.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// GetUserByID возвращает пользователя по id или storage.ErrNotFound.
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// Service отвечает за регистрацию, авторизацию и проверку JWT.
type Service struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// New создает новый экземпляр Service.
func New(users UserRepository, jwtMaker jwt.Maker) *Service {
	return &Service{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового пользователя с хэшированием пароля и ролью "user",
// затем сразу выдает токен. Повторная регистрация email возвращает ErrEmailTaken.
func (s *Service) Register(ctx context.Context, req models.RegisterRequest) (string, *models.User, error) {
	const op = "auth.Register"

	_, err := s.users.GetUserByEmail(ctx, req.Email)
	if err == nil {
		return "", nil, ErrEmailTaken
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}

	hashed, err := password.GetHash(req.Password)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}

	user := models.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		Name:         req.Name,
		CompanyName:  req.CompanyName,
		Phone:        req.Phone,
		Role:         models.RoleUser,
		IsActive:     true,
		PasswordHash: hashed,
		CreatedAt:    time.Now().UTC(),
	}
	if err = s.users.CreateUser(ctx, user); err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}

	token, err := s.jwtMaker.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}
	return token, &user, nil
}

// Login проверяет пароль и активность учетной записи, затем выдает токен.
// Неизвестный email и неверный пароль неразличимы для клиента.
func (s *Service) Login(ctx context.Context, req models.LoginRequest) (string, *models.User, error) {
	const op = "auth.Login"

	user, err := s.users.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = password.CompareHash(user.PasswordHash, req.Password); err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", nil, ErrUserInactive
	}

	token, err := s.jwtMaker.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}
	return token, user, nil
}

// Authenticate проверяет JWT и возвращает актуальную запись пользователя
// из хранилища. Невалидный или истёкший токен, как и исчезнувший
// пользователь, дают ErrUnauthorized; исходная причина сохраняется в цепочке.
func (s *Service) Authenticate(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	user, err := s.users.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}
	return user, nil
}
