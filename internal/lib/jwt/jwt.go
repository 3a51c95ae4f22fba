// Package jwt реализует генерацию и парсинг JWT токенов с пользовательскими claim полями.
//
// Maker определяет интерфейс для создания и проверки JWT токенов с идентификатором,
// email и ролью пользователя. MakerImpl — конкретная реализация с использованием
// секретного ключа и срока жизни токена.
package jwt

import (
	"errors"
	"time"
)

// Ошибки парсинга токена. Истёкший и невалидный токен — разные виды отказа:
// клиенту оба отдаются как 401, но в логах и бизнес-логике они различаются.
var (
	// ErrExpiredToken — подпись корректна, но срок жизни токена истёк.
	ErrExpiredToken = errors.New("token has expired")
	// ErrInvalidToken — токен повреждён, подделан или подписан другим ключом.
	ErrInvalidToken = errors.New("token is invalid")
)

// Maker описывает интерфейс для генерации и парсинга JWT токенов.
type Maker interface {
	// GenerateToken создает токен с userID, email и ролью пользователя.
	GenerateToken(userID, email, role string) (string, error)
	// ParseToken возвращает *CustomClaims, либо ErrExpiredToken/ErrInvalidToken.
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и времени жизни токена (TTL).
type MakerImpl struct {
	secretKey string        // Секретный ключ для подписи токенов.
	tokenTTL  time.Duration // Время жизни токена.
}

// NewJWTMaker создаёт новый экземпляр MakerImpl на основе секретного ключа и TTL.
func NewJWTMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
