// Package middlewarectx содержит middleware HTTP-сервера: проверку
// JWT-токена с загрузкой пользователя в контекст запроса и проверку
// роли администратора.
package middlewarectx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/billennium/platform-api/internal/http/response"
	customjwt "github.com/billennium/platform-api/internal/lib/jwt"
	"github.com/billennium/platform-api/internal/lib/sl"
	"github.com/billennium/platform-api/internal/models"
)

type ctxKey string

// UserKey — ключ контекста, под которым хранится аутентифицированный пользователь.
const UserKey ctxKey = "user"

// Authenticator проверяет токен и возвращает актуального пользователя.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

// JWTMiddleware возвращает middleware, которое проверяет JWT-токен в заголовке
// Authorization. Логика работы:
//  1. Считывает значение заголовка Authorization.
//  2. Проверяет, что он начинается с "Bearer ".
//  3. Валидирует токен и загружает пользователя из хранилища.
//  4. Кладёт пользователя в контекст запроса.
//  5. Передаёт управление следующему обработчику.
func JWTMiddleware(authService Authenticator, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.JWTMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Error("missing or invalid authorization header")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("Token inválido"))

				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			user, err := authService.Authenticate(r.Context(), tokenStr)
			if err != nil {
				log.Error("failed to authenticate", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)

				switch {
				case errors.Is(err, customjwt.ErrExpiredToken):
					render.JSON(w, r, response.Error("Token expirado"))
				case errors.Is(err, customjwt.ErrInvalidToken):
					render.JSON(w, r, response.Error("Token inválido"))
				default:
					render.JSON(w, r, response.Error("Usuario no encontrado"))
				}

				return
			}

			ctx := context.WithValue(r.Context(), UserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminOnly пропускает дальше только пользователей с ролью admin.
// Должен стоять после JWTMiddleware.
func AdminOnly(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.AdminOnly"

			user, ok := UserFromContext(r.Context())
			if !ok || user.Role != models.RoleAdmin {
				log.Error("admin access denied",
					slog.String("op", op),
					slog.String("request_id", middleware.GetReqID(r.Context())))
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("Acceso denegado. Se requiere rol de administrador"))

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// UserFromContext извлекает аутентифицированного пользователя из контекста.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(UserKey).(*models.User)
	return user, ok
}
