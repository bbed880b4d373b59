// Package middlewarectx содержит HTTP middleware для аутентификации запросов
// и проверки ролей.
//
// AuthMiddleware ищет access-токен сначала в cookie, затем в заголовке
// Authorization, проверяет его и загружает актуальную запись пользователя.
// RequireRoles пропускает запрос только при пересечении ролей пользователя
// с требуемым набором маршрута.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/business-catalog/internal/http/response"
	"github.com/magabrotheeeer/business-catalog/internal/lib/cookies"
	"github.com/magabrotheeeer/business-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/business-catalog/internal/models"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// userKey — ключ для аутентифицированного пользователя в контексте.
const userKey Key = "user"

// Service описывает интерфейс сервиса аутентификации запроса.
type Service interface {
	// Authenticate проверяет access-токен и возвращает актуальную
	// запись пользователя.
	Authenticate(ctx context.Context, accessToken string) (*models.User, error)
}

// UserFromContext возвращает аутентифицированного пользователя запроса.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userKey).(*models.User)
	return user, ok
}

// ContextWithUser кладёт пользователя в контекст. Используется в тестах
// и самим middleware.
func ContextWithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// extractToken ищет access-токен: сначала в cookie, затем в заголовке
// Authorization с префиксом Bearer. Refresh-токен через заголовок
// не принимается.
func extractToken(r *http.Request) string {
	if c, err := r.Cookie(cookies.AccessTokenCookie); err == nil && c.Value != "" {
		return c.Value
	}
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// AuthMiddleware возвращает HTTP middleware, который проверяет access-токен
// и добавляет пользователя в контекст запроса.
//
// Отсутствующий токен, невалидный токен и отсутствующий или неактивный
// пользователь дают одинаковый ответ 401: причина различима только
// в серверных логах.
func AuthMiddleware(authService Service, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.AuthMiddleware"

			reqLog := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			tokenStr := extractToken(r)
			if tokenStr == "" {
				reqLog.Error("access token not found")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("access token not found"))
				return
			}

			user, err := authService.Authenticate(r.Context(), tokenStr)
			if err != nil {
				reqLog.Error("authentication failed", sl.Err(err))
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid or expired token"))
				return
			}

			ctx := ContextWithUser(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
