package middlewarectx

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/business-catalog/internal/http/response"
)

// RequireRoles возвращает middleware, пропускающий запрос только если
// у пользователя есть хотя бы одна из требуемых ролей.
//
// Пустой список ролей означает, что маршруту достаточно аутентификации.
// Middleware ставится строго после AuthMiddleware: отсутствие пользователя
// в контексте — ошибка композиции маршрутов.
func RequireRoles(log *slog.Logger, roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(roles) == 0 {
				next.ServeHTTP(w, r)
				return
			}

			user, ok := UserFromContext(r.Context())
			if !ok {
				log.Error("user not found in context")
				w.WriteHeader(http.StatusBadRequest)
				render.JSON(w, r, response.Error("user not found in context"))
				return
			}

			if !user.HasAnyRole(roles...) {
				log.Error("insufficient role",
					slog.String("user_id", user.ID),
					slog.Any("required", roles))
				w.WriteHeader(http.StatusForbidden)
				render.JSON(w, r, response.Error(fmt.Sprintf("user needs a valid role: %v", roles)))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
