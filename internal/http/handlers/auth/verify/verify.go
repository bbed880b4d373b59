// Package verify реализует HTTP-обработчик проверки текущей сессии.
//
// Маршрут защищен middleware аутентификации: если запрос дошел до
// обработчика, пользователь уже загружен в контекст.
package verify

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/business-catalog/internal/http/middlewarectx"
	"github.com/magabrotheeeer/business-catalog/internal/http/response"
)

// Handler обрабатывает HTTP-запросы проверки сессии.
type Handler struct {
	log *slog.Logger
}

// New создает новый Handler.
func New(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

// ServeHTTP godoc
// @Summary Проверка текущей сессии
// @Description Возвращает данные пользователя из действующего access-токена.
// @Tags Auth
// @Produce  json
// @Success 200 {object} map[string]any "Данные пользователя"
// @Failure 400 {object} response.ErrorResponse "Пользователь не найден в контексте"
// @Security BearerAuth
// @Router /auth/verify [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.verify"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	user, ok := middlewarectx.UserFromContext(r.Context())
	if !ok {
		log.Error("user not found in context")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("user not found in context"))
		return
	}

	log.Info("session verified", slog.String("user_id", user.ID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"id":        user.ID,
		"phone":     user.Phone,
		"roles":     user.Roles,
		"is_active": user.IsActive,
	}))
}
