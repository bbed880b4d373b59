// Package logout реализует HTTP-обработчик выхода из системы.
package logout

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/business-catalog/internal/http/response"
	"github.com/magabrotheeeer/business-catalog/internal/lib/cookies"
)

// Handler обрабатывает HTTP-запросы выхода. Выход сводится к сбросу cookies,
// поэтому сервис не требуется.
type Handler struct {
	log    *slog.Logger
	secure bool
}

// New создает новый Handler.
func New(log *slog.Logger, secure bool) *Handler {
	return &Handler{log: log, secure: secure}
}

// ServeHTTP godoc
// @Summary Выход пользователя
// @Description Сбрасывает cookies с токенами. Операция идемпотентна.
// @Tags Auth
// @Produce  json
// @Success 200 {object} map[string]any "Успешный выход"
// @Router /auth/logout [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	cookies.ClearSession(w, h.secure)
	log.Info("session cookies cleared")
	render.JSON(w, r, response.OKWithData(map[string]any{
		"message": "Logout successful",
	}))
}
