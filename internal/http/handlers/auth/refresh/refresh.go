// Package refresh реализует HTTP-обработчик обновления пары токенов.
//
// Refresh-токен принимается только из cookie, заголовок Authorization
// не рассматривается. При успехе выдается новая пара токенов, обе cookies
// перезаписываются.
package refresh

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/business-catalog/internal/apperr"
	"github.com/magabrotheeeer/business-catalog/internal/http/response"
	"github.com/magabrotheeeer/business-catalog/internal/lib/cookies"
	"github.com/magabrotheeeer/business-catalog/internal/lib/sl"
)

// Service описывает интерфейс бизнес-логики обновления токенов.
type Service interface {
	Refresh(ctx context.Context, refreshToken string) (cookies.Pair, error)
}

// Handler обрабатывает HTTP-запросы обновления токенов.
type Handler struct {
	log        *slog.Logger
	service    Service
	cookieOpts cookies.Options
}

// New создает новый Handler.
func New(log *slog.Logger, service Service, cookieOpts cookies.Options) *Handler {
	return &Handler{
		log:        log,
		service:    service,
		cookieOpts: cookieOpts,
	}
}

// ServeHTTP godoc
// @Summary Обновление пары токенов
// @Description Читает refresh-токен из cookie и выдает новую пару токенов.
// @Tags Auth
// @Produce  json
// @Success 200 {object} map[string]any "Токены обновлены"
// @Failure 401 {object} response.ErrorResponse "Отсутствующий или недействительный refresh-токен"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /auth/refresh [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.refresh"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	cookie, err := r.Cookie(cookies.RefreshTokenCookie)
	if err != nil || cookie.Value == "" {
		log.Warn("refresh token cookie is missing")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("refresh token not found"))
		return
	}

	pair, err := h.service.Refresh(r.Context(), cookie.Value)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrTokenExpired), errors.Is(err, apperr.ErrTokenInvalid):
			log.Warn("refresh token rejected", sl.Err(err))
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, response.Error("invalid or expired refresh token"))
			return
		case errors.Is(err, apperr.ErrUserNotFound), errors.Is(err, apperr.ErrUserInactive):
			log.Warn("refresh rejected: invalid user", sl.Err(err))
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, response.Error("invalid user"))
			return
		}
		log.Error("refresh failed", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to refresh tokens"))
		return
	}

	cookies.SetSession(w, pair, h.cookieOpts)
	log.Info("tokens refreshed")
	render.JSON(w, r, response.OKWithData(map[string]any{
		"message": "Tokens refreshed",
	}))
}
