// Package remove реализует HTTP-обработчик удаления бизнеса.
package remove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/business-catalog/internal/apperr"
	"github.com/magabrotheeeer/business-catalog/internal/http/middlewarectx"
	"github.com/magabrotheeeer/business-catalog/internal/http/response"
	"github.com/magabrotheeeer/business-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/business-catalog/internal/models"
)

// Service описывает интерфейс бизнес-логики удаления бизнеса.
type Service interface {
	Remove(ctx context.Context, user *models.User, id string) (int, error)
}

// Handler обрабатывает HTTP-запросы удаления бизнеса.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Удаление бизнеса
// @Description Мягко удаляет бизнес. Операция разрешена владельцу и администраторам.
// @Tags Business
// @Produce  json
// @Param id path string true "ID бизнеса"
// @Success 200 {object} map[string]any "Число удаленных записей"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 404 {object} response.ErrorResponse "Бизнес не найден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Security BearerAuth
// @Router /business/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.business.remove"

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

	id := chi.URLParam(r, "id")
	count, err := h.service.Remove(r.Context(), user, id)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrForbidden):
			log.Warn("remove forbidden", slog.String("id", id), slog.String("user_id", user.ID))
			w.WriteHeader(http.StatusForbidden)
			render.JSON(w, r, response.Error("forbidden"))
			return
		case errors.Is(err, apperr.ErrNotFound):
			log.Warn("business not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("business not found"))
			return
		}
		log.Error("failed to remove business", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to remove business"))
		return
	}

	log.Info("business removed", slog.String("id", id), slog.Int("count", count))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"removed": count,
	}))
}
