// Package read реализует HTTP-обработчик получения бизнеса по идентификатору.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/business-catalog/internal/apperr"
	"github.com/magabrotheeeer/business-catalog/internal/http/response"
	"github.com/magabrotheeeer/business-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/business-catalog/internal/models"
)

// Service описывает интерфейс бизнес-логики чтения бизнеса.
type Service interface {
	Read(ctx context.Context, id string) (*models.Business, error)
}

// Handler обрабатывает HTTP-запросы чтения бизнеса.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Получение бизнеса
// @Description Возвращает бизнес по идентификатору.
// @Tags Business
// @Produce  json
// @Param id path string true "ID бизнеса"
// @Success 200 {object} map[string]any "Бизнес"
// @Failure 404 {object} response.ErrorResponse "Бизнес не найден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /business/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.business.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	business, err := h.service.Read(r.Context(), id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			log.Warn("business not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("business not found"))
			return
		}
		log.Error("failed to read business", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to read business"))
		return
	}

	log.Info("business returned", slog.String("id", id))
	render.JSON(w, r, response.OKWithData(business))
}
