// Package read реализует HTTP-обработчик получения контактов бизнеса.
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

// Service описывает интерфейс бизнес-логики чтения контактов.
type Service interface {
	Read(ctx context.Context, businessID string) (*models.Contact, error)
}

// Handler обрабатывает HTTP-запросы чтения контактов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Получение контактов бизнеса
// @Description Возвращает контакты по идентификатору бизнеса.
// @Tags Contact
// @Produce  json
// @Param businessID path string true "ID бизнеса"
// @Success 200 {object} map[string]any "Контакты"
// @Failure 404 {object} response.ErrorResponse "Контакты не найдены"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /contacts/business/{businessID} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.contact.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	businessID := chi.URLParam(r, "businessID")
	contact, err := h.service.Read(r.Context(), businessID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			log.Warn("contact not found", slog.String("business_id", businessID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("contact not found"))
			return
		}
		log.Error("failed to read contact", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to read contact"))
		return
	}

	log.Info("contact returned", slog.String("business_id", businessID))
	render.JSON(w, r, response.OKWithData(contact))
}
