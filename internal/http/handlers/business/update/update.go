// Package update реализует HTTP-обработчик обновления бизнеса.
package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/business-catalog/internal/apperr"
	"github.com/magabrotheeeer/business-catalog/internal/http/middlewarectx"
	"github.com/magabrotheeeer/business-catalog/internal/http/response"
	"github.com/magabrotheeeer/business-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/business-catalog/internal/lib/validate"
	"github.com/magabrotheeeer/business-catalog/internal/models"
)

// Service описывает интерфейс бизнес-логики обновления бизнеса.
type Service interface {
	Update(ctx context.Context, user *models.User, id string, req models.DummyBusiness) (int, error)
}

// Handler обрабатывает HTTP-запросы обновления бизнеса.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validate.New(),
	}
}

// ServeHTTP godoc
// @Summary Обновление бизнеса
// @Description Обновляет бизнес. Операция разрешена владельцу и администраторам.
// @Tags Business
// @Accept  json
// @Produce  json
// @Param id path string true "ID бизнеса"
// @Param request body models.DummyBusiness true "Новые данные бизнеса"
// @Success 200 {object} map[string]any "Число обновленных записей"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 404 {object} response.ErrorResponse "Бизнес не найден"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Security BearerAuth
// @Router /business/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.business.update"

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

	var req models.DummyBusiness
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded")

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	id := chi.URLParam(r, "id")
	count, err := h.service.Update(r.Context(), user, id, req)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrForbidden):
			log.Warn("update forbidden", slog.String("id", id), slog.String("user_id", user.ID))
			w.WriteHeader(http.StatusForbidden)
			render.JSON(w, r, response.Error("forbidden"))
			return
		case errors.Is(err, apperr.ErrNotFound):
			log.Warn("business not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("business not found"))
			return
		}
		log.Error("failed to update business", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to update business"))
		return
	}

	log.Info("business updated", slog.String("id", id), slog.Int("count", count))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"updated": count,
	}))
}
