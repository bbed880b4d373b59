// Package create реализует HTTP-обработчик создания контактов бизнеса.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

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

// Service описывает интерфейс бизнес-логики создания контактов.
type Service interface {
	Create(ctx context.Context, user *models.User, req models.DummyContact) (string, error)
}

// Handler обрабатывает HTTP-запросы создания контактов.
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
// @Summary Создание контактов бизнеса
// @Description Создает запись контактов. Операция разрешена владельцу бизнеса и администраторам.
// @Tags Contact
// @Accept  json
// @Produce  json
// @Param request body models.DummyContact true "Телефоны и ссылки"
// @Success 200 {object} map[string]any "ID созданной записи"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 404 {object} response.ErrorResponse "Бизнес не найден"
// @Failure 409 {object} response.ErrorResponse "Контакты уже существуют"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Security BearerAuth
// @Router /contacts [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.contact.create"

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

	var req models.DummyContact
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

	id, err := h.service.Create(r.Context(), user, req)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrForbidden):
			log.Warn("create forbidden", slog.String("user_id", user.ID))
			w.WriteHeader(http.StatusForbidden)
			render.JSON(w, r, response.Error("forbidden"))
			return
		case errors.Is(err, apperr.ErrNotFound):
			log.Warn("business not found", slog.String("business_id", req.BusinessID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("business not found"))
			return
		case errors.Is(err, apperr.ErrAlreadyExists):
			log.Warn("contact already exists", slog.String("business_id", req.BusinessID))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("contact already exists"))
			return
		}
		log.Error("failed to create contact", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to create contact"))
		return
	}

	log.Info("contact created", slog.String("id", id))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"contact_id": id,
	}))
}
