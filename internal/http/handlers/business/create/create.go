// Package create реализует HTTP-обработчик создания бизнеса.
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

// Service описывает интерфейс бизнес-логики создания бизнеса.
type Service interface {
	Create(ctx context.Context, user *models.User, req models.DummyBusiness) (string, error)
}

// Handler обрабатывает HTTP-запросы создания бизнеса.
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
// @Summary Создание бизнеса
// @Description Создает бизнес или событие, принадлежащее текущему пользователю.
// @Tags Business
// @Accept  json
// @Produce  json
// @Param request body models.DummyBusiness true "Данные бизнеса"
// @Success 200 {object} map[string]any "ID созданного бизнеса"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 404 {object} response.ErrorResponse "Категория не найдена"
// @Failure 409 {object} response.ErrorResponse "Бизнес уже существует"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Security BearerAuth
// @Router /business [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.business.create"

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
	log.Info("all fields are validated")

	id, err := h.service.Create(r.Context(), user, req)
	if err != nil {
		if errors.Is(err, apperr.ErrAlreadyExists) {
			log.Warn("business already exists", slog.String("name", req.Name))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("business already exists"))
			return
		}
		if errors.Is(err, apperr.ErrNotFound) {
			log.Warn("category not found", slog.String("category_id", req.CategoryID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("category not found"))
			return
		}
		log.Error("failed to create business", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to create business"))
		return
	}

	log.Info("business created", slog.String("id", id))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"business_id": id,
	}))
}
