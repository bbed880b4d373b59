// Package upload реализует HTTP-обработчик загрузки изображений
// во внешний медиасервис по URL.
package upload

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/business-catalog/internal/http/response"
	"github.com/magabrotheeeer/business-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/business-catalog/internal/lib/validate"
	"github.com/magabrotheeeer/business-catalog/internal/media"
)

// Request — входные данные для загрузки изображения.
type Request struct {
	ImageURL string `json:"image_url" validate:"required,url"`
	Folder   string `json:"folder" validate:"omitempty,max=100"`
}

// Service описывает интерфейс загрузки изображений.
type Service interface {
	UploadFromURL(ctx context.Context, imageURL, folder string) (*media.UploadResult, error)
}

// Handler обрабатывает HTTP-запросы загрузки изображений.
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
// @Summary Загрузка изображения
// @Description Загружает изображение по URL во внешний медиасервис и возвращает его параметры.
// @Tags Media
// @Accept  json
// @Produce  json
// @Param request body Request true "URL изображения и папка"
// @Success 200 {object} map[string]any "Результат загрузки"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 502 {object} response.ErrorResponse "Ошибка медиасервиса"
// @Security BearerAuth
// @Router /media/upload [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.media.upload"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	result, err := h.service.UploadFromURL(r.Context(), req.ImageURL, req.Folder)
	if err != nil {
		log.Error("failed to upload image", sl.Err(err))
		w.WriteHeader(http.StatusBadGateway)
		render.JSON(w, r, response.Error("failed to upload image"))
		return
	}

	log.Info("image uploaded", slog.String("public_id", result.PublicID))
	render.JSON(w, r, response.OKWithData(result))
}
