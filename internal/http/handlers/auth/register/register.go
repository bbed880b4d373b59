// Package register реализует HTTP-обработчик регистрации пользователей.
//
// Обработчик декодирует JSON с телефоном и паролем, валидирует формат
// телефона и парольную политику, делегирует создание пользователя сервису
// аутентификации и устанавливает cookies с парой токенов.
package register

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
	"github.com/magabrotheeeer/business-catalog/internal/http/response"
	"github.com/magabrotheeeer/business-catalog/internal/lib/cookies"
	"github.com/magabrotheeeer/business-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/business-catalog/internal/lib/validate"
	"github.com/magabrotheeeer/business-catalog/internal/models"
)

// Request — входные данные для регистрации.
type Request struct {
	Phone    string `json:"phone" validate:"required,cubaphone"`
	Password string `json:"password" validate:"required,strongpwd"`
}

// Service описывает интерфейс бизнес-логики регистрации.
type Service interface {
	Register(ctx context.Context, phone, rawPassword string) (*models.User, cookies.Pair, error)
}

// Handler обрабатывает HTTP-запросы регистрации.
type Handler struct {
	log        *slog.Logger
	service    Service
	validate   *validator.Validate
	cookieOpts cookies.Options
}

// New создает новый Handler с указанными логгером, сервисом и параметрами cookies.
func New(log *slog.Logger, service Service, cookieOpts cookies.Options) *Handler {
	return &Handler{
		log:        log,
		service:    service,
		validate:   validate.New(),
		cookieOpts: cookieOpts,
	}
}

// ServeHTTP godoc
// @Summary Регистрация пользователя
// @Description Создает пользователя с ролью USER и устанавливает cookies с парой токенов.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body Request true "Телефон и пароль"
// @Success 200 {object} map[string]any "Успешная регистрация"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 409 {object} response.ErrorResponse "Телефон уже зарегистрирован"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /auth/register [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.register"

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
	log.Info("request body decoded", slog.String("phone", req.Phone))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	user, pair, err := h.service.Register(r.Context(), req.Phone, req.Password)
	if err != nil {
		if errors.Is(err, apperr.ErrUserExists) {
			log.Error("phone already registered", sl.Err(err))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("phone already registered"))
			return
		}
		log.Error("registration failed", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to register user"))
		return
	}

	cookies.SetSession(w, pair, h.cookieOpts)
	log.Info("register success", slog.String("user_id", user.ID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"message": "Successful register!",
		"id":      user.ID,
		"phone":   user.Phone,
		"roles":   user.Roles,
	}))
}
