// Package list реализует HTTP-обработчик постраничного списка бизнесов.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	services "github.com/magabrotheeeer/business-catalog/internal/services/business"

	"github.com/magabrotheeeer/business-catalog/internal/http/response"
	"github.com/magabrotheeeer/business-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/business-catalog/internal/models"
)

// Service описывает интерфейс бизнес-логики получения списка бизнесов.
type Service interface {
	List(ctx context.Context, p models.Pagination) (*services.ListResult, error)
}

// Handler обрабатывает HTTP-запросы списка бизнесов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Список бизнесов
// @Description Возвращает страницу бизнесов с метаданными пагинации.
// @Tags Business
// @Produce  json
// @Param page query int false "Номер страницы" default(1)
// @Param limit query int false "Размер страницы" default(10)
// @Success 200 {object} map[string]any "Страница бизнесов"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /business [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.business.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	p := models.Pagination{Page: page, Limit: limit}
	p.Normalize()

	result, err := h.service.List(r.Context(), p)
	if err != nil {
		log.Error("failed to list business", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list business"))
		return
	}

	log.Info("business list returned",
		slog.Int("page", p.Page), slog.Int("total", result.Meta.Total))
	render.JSON(w, r, response.OKWithData(result))
}
