// Package list реализует HTTP-обработчик постраничного списка товаров.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	services "github.com/magabrotheeeer/business-catalog/internal/services/product"

	"github.com/magabrotheeeer/business-catalog/internal/http/response"
	"github.com/magabrotheeeer/business-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/business-catalog/internal/models"
)

// Service описывает интерфейс бизнес-логики получения списка товаров.
type Service interface {
	List(ctx context.Context, businessID string, p models.Pagination) (*services.ListResult, error)
}

// Handler обрабатывает HTTP-запросы списка товаров.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Список товаров
// @Description Возвращает страницу товаров, опционально отфильтрованную по бизнесу.
// @Tags Product
// @Produce  json
// @Param business_id query string false "Фильтр по ID бизнеса"
// @Param page query int false "Номер страницы" default(1)
// @Param limit query int false "Размер страницы" default(10)
// @Success 200 {object} map[string]any "Страница товаров"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /products [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	p := models.Pagination{Page: page, Limit: limit}
	p.Normalize()
	businessID := r.URL.Query().Get("business_id")

	result, err := h.service.List(r.Context(), businessID, p)
	if err != nil {
		log.Error("failed to list products", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list products"))
		return
	}

	log.Info("product list returned",
		slog.Int("page", p.Page), slog.Int("total", result.Meta.Total))
	render.JSON(w, r, response.OKWithData(result))
}
