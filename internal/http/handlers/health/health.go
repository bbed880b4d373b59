// Package health реализует проверку работоспособности сервиса.
package health

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/business-catalog/internal/http/response"
)

// Handler проверяет доступность зависимостей сервиса.
type Handler struct {
	db *sql.DB
}

// New создает новый Handler.
func New(db *sql.DB) *Handler {
	return &Handler{db: db}
}

// ServeHTTP godoc
// @Summary Проверка работоспособности
// @Description Проверяет доступность базы данных.
// @Tags Health
// @Produce  json
// @Success 200 {object} response.Response "Сервис работает"
// @Failure 503 {object} response.ErrorResponse "База данных недоступна"
// @Router /health [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.db.PingContext(r.Context()); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		render.JSON(w, r, response.Error("database is unavailable"))
		return
	}
	render.JSON(w, r, response.OK())
}
