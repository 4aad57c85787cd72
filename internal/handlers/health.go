package handlers

import (
	"context"
	"net/http"
	"time"

	"conduit/internal/logger"
	"conduit/internal/utils/helpers"

	"go.uber.org/zap"
)

// Pinger: хранилище, доступность которого проверяет /api/health.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct{ db Pinger }

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health
// @Summary      Проверка доступности
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  helpers.ErrorResponse
// @Router       /api/health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		logger.WithCtx(r.Context()).Error("health: БД недоступна", zap.Error(err))
		helpers.Error(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// NotFound: ответ для неизвестных маршрутов.
func NotFound(w http.ResponseWriter, r *http.Request) {
	helpers.Error(w, http.StatusNotFound, "nothing to see here")
}
