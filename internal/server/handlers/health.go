package handlers

import (
	"log/slog"
	"net/http"

	"github.com/iudanet/servermanager/internal/models"
)

// HealthHandler обрабатывает health check запросы
type HealthHandler struct {
	logger    *slog.Logger
	projector Projector
	version   string
}

// NewHealthHandler создает новый handler для health check
func NewHealthHandler(logger *slog.Logger, projector Projector, version string) *HealthHandler {
	return &HealthHandler{
		logger:    logger,
		projector: projector,
		version:   version,
	}
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status    string           `json:"status"`
	Version   string           `json:"version,omitempty"`
	DataState models.DataState `json:"dataState"`
	Servers   int              `json:"servers"`
}

// Health обрабатывает GET /api/v1/health
// Дашборд жив, даже если последнее действие завершилось ошибкой:
// состояние backend видно в dataState
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	st := h.projector.State()

	resp := HealthResponse{
		Status:    "ok",
		Version:   h.version,
		DataState: st.DataState,
		Servers:   len(st.Servers()),
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}
