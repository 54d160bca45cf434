package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	clientapi "github.com/iudanet/servermanager/internal/client/api"
	"github.com/iudanet/servermanager/internal/client/state"
	"github.com/iudanet/servermanager/internal/models"
	"github.com/iudanet/servermanager/internal/server/middleware"
	"github.com/iudanet/servermanager/internal/validation"
	"github.com/iudanet/servermanager/pkg/api"
)

// maxBodySize ограничивает тело запроса создания сервера
const maxBodySize = 64 << 10

// ActionsHandler превращает HTTP запросы в действия над Projector.
// Каждый ответ содержит состояние, которое эмитировало действие.
type ActionsHandler struct {
	logger    *slog.Logger
	projector Projector
}

// NewActionsHandler создает handler действий дашборда
func NewActionsHandler(logger *slog.Logger, projector Projector) *ActionsHandler {
	return &ActionsHandler{
		logger:    logger,
		projector: projector,
	}
}

// State обрабатывает GET /api/v1/state
func (h *ActionsHandler) State(w http.ResponseWriter, r *http.Request) {
	h.sendState(w, h.projector.State(), http.StatusOK)
}

// Load обрабатывает POST /actions/load
func (h *ActionsHandler) Load(w http.ResponseWriter, r *http.Request) {
	st := h.projector.LoadServers(actionContext(r))
	h.sendState(w, st, http.StatusOK)
}

// Ping обрабатывает POST /actions/ping/{ip}
func (h *ActionsHandler) Ping(w http.ResponseWriter, r *http.Request) {
	ip := r.PathValue("ip")
	if err := validation.ValidateIPAddress(ip); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	st := h.projector.PingServer(actionContext(r), ip)
	h.sendState(w, st, http.StatusOK)
}

// Filter обрабатывает POST /actions/filter/{status}
func (h *ActionsHandler) Filter(w http.ResponseWriter, r *http.Request) {
	filter, err := models.ParseFilter(r.PathValue("status"))
	if err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	st := h.projector.FilterServers(actionContext(r), filter)
	h.sendState(w, st, http.StatusOK)
}

// Save обрабатывает POST /actions/servers
func (h *ActionsHandler) Save(w http.ResponseWriter, r *http.Request) {
	var input api.ServerInput
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(&input); err != nil {
		h.logger.Warn("failed to decode server input", slog.Any("error", err))
		sendError(h.logger, w, "Invalid request body", http.StatusBadRequest)
		return
	}

	input = validation.SanitizeServerInput(input)
	if err := validation.ValidateServerInput(input); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	st := h.projector.SaveServer(actionContext(r), input)
	h.sendState(w, st, http.StatusCreated)
}

// Delete обрабатывает DELETE /actions/servers/{id}
func (h *ActionsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		sendError(h.logger, w, fmt.Sprintf("invalid server id %q", r.PathValue("id")), http.StatusBadRequest)
		return
	}

	st := h.projector.DeleteServer(actionContext(r), id)
	h.sendState(w, st, http.StatusOK)
}

// sendState отвечает состоянием; okStatus используется для LOADED
func (h *ActionsHandler) sendState(w http.ResponseWriter, st models.AppState, okStatus int) {
	sendJSON(h.logger, w, st, stateStatusCode(st, okStatus))
}

func stateStatusCode(st models.AppState, okStatus int) int {
	switch st.DataState {
	case models.DataStateLoaded:
		return okStatus
	case models.DataStateLoading:
		return http.StatusAccepted
	case models.DataStateError:
		if errors.Is(st.Err, state.ErrNoSnapshot) || errors.Is(st.Err, state.ErrServerNotInSnapshot) {
			return http.StatusConflict
		}
		return http.StatusBadGateway
	default:
		panic(fmt.Sprintf("handlers: unknown data state %q", st.DataState))
	}
}

// actionContext не отменяется вместе с запросом: результат нужен подписчикам
// websocket. Request id передаётся дальше в backend.
func actionContext(r *http.Request) context.Context {
	ctx := context.WithoutCancel(r.Context())
	if id := middleware.RequestIDFromContext(ctx); id != "" {
		ctx = clientapi.ContextWithRequestID(ctx, id)
	}
	return ctx
}
