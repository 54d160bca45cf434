package handlers

import (
	"bytes"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/iudanet/servermanager/internal/client/export"
	"github.com/iudanet/servermanager/internal/models"
)

// ReportHandler отдает отчет по текущим строкам таблицы
type ReportHandler struct {
	logger    *slog.Logger
	projector Projector
}

// NewReportHandler создает handler отчета
func NewReportHandler(logger *slog.Logger, projector Projector) *ReportHandler {
	return &ReportHandler{
		logger:    logger,
		projector: projector,
	}
}

// Report обрабатывает GET /report.
// В отчет попадают строки, которые сейчас на экране (с учетом фильтра).
func (h *ReportHandler) Report(w http.ResponseWriter, r *http.Request) {
	st := h.projector.State()
	if st.DataState != models.DataStateLoaded {
		sendError(h.logger, w, "no servers are rendered, load the list first", http.StatusConflict)
		return
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, st.Servers()); err != nil {
		h.logger.Error("failed to render report", slog.Any("error", err))
		sendError(h.logger, w, "failed to render report", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.FileName+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)

	h.logger.Info("report downloaded", "rows", len(st.Servers()))
}
