package handlers

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/iudanet/servermanager/internal/client/state"
	"github.com/iudanet/servermanager/internal/models"
	"github.com/iudanet/servermanager/pkg/api"
)

//go:embed templates/dashboard.html
var templateFS embed.FS

var dashboardTemplate = template.Must(template.New("dashboard.html").Funcs(template.FuncMap{
	"statusLabel": func(s api.Status) string { return s.Label() },
	"isUp":        func(s api.Status) bool { return s == api.StatusUp },
}).ParseFS(templateFS, "templates/dashboard.html"))

// dashboardView is what the page template renders.
type dashboardView struct {
	Rows          []api.Server
	Statuses      []api.Status
	Filters       []models.Filter
	DataState     models.DataState
	Message       string
	Error         string
	Version       string
	DefaultStatus api.Status
	Loading       bool // первая загрузка
	InProgress    bool // save или delete в процессе
}

// DashboardHandler отдает страницу дашборда
type DashboardHandler struct {
	logger    *slog.Logger
	projector Projector
	version   string
}

// NewDashboardHandler создает handler страницы
func NewDashboardHandler(logger *slog.Logger, projector Projector, version string) *DashboardHandler {
	return &DashboardHandler{
		logger:    logger,
		projector: projector,
		version:   version,
	}
}

// Page обрабатывает GET /
func (h *DashboardHandler) Page(w http.ResponseWriter, r *http.Request) {
	view := newDashboardView(h.projector.State(), h.projector.IsLoading())
	view.Version = h.version

	var buf bytes.Buffer
	if err := dashboardTemplate.Execute(&buf, view); err != nil {
		h.logger.Error("failed to render dashboard", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = buf.WriteTo(w)
}

func newDashboardView(st models.AppState, inProgress bool) dashboardView {
	view := dashboardView{
		DataState:     st.DataState,
		Statuses:      []api.Status{api.StatusUp, api.StatusDown},
		Filters:       []models.Filter{models.FilterAll, models.FilterUp, models.FilterDown},
		DefaultStatus: state.DefaultFormStatus,
		InProgress:    inProgress,
	}

	switch st.DataState {
	case models.DataStateLoading:
		view.Loading = true
	case models.DataStateLoaded:
		view.Rows = st.Servers()
		view.Message = st.Message()
	case models.DataStateError:
		view.Error = st.Message()
	default:
		panic(fmt.Sprintf("handlers: unknown data state %q", st.DataState))
	}
	return view
}
