package reportshandler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hrdesk/internal/domain/reports"
	"hrdesk/internal/transport/http/api"
	"hrdesk/internal/transport/http/middleware"
)

type Handler struct {
	Service *reports.Service
	now     func() time.Time
}

func NewHandler(service *reports.Service) *Handler {
	return &Handler{Service: service, now: time.Now}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/stats", h.handleStats)
	r.Get("/reports/overview", h.handleOverview)
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.Dashboard(r.Context(), h.today())
	if err != nil {
		slog.Error("dashboard stats failed", "err", err, "requestId", middleware.GetRequestID(r.Context()))
		api.Fail(w, http.StatusInternalServerError, "Failed to fetch statistics")
		return
	}
	api.Success(w, stats)
}

func (h *Handler) handleOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.Service.Overview(r.Context(), h.today())
	if err != nil {
		slog.Error("reports overview failed", "err", err, "requestId", middleware.GetRequestID(r.Context()))
		api.Fail(w, http.StatusInternalServerError, "Failed to fetch report overview")
		return
	}
	api.Success(w, overview)
}

func (h *Handler) today() string {
	return h.now().Format("2006-01-02")
}
