// internal/app/features/dashboard/handler.go
package dashboard

import (
	"context"
	"encoding/json"
	"net/http"

	dashboardstore "github.com/dalemusser/liftadmin/internal/app/store/dashboard"
	"github.com/dalemusser/liftadmin/internal/app/system/fetchstate"
	"github.com/dalemusser/liftadmin/internal/app/system/i18n"
	"github.com/dalemusser/liftadmin/internal/app/system/metrics"
	"github.com/dalemusser/liftadmin/internal/app/system/notify"
	"github.com/dalemusser/liftadmin/internal/app/system/viewdata"
	"github.com/dalemusser/liftadmin/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// State is the dashboard's fetch state.
type State = fetchstate.State[models.DashboardData]

// Source loads the dashboard slices.
type Source interface {
	Fetch(ctx context.Context) dashboardstore.Result
}

type Handler struct {
	Store   Source
	Metrics *metrics.Metrics
	Log     *zap.Logger
}

func NewHandler(store Source, m *metrics.Metrics, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Metrics: m, Log: logger}
}

// load runs one dashboard cycle. Any failed slice produces exactly one
// warning on n.
func (h *Handler) load(ctx context.Context, n notify.Notifier) State {
	s := fetchstate.Reduce(fetchstate.New[models.DashboardData](), fetchstate.Started{})

	res := h.Store.Fetch(ctx)
	s = fetchstate.Reduce(s, fetchstate.Settled[models.DashboardData]{
		Data:     res.Data,
		Total:    4,
		Failures: res.Failures,
	})

	if len(res.Failures) > 0 {
		labels := make([]string, 0, len(res.Failures))
		for _, f := range res.Failures {
			h.Log.Warn("dashboard slice failed", zap.String("slice", f.Slice), zap.Error(f.Err))
			labels = append(labels, SliceLabel(f.Slice))
		}
		n.Warning(i18n.T(i18n.MsgDashboardPartial, fetchstate.JoinSlices(labels)))
	}
	h.Metrics.ObserveCycle("dashboard", string(s.Status))
	return s
}

// ServeDashboard handles GET /dashboard.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	toasts := notify.NewCollector(h.Metrics)
	s := h.load(r.Context(), toasts)

	data := buildPageData(s)
	data.BaseVM = viewdata.NewBaseVM(w, r, i18n.T(i18n.MsgNavDashboard), "/dashboard")
	data.BaseVM.Toasts = append(data.BaseVM.Toasts, toasts.Toasts()...)

	h.Log.Debug("dashboard served", zap.String("status", string(s.Status)))

	templates.Render(w, r, "dashboard_page", data)
}

// dataResponse is the JSON shape of GET /dashboard/data.
type dataResponse struct {
	State  State          `json:"state"`
	Toasts []notify.Toast `json:"toasts"`
}

// ServeData handles GET /dashboard/data.
func (h *Handler) ServeData(w http.ResponseWriter, r *http.Request) {
	toasts := notify.NewCollector(h.Metrics)
	s := h.load(r.Context(), toasts)

	resp := dataResponse{State: s, Toasts: toasts.Toasts()}
	if resp.Toasts == nil {
		resp.Toasts = []notify.Toast{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.Log.Warn("dashboard data: encode failed", zap.Error(err))
	}
}

// SliceLabel is the Persian name of a dashboard slice.
func SliceLabel(slice string) string {
	switch slice {
	case dashboardstore.SliceStats:
		return i18n.T(i18n.MsgDashboardStats)
	case dashboardstore.SliceTrend:
		return i18n.T(i18n.MsgDashboardTrend)
	case dashboardstore.SliceDistribution:
		return i18n.T(i18n.MsgDashboardPie)
	case dashboardstore.SliceActivities:
		return i18n.T(i18n.MsgDashboardActs)
	default:
		return slice
	}
}
