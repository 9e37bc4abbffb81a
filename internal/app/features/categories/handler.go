// internal/app/features/categories/handler.go
package categories

import (
	"encoding/json"
	"net/http"

	errorsfeature "github.com/dalemusser/liftadmin/internal/app/features/errors"
	categorystore "github.com/dalemusser/liftadmin/internal/app/store/categories"
	"github.com/dalemusser/liftadmin/internal/app/system/fetchstate"
	"github.com/dalemusser/liftadmin/internal/app/system/i18n"
	"github.com/dalemusser/liftadmin/internal/app/system/notify"
	"github.com/dalemusser/liftadmin/internal/app/system/viewdata"
	"github.com/dalemusser/liftadmin/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

type Handler struct {
	Loader *Loader
	ErrLog *errorsfeature.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(loader *Loader, logger *zap.Logger) *Handler {
	return &Handler{Loader: loader, ErrLog: errorsfeature.NewErrorLogger(logger), Log: logger}
}

// statCard is one KPI tile.
type statCard struct {
	Key    string
	Label  string
	Value  string
	Failed bool
}

type pageData struct {
	viewdata.BaseVM

	Status    fetchstate.Status
	Banner    *fetchstate.Banner
	Cards     []statCard
	APIKnown  bool
	APIUp     bool
	APILabel  string
	Retrying  bool
	Partial   bool
	AllFailed bool
}

// stateResponse is the JSON shape of GET /categories/state.
type stateResponse struct {
	State       State               `json:"state"`
	Transitions []fetchstate.Status `json:"transitions"`
	Toasts      []notify.Toast      `json:"toasts"`
}

// ServePage handles GET /categories: one full fetch cycle, rendered.
func (h *Handler) ServePage(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, false)
}

// ServeRetry handles POST /categories/retry. The previous cycle's error
// state is cleared before the new results land.
func (h *Handler) ServeRetry(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, true)
}

func (h *Handler) serve(w http.ResponseWriter, r *http.Request, retry bool) {
	toasts := notify.NewCollector(h.Loader.Metrics)
	s := h.Loader.Cycle(r.Context(), fetchstate.New[models.CategoryStats](), retry, toasts, nil)
	if r.URL.Query().Get("banner") == "off" {
		s = fetchstate.Reduce(s, fetchstate.Dismissed{})
	}

	data := buildPageData(s)
	data.BaseVM = viewdata.NewBaseVM(w, r, i18n.T(i18n.MsgNavCategories), "/dashboard")
	data.BaseVM.Toasts = append(data.BaseVM.Toasts, toasts.Toasts()...)
	data.Retrying = retry

	h.Log.Debug("categories page served",
		zap.String("status", string(s.Status)),
		zap.Bool("retry", retry))

	templates.Render(w, r, "categories_page", data)
}

// ServeState handles GET /categories/state: the same cycle as JSON, with
// every intermediate status. ?retry=1 starts from a retry.
func (h *Handler) ServeState(w http.ResponseWriter, r *http.Request) {
	retry := r.URL.Query().Get("retry") == "1"

	toasts := notify.NewCollector(h.Loader.Metrics)
	var transitions []fetchstate.Status
	s := h.Loader.Cycle(r.Context(), fetchstate.New[models.CategoryStats](), retry, toasts,
		func(st State) { transitions = append(transitions, st.Status) })

	resp := stateResponse{State: s, Transitions: transitions, Toasts: toasts.Toasts()}
	if resp.Toasts == nil {
		resp.Toasts = []notify.Toast{}
	}

	body, err := json.Marshal(resp)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "categories state: encode failed", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(append(body, '\n'))
}

// buildPageData maps a settled State onto the view model.
func buildPageData(s State) pageData {
	failed := map[string]bool{}
	for _, f := range s.Failed {
		failed[f] = true
	}

	data := pageData{
		Status:    s.Status,
		Banner:    s.Banner,
		Partial:   s.Status == fetchstate.StatusPartialSuccess,
		AllFailed: s.Status == fetchstate.StatusError,
		Cards: []statCard{
			{Key: "partsCategories", Label: i18n.T(i18n.MsgPartsCategories), Value: i18n.Number(s.Data.PartsCategories), Failed: failed[categorystore.SliceParts]},
			{Key: "elevatorTypes", Label: i18n.T(i18n.MsgElevatorTypes), Value: i18n.Number(s.Data.ElevatorTypes), Failed: failed[categorystore.SliceElevators]},
			{Key: "activeItems", Label: i18n.T(i18n.MsgActiveItems), Value: i18n.Number(s.Data.ActiveItems)},
			{Key: "totalManagement", Label: i18n.T(i18n.MsgTotalManagement), Value: i18n.Number(s.Data.TotalManagement)},
		},
	}
	if s.APIAvailable != nil {
		data.APIKnown = true
		data.APIUp = *s.APIAvailable
		if data.APIUp {
			data.APILabel = i18n.T(i18n.MsgAPIAvailable)
		} else {
			data.APILabel = i18n.T(i18n.MsgAPIUnavailable)
		}
	}
	return data
}
