package health

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/liftadmin/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Prober reports whether the elevator-parts API answers at all.
type Prober interface {
	CheckAPIStatus(ctx context.Context) bool
}

// Handler holds dependencies needed for health checks.
type Handler struct {
	API     Prober
	BaseURL string
	Log     *zap.Logger
}

// NewHandler constructs a health Handler with the backend prober and logger.
func NewHandler(api Prober, baseURL string, logger *zap.Logger) *Handler {
	return &Handler{
		API:     api,
		BaseURL: baseURL,
		Log:     logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status  string `json:"status"`
	Backend string `json:"backend"`
	API     string `json:"api,omitempty"`
	Message string `json:"message,omitempty"`
}

// Serve handles GET /health.
//
// When the backend answers: 200 and
//
//	{ "status":"ok", "backend":"reachable", "api":"https://…" }
//
// When it does not: 503 and
//
//	{ "status":"degraded", "backend":"unreachable", "message":"Backend API unavailable" }
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Probe())
	defer cancel()

	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{
		Status:  "ok",
		Backend: "reachable",
		API:     h.BaseURL,
	}

	if !h.API.CheckAPIStatus(ctx) {
		h.Log.Warn("health-check: backend probe failed", zap.String("api", h.BaseURL))
		w.WriteHeader(http.StatusServiceUnavailable)
		resp.Status = "degraded"
		resp.Backend = "unreachable"
		resp.Message = "Backend API unavailable"
	}

	_ = json.NewEncoder(w).Encode(resp)
}
