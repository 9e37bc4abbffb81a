// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/liftadmin/internal/app/system/i18n"
	"github.com/dalemusser/liftadmin/internal/app/system/viewdata"
)

// pageData is the basic view model for error pages.
type pageData struct {
	viewdata.BaseVM
	Status  int
	Message string
}

// Handler is the errors feature handler.
// No backend needed; it just renders templates.
type Handler struct{}

// NewHandler constructs an errors Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// NotFound renders the friendly 404 page.
// Mounted as the router's NotFound handler.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	RenderError(w, r, http.StatusNotFound, i18n.T(i18n.MsgNotFound))
}

// TooManyRequests renders the 429 page for rate-limited submissions.
func (h *Handler) TooManyRequests(w http.ResponseWriter, r *http.Request) {
	RenderError(w, r, http.StatusTooManyRequests, i18n.T(i18n.MsgTooMany))
}

// Forbidden renders the 403 page shown when a form's CSRF token is rejected.
func (h *Handler) Forbidden(w http.ResponseWriter, r *http.Request) {
	RenderError(w, r, http.StatusForbidden, i18n.T(i18n.MsgForbidden))
}
