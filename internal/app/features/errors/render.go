// internal/app/features/errors/render.go
package errors

import (
	"net/http"

	"github.com/dalemusser/liftadmin/internal/app/system/i18n"
	"github.com/dalemusser/liftadmin/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

// RenderError writes status and shows the error page with msg.
// The back link always points at the dashboard.
func RenderError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(w, r, Title(status), "/dashboard"),
		Status:  status,
		Message: msg,
	}
	data.BackURL = "/dashboard"

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	templates.Render(w, r, "error_page", data)
}

// Title is the localised page title for an error status.
func Title(status int) string {
	switch status {
	case http.StatusBadRequest:
		return i18n.T(i18n.MsgTitleBadRequest)
	case http.StatusForbidden:
		return i18n.T(i18n.MsgTitleForbidden)
	case http.StatusNotFound:
		return i18n.T(i18n.MsgTitleNotFound)
	case http.StatusTooManyRequests:
		return i18n.T(i18n.MsgTitleTooMany)
	default:
		return i18n.T(i18n.MsgTitleError)
	}
}
