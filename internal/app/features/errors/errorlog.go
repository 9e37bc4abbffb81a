// internal/app/features/errors/errorlog.go
package errors

import (
	"net/http"

	"github.com/dalemusser/liftadmin/internal/app/system/i18n"
	"go.uber.org/zap"
)

// ErrorLogger logs handler failures and renders the matching error page.
// Handlers hold one instead of calling http.Error directly.
type ErrorLogger struct {
	Log *zap.Logger
}

func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{Log: logger}
}

// LogServerError logs err at error level and renders a 500 page.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, msg string, err error, fields ...zap.Field) {
	e.Log.Error(msg, append(requestFields(r, err), fields...)...)
	RenderError(w, r, http.StatusInternalServerError, i18n.T(i18n.MsgInternalError))
}

// LogBadRequest logs err at warn level and renders a 400 page.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, msg string, err error, fields ...zap.Field) {
	e.Log.Warn(msg, append(requestFields(r, err), fields...)...)
	RenderError(w, r, http.StatusBadRequest, i18n.T(i18n.MsgBadRequest))
}

func requestFields(r *http.Request, err error) []zap.Field {
	fields := []zap.Field{
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	return fields
}
