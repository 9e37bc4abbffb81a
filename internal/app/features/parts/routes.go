// internal/app/features/parts/routes.go
package parts

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes wires the parts page. Mount at "/parts". mw wraps every route;
// production passes rate limiting and CSRF protection.
func Routes(h *Handler, mw ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(mw...)
	r.Get("/", h.ServeList)
	r.Post("/categories", h.CreateCategory)
	r.Post("/elevator-types", h.CreateElevatorType)
	return r
}
