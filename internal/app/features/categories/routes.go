// internal/app/features/categories/routes.go
package categories

import "github.com/go-chi/chi/v5"

// Routes wires the category management page. Mount at "/categories".
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServePage)
	r.Post("/retry", h.ServeRetry)
	r.Get("/state", h.ServeState)
	return r
}
