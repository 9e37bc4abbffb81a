// internal/app/features/apidocs/routes.go
package apidocs

import "github.com/go-chi/chi/v5"

// Routes wires the API documentation viewer. Mount at "/api-docs".
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeDocs)
	r.Get("/openapi.yaml", h.ServeOpenAPI)
	return r
}
