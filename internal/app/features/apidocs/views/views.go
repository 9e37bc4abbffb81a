// internal/app/features/apidocs/views/views.go
package apidocsviews

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "apidocs",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
