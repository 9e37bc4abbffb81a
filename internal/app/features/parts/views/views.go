// internal/app/features/parts/views/views.go
package partsviews

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "parts",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
