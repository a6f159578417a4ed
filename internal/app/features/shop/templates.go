// internal/app/features/shop/templates.go
package shop

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "shop",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
