package template

import (
	"io"
)

// TemplateRenderer is the seam output renderers rely on to execute named
// templates.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
