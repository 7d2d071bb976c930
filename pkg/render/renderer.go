package render

import (
	"context"

	"github.com/goliatone/go-ctxgen/pkg/model"
)

// Renderer turns an assembled Document into one output format (plain text,
// XML tagged, Markdown, ...).
type Renderer interface {
	Name() string
	ContentType() string
	// Extension is the file extension, including the dot, suggested for exports.
	Extension() string
	Render(ctx context.Context, doc model.Document) ([]byte, error)
}
