package ctxgen

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-ctxgen/pkg/catalog"
	"github.com/goliatone/go-ctxgen/pkg/openapi"
	"github.com/goliatone/go-ctxgen/pkg/renderers/text"
)

// EmbeddedTemplates exposes the built-in output format templates so callers
// can copy and override them (see text.WithTemplateDir).
func EmbeddedTemplates() fs.FS {
	return text.TemplatesFS()
}

// ExportTemplates encodes cat as an OpenAPI 3 document.
func ExportTemplates(cat *catalog.Catalog) ([]byte, error) {
	return openapi.Marshal(cat)
}

// LoadTemplates reads a catalog from an OpenAPI document produced by
// ExportTemplates (or written by hand in the same shape).
func LoadTemplates(ctx context.Context, raw []byte) (*catalog.Catalog, error) {
	return openapi.Parse(ctx, raw)
}
