// Package ctxgen builds structured context documents for AI assistants from a
// catalog of form templates.
//
// The quickest path is Generate:
//
//	text, err := ctxgen.Generate(ctx, ctxgen.KindBugReport, map[string]string{
//		"bug_title": "Login fails",
//	}, "markdown")
//
// Lower level building blocks live in pkg/catalog, pkg/form, pkg/assemble and
// pkg/export.
package ctxgen

import (
	"context"
	"fmt"

	"github.com/goliatone/go-ctxgen/pkg/assemble"
	"github.com/goliatone/go-ctxgen/pkg/catalog"
	"github.com/goliatone/go-ctxgen/pkg/form"
	"github.com/goliatone/go-ctxgen/pkg/model"
)

// TemplateKind aliases model.TemplateKind.
type TemplateKind = model.TemplateKind

// Template aliases model.Template.
type Template = model.Template

// Field aliases model.Field.
type Field = model.Field

// Document aliases model.Document.
type Document = model.Document

// Built-in template kinds.
const (
	KindAppDevelopment = model.KindAppDevelopment
	KindMCPDevelopment = model.KindMCPDevelopment
	KindBugReport      = model.KindBugReport
	KindFeatureRequest = model.KindFeatureRequest

	KindWebApp     = model.KindWebApp
	KindDesktopApp = model.KindDesktopApp
	KindCLITool    = model.KindCLITool
	KindAPIService = model.KindAPIService
	KindMobileApp  = model.KindMobileApp
)

// DefaultCatalog returns the built-in templates.
func DefaultCatalog() *catalog.Catalog {
	return catalog.Default()
}

// NewSession exposes the form session constructor from the top-level module.
func NewSession(cat *catalog.Catalog, options ...form.Option) *form.Session {
	return form.NewSession(cat, options...)
}

// NewAssembler exposes the assembler constructor from the top-level module.
func NewAssembler(options ...assemble.Option) (*assemble.Assembler, error) {
	return assemble.New(options...)
}

// Generate renders kind with values (keyed by field name or label) in format.
// Values go through the same collection rules as interactive input.
func Generate(ctx context.Context, kind TemplateKind, values map[string]string, format string, options ...assemble.Option) (string, error) {
	asm, err := assemble.New(options...)
	if err != nil {
		return "", err
	}
	return GenerateWith(ctx, asm, catalog.Default(), kind, values, format)
}

// GenerateWith is Generate with an explicit assembler and catalog. The
// assembler must have been built over the same catalog.
func GenerateWith(ctx context.Context, asm *assemble.Assembler, cat *catalog.Catalog, kind TemplateKind, values map[string]string, format string) (string, error) {
	if asm == nil {
		return "", fmt.Errorf("ctxgen: assembler is required")
	}
	state, err := form.NewSession(cat).Render(kind)
	if err != nil {
		return "", err
	}
	for key, value := range values {
		if err := state.SetByName(key, value); err != nil {
			return "", err
		}
	}
	return asm.Assemble(ctx, kind, form.Collect(state), format)
}
