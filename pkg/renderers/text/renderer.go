package text

import (
	"context"
	"errors"
	"fmt"

	internalmodel "github.com/goliatone/go-ctxgen/internal/model"
	"github.com/goliatone/go-ctxgen/pkg/model"
	"github.com/goliatone/go-ctxgen/pkg/render"
	"github.com/goliatone/go-ctxgen/pkg/render/template"
	"github.com/goliatone/go-ctxgen/pkg/render/template/pongo"
)

// Format names the built-in output layouts.
type Format string

const (
	FormatPlain    Format = "plain"
	FormatXML      Format = "xml"
	FormatMarkdown Format = "markdown"
)

// Formats lists the built-in formats in presentation order.
func Formats() []Format {
	return []Format{FormatPlain, FormatXML, FormatMarkdown}
}

// formatSpec describes one layout. The XML layout relies on pongo2
// autoescaping for user text; the other layouts turn it off.
type formatSpec struct {
	contentType string
	extension   string
	template    string
}

var formatSpecs = map[Format]formatSpec{
	FormatPlain:    {contentType: "text/plain", extension: ".txt", template: "plain"},
	FormatXML:      {contentType: "application/xml", extension: ".xml", template: "xml"},
	FormatMarkdown: {contentType: "text/markdown", extension: ".md", template: "markdown"},
}

// Renderer renders a model.Document through one template layout.
type Renderer struct {
	format      Format
	spec        formatSpec
	engine      template.TemplateRenderer
	templateDir string
}

var _ render.Renderer = (*Renderer)(nil)

// Option configures a Renderer.
type Option func(*Renderer)

// WithEngine reuses an existing template engine.
func WithEngine(engine template.TemplateRenderer) Option {
	return func(r *Renderer) {
		if engine != nil {
			r.engine = engine
		}
	}
}

// WithTemplateDir loads layouts from dir before falling back to the embedded
// set, letting users override a format without rebuilding.
func WithTemplateDir(dir string) Option {
	return func(r *Renderer) {
		r.templateDir = dir
	}
}

// New constructs the renderer for format.
func New(format Format, options ...Option) (*Renderer, error) {
	spec, ok := formatSpecs[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", render.ErrUnknownFormat, format)
	}
	r := &Renderer{format: format, spec: spec}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.engine == nil {
		engine, err := NewEngine(r.templateDir)
		if err != nil {
			return nil, err
		}
		r.engine = engine
	}
	if err := prepareEngine(r.engine); err != nil {
		return nil, err
	}
	return r, nil
}

// NewEngine builds the pongo2 engine over the embedded layouts, optionally
// layered under an override directory.
func NewEngine(templateDir string) (*pongo.Engine, error) {
	opts := []pongo.Option{pongo.WithFS(TemplatesFS())}
	if templateDir != "" {
		opts = append(opts, pongo.WithBaseDir(templateDir))
	}
	engine, err := pongo.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("text: template engine: %w", err)
	}
	return engine, nil
}

// RegisterDefaults registers every built-in format on registry, sharing one
// template engine.
func RegisterDefaults(registry *render.Registry, options ...Option) error {
	if registry == nil {
		return errors.New("text: registry is required")
	}
	base := &Renderer{}
	for _, opt := range options {
		if opt != nil {
			opt(base)
		}
	}
	engine := base.engine
	if engine == nil {
		built, err := NewEngine(base.templateDir)
		if err != nil {
			return err
		}
		engine = built
	}
	for _, format := range Formats() {
		r, err := New(format, append(options, WithEngine(engine))...)
		if err != nil {
			return err
		}
		if err := registry.Register(r); err != nil {
			return err
		}
	}
	return nil
}

// Name reports the format identifier.
func (r *Renderer) Name() string {
	return string(r.format)
}

// ContentType reports the MIME type of the output.
func (r *Renderer) ContentType() string {
	return r.spec.contentType
}

// Extension reports the suggested file extension.
func (r *Renderer) Extension() string {
	return r.spec.extension
}

// Render executes the format layout for doc.
func (r *Renderer) Render(ctx context.Context, doc model.Document) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("text: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out, err := r.engine.RenderTemplate(r.spec.template, documentContext(doc))
	if err != nil {
		return nil, fmt.Errorf("text: render %s: %w", r.format, err)
	}
	return []byte(out), nil
}

func documentContext(doc model.Document) map[string]any {
	env := doc.Envelope.Resolve(doc.Kind)
	sections := make([]any, 0, len(doc.Sections))
	for _, section := range doc.Sections {
		sections = append(sections, sectionContext(section))
	}
	return map[string]any{
		"kind":           string(doc.Kind),
		"title":          doc.Title,
		"generated":      doc.Generated,
		"generator":      env.Generator,
		"type_label":     env.TypeLabel,
		"type_tag":       internalmodel.Tag(env.TypeLabel),
		"heading":        env.Heading,
		"root":           env.Root,
		"request":        env.Request,
		"sections":       sections,
		"blocks":         xmlBlocks(doc.Sections),
		"checklist":      stringsToAny(doc.Checklist),
		"quality_checks": stringsToAny(doc.QualityChecks),
	}
}

func sectionContext(section model.RenderedSection) map[string]any {
	return map[string]any{
		"title":     section.Title,
		"header":    section.Header,
		"tag":       section.Tag,
		"body":      section.Body,
		"inline":    section.Inline,
		"spaced":    section.Spaced,
		"items":     section.Items,
		"attribute": section.Attribute,
	}
}

// xmlBlocks folds grouped sections into one block placed where the first
// member of the group appears. Ungrouped sections stay blocks of their own.
func xmlBlocks(sections []model.RenderedSection) []any {
	var blocks []map[string]any
	groups := make(map[string]map[string]any)
	for _, section := range sections {
		if section.Group == "" {
			block := sectionContext(section)
			block["group"] = ""
			blocks = append(blocks, block)
			continue
		}
		block, ok := groups[section.Group]
		if !ok {
			block = map[string]any{"group": section.Group, "members": []any{}}
			groups[section.Group] = block
			blocks = append(blocks, block)
		}
		block["members"] = append(block["members"].([]any), sectionContext(section))
	}
	out := make([]any, len(blocks))
	for i, block := range blocks {
		out[i] = block
	}
	return out
}

func stringsToAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
