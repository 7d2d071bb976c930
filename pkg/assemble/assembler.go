package assemble

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-ctxgen/pkg/catalog"
	"github.com/goliatone/go-ctxgen/pkg/model"
	"github.com/goliatone/go-ctxgen/pkg/render"
	"github.com/goliatone/go-ctxgen/pkg/renderers/text"
)

// TimestampLayout renders "Weekday, YYYY-MM-DDThh:mm:ss.mmm±hh:mm" using the
// offset of the clock's location.
const TimestampLayout = "Monday, 2006-01-02T15:04:05.000-07:00"

// DefaultFormat is used when Assemble is called with an empty format name.
const DefaultFormat = string(text.FormatPlain)

// Assembler turns collected form data into a context document.
type Assembler struct {
	catalog  *catalog.Catalog
	registry *render.Registry
	now      func() time.Time
	logger   zerolog.Logger
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithCatalog overrides the template catalog.
func WithCatalog(cat *catalog.Catalog) Option {
	return func(a *Assembler) {
		if cat != nil {
			a.catalog = cat
		}
	}
}

// WithRegistry overrides the output format registry.
func WithRegistry(registry *render.Registry) Option {
	return func(a *Assembler) {
		if registry != nil {
			a.registry = registry
		}
	}
}

// WithClock overrides the time source used for the generation timestamp.
func WithClock(now func() time.Time) Option {
	return func(a *Assembler) {
		if now != nil {
			a.now = now
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(a *Assembler) {
		a.logger = logger
	}
}

// New builds an Assembler. Without a registry the built-in text formats are
// registered.
func New(options ...Option) (*Assembler, error) {
	a := &Assembler{
		catalog: catalog.Default(),
		now:     time.Now,
		logger:  zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(a)
	}
	if a.registry == nil {
		registry := render.NewRegistry()
		if err := text.RegisterDefaults(registry); err != nil {
			return nil, fmt.Errorf("assemble: register formats: %w", err)
		}
		a.registry = registry
	}
	return a, nil
}

// Formats lists the registered output formats.
func (a *Assembler) Formats() []string {
	return a.registry.List()
}

// Renderer returns the renderer registered for format.
func (a *Assembler) Renderer(format string) (render.Renderer, error) {
	if format == "" {
		format = DefaultFormat
	}
	return a.registry.Get(format)
}

// Build resolves data against the layout of kind. Sections appear in the
// layout order. A section without a value is omitted unless it declares a
// fallback literal; static sections are always present.
func (a *Assembler) Build(kind model.TemplateKind, data map[string]string) (model.Document, error) {
	tpl, err := a.catalog.Template(kind)
	if err != nil {
		return model.Document{}, err
	}

	doc := model.Document{
		Kind:          tpl.Kind,
		Title:         tpl.Title,
		Generated:     FormatTimestamp(a.now()),
		Envelope:      tpl.Envelope.Resolve(tpl.Kind),
		Checklist:     append([]string(nil), tpl.Checklist...),
		QualityChecks: append([]string(nil), tpl.QualityChecks...),
	}

	for _, section := range tpl.Sections {
		body, ok := sectionBody(section, data)
		if !ok {
			continue
		}
		doc.Sections = append(doc.Sections, model.RenderedSection{
			Title:     section.DisplayTitle(),
			Header:    section.Header,
			Tag:       section.ElementName(),
			Body:      body,
			Inline:    section.Inline,
			Items:     section.Items,
			Group:     section.Group,
			Attribute: section.Attribute,
		})
	}
	markSpacing(doc.Sections)
	return doc, nil
}

func sectionBody(section model.Section, data map[string]string) (string, bool) {
	if section.Field == "" {
		return section.Static, section.Static != ""
	}
	body := data[section.Field]
	if body == "" {
		if section.Fallback == "" {
			return "", false
		}
		body = section.Fallback
	}
	for _, part := range section.Parts {
		value := data[part.Field]
		if value == "" {
			value = part.Fallback
		}
		if value == "" {
			continue
		}
		body += part.Separator + value
	}
	return body, true
}

// markSpacing ends every block section, and every run of inline sections,
// with a blank line.
func markSpacing(sections []model.RenderedSection) {
	for i := range sections {
		last := i == len(sections)-1
		sections[i].Spaced = !sections[i].Inline || last || !sections[i+1].Inline
	}
}

// Assemble builds the document for kind and renders it with format.
func (a *Assembler) Assemble(ctx context.Context, kind model.TemplateKind, data map[string]string, format string) (string, error) {
	if ctx == nil {
		return "", errors.New("assemble: context is required")
	}
	renderer, err := a.Renderer(format)
	if err != nil {
		return "", err
	}
	doc, err := a.Build(kind, data)
	if err != nil {
		return "", err
	}
	out, err := renderer.Render(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("assemble: %w", err)
	}
	a.logger.Debug().
		Str("kind", string(kind)).
		Str("format", renderer.Name()).
		Int("sections", len(doc.Sections)).
		Int("bytes", len(out)).
		Msg("context assembled")
	return string(out), nil
}

// FormatTimestamp renders t with TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}
