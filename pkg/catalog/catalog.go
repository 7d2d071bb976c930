package catalog

import (
	"fmt"
	"strings"
	"sync"

	internalmodel "github.com/goliatone/go-ctxgen/internal/model"
	"github.com/goliatone/go-ctxgen/pkg/model"
)

// Catalog maps template kinds to their definitions. Insertion order is display
// order. A Catalog is immutable once built.
type Catalog struct {
	order     []model.TemplateKind
	templates map[model.TemplateKind]model.Template
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the process-wide catalog of built-in templates.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = mustNew(builtinTemplates()...)
	})
	return defaultCatalog
}

// New builds a catalog from the given templates. Duplicate kinds, duplicate
// labels and sections pointing at unknown fields are rejected.
func New(templates ...model.Template) (*Catalog, error) {
	c := &Catalog{
		templates: make(map[model.TemplateKind]model.Template, len(templates)),
	}
	for _, tpl := range templates {
		if strings.TrimSpace(string(tpl.Kind)) == "" {
			return nil, fmt.Errorf("catalog: template kind is required")
		}
		if _, exists := c.templates[tpl.Kind]; exists {
			return nil, fmt.Errorf("catalog: duplicate template kind %q", tpl.Kind)
		}
		if err := validateTemplate(tpl); err != nil {
			return nil, err
		}
		if tpl.Title == "" {
			tpl.Title = tpl.Kind.Title()
		}
		c.order = append(c.order, tpl.Kind)
		c.templates[tpl.Kind] = tpl
	}
	return c, nil
}

func mustNew(templates ...model.Template) *Catalog {
	c, err := New(templates...)
	if err != nil {
		panic(err)
	}
	return c
}

func validateTemplate(tpl model.Template) error {
	labels := make(map[string]struct{}, len(tpl.Fields))
	for _, field := range tpl.Fields {
		if field.Label == "" {
			return fmt.Errorf("catalog: %s: field label is required", tpl.Kind)
		}
		if _, dup := labels[field.Label]; dup {
			return fmt.Errorf("catalog: %s: duplicate field %q", tpl.Kind, field.Label)
		}
		if field.Input == nil {
			return fmt.Errorf("catalog: %s: field %q has no input", tpl.Kind, field.Label)
		}
		if choice, ok := field.Input.(model.Choice); ok && len(choice.Options) == 0 {
			return fmt.Errorf("catalog: %s: choice field %q has no options", tpl.Kind, field.Label)
		}
		labels[field.Label] = struct{}{}
	}
	for _, section := range tpl.Sections {
		if err := validateSection(tpl.Kind, section, labels); err != nil {
			return err
		}
	}
	return nil
}

func validateSection(kind model.TemplateKind, section model.Section, labels map[string]struct{}) error {
	switch {
	case section.Field == "" && section.Static == "":
		return fmt.Errorf("catalog: %s: section %q has neither a field nor a static body", kind, section.Header)
	case section.Field != "" && section.Static != "":
		return fmt.Errorf("catalog: %s: section %q has both a field and a static body", kind, section.Header)
	case section.Attribute != "" && section.Group == "":
		return fmt.Errorf("catalog: %s: attribute section %q needs a group", kind, section.Header)
	}
	if section.Field != "" {
		if _, ok := labels[section.Field]; !ok {
			return fmt.Errorf("catalog: %s: section %q references unknown field %q", kind, section.Header, section.Field)
		}
	}
	for _, part := range section.Parts {
		if _, ok := labels[part.Field]; !ok {
			return fmt.Errorf("catalog: %s: section %q references unknown field %q", kind, section.Header, part.Field)
		}
	}
	return nil
}

// Kinds returns the template kinds in display order.
func (c *Catalog) Kinds() []model.TemplateKind {
	return append([]model.TemplateKind(nil), c.order...)
}

// Has reports whether kind is part of the catalog.
func (c *Catalog) Has(kind model.TemplateKind) bool {
	_, ok := c.templates[kind]
	return ok
}

// Template returns the full definition of kind.
func (c *Catalog) Template(kind model.TemplateKind) (model.Template, error) {
	tpl, ok := c.templates[kind]
	if !ok {
		return model.Template{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return tpl, nil
}

// Fields returns the ordered field descriptors of kind.
func (c *Catalog) Fields(kind model.TemplateKind) ([]model.Field, error) {
	tpl, err := c.Template(kind)
	if err != nil {
		return nil, err
	}
	return append([]model.Field(nil), tpl.Fields...), nil
}

// MustFields panics when kind is unknown. Use it for kinds that are compiled in.
func (c *Catalog) MustFields(kind model.TemplateKind) []model.Field {
	fields, err := c.Fields(kind)
	if err != nil {
		panic(err)
	}
	return fields
}

// ParseKind resolves user input such as "bug-report", "Bug Report" or
// "bug_report" to a catalog kind.
func (c *Catalog) ParseKind(raw string) (model.TemplateKind, error) {
	normalised := model.TemplateKind(internalmodel.FieldName(raw))
	if c.Has(normalised) {
		return normalised, nil
	}
	for _, kind := range c.order {
		if strings.EqualFold(c.templates[kind].Title, strings.TrimSpace(raw)) {
			return kind, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, raw)
}
