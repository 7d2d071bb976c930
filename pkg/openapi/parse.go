package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-ctxgen/pkg/catalog"
	"github.com/goliatone/go-ctxgen/pkg/model"
)

// Parse reads an OpenAPI document in the shape produced by Build and returns
// the equivalent catalog. Operations without the x-ctxgen extension are
// ignored.
func Parse(ctx context.Context, raw []byte) (*catalog.Catalog, error) {
	if len(raw) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if doc.Paths == nil || doc.Paths.Len() == 0 {
		return nil, errors.New("openapi: document does not contain any paths")
	}

	type ordered struct {
		order int
		tpl   model.Template
	}
	var templates []ordered
	for path, item := range doc.Paths.Map() {
		if item == nil || item.Post == nil {
			continue
		}
		var hints templateHints
		found, err := decodeExtension(item.Post.Extensions, ctxgenExtension, &hints)
		if err != nil {
			return nil, err
		}
		if !found {
			continue
		}
		if hints.Kind == "" {
			hints.Kind = strings.TrimPrefix(path, PathPrefix)
		}
		tpl, err := parseTemplate(item.Post, hints)
		if err != nil {
			return nil, err
		}
		templates = append(templates, ordered{order: hints.Order, tpl: tpl})
	}
	if len(templates) == 0 {
		return nil, errors.New("openapi: no template operations found")
	}

	sort.SliceStable(templates, func(i, j int) bool {
		if templates[i].order == templates[j].order {
			return templates[i].tpl.Kind < templates[j].tpl.Kind
		}
		return templates[i].order < templates[j].order
	})
	out := make([]model.Template, 0, len(templates))
	for _, entry := range templates {
		out = append(out, entry.tpl)
	}
	return catalog.New(out...)
}

type parsedField struct {
	field model.Field
	order int
}

func parseTemplate(op *openapi3.Operation, hints templateHints) (model.Template, error) {
	tpl := model.Template{
		Kind:          model.TemplateKind(hints.Kind),
		Title:         op.Summary,
		Envelope:      hints.Envelope,
		Sections:      hints.Sections,
		Checklist:     hints.Checklist,
		QualityChecks: hints.QualityChecks,
	}
	schema := requestSchema(op)
	if schema == nil {
		return model.Template{}, fmt.Errorf("openapi: %s: missing JSON request body", hints.Kind)
	}

	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	var fields []parsedField
	for name, ref := range schema.Properties {
		if ref == nil || ref.Value == nil {
			continue
		}
		parsed, err := parseField(name, ref.Value, required[name])
		if err != nil {
			return model.Template{}, fmt.Errorf("openapi: %s: %w", hints.Kind, err)
		}
		fields = append(fields, parsed)
	}
	sort.SliceStable(fields, func(i, j int) bool { return fields[i].order < fields[j].order })

	for _, parsed := range fields {
		tpl.Fields = append(tpl.Fields, parsed.field)
	}
	return tpl, nil
}

func requestSchema(op *openapi3.Operation) *openapi3.Schema {
	if op.RequestBody == nil || op.RequestBody.Value == nil {
		return nil
	}
	media := op.RequestBody.Value.Content.Get("application/json")
	if media == nil || media.Schema == nil {
		return nil
	}
	return media.Schema.Value
}

func parseField(name string, schema *openapi3.Schema, required bool) (parsedField, error) {
	var hints fieldHints
	if _, err := decodeExtension(schema.Extensions, formgenExtension, &hints); err != nil {
		return parsedField{}, err
	}
	label := hints.Label
	if label == "" {
		label = schema.Title
	}
	if label == "" {
		label = name
	}

	var input model.Input
	switch {
	case len(schema.Enum) > 0:
		options := make([]string, 0, len(schema.Enum))
		for _, value := range schema.Enum {
			options = append(options, fmt.Sprint(value))
		}
		input = model.Choice{Options: options}
	case hints.Widget == widgetTextarea:
		input = model.MultiLine{Height: hints.Rows, Placeholder: hints.Placeholder}
	default:
		input = model.SingleLine{Placeholder: hints.Placeholder}
	}

	field := model.NewField(label, input, required, schema.Description)
	field.Name = name
	return parsedField{field: field, order: hints.Order}, nil
}
