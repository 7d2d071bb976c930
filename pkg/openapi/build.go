package openapi

import (
	"encoding/json"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-ctxgen/pkg/catalog"
	"github.com/goliatone/go-ctxgen/pkg/model"
)

const (
	// Version is the OpenAPI version emitted by Build.
	Version = "3.0.3"
	// PathPrefix prefixes the generated operation paths.
	PathPrefix = "/contexts/"
)

var responseContentTypes = []string{"text/plain", "text/markdown", "application/xml"}

// Build converts cat into an OpenAPI document.
func Build(cat *catalog.Catalog) (*openapi3.T, error) {
	if cat == nil {
		cat = catalog.Default()
	}

	paths := openapi3.NewPaths()
	for order, kind := range cat.Kinds() {
		tpl, err := cat.Template(kind)
		if err != nil {
			return nil, err
		}
		paths.Set(PathPrefix+string(kind), &openapi3.PathItem{
			Post: buildOperation(tpl, order),
		})
	}

	return &openapi3.T{
		OpenAPI: Version,
		Info: &openapi3.Info{
			Title:       "ctxgen templates",
			Description: "Context document templates. Each operation accepts the form values of one template kind.",
			Version:     "1.0.0",
		},
		Paths: paths,
	}, nil
}

// Marshal builds the document for cat and encodes it as indented JSON.
func Marshal(cat *catalog.Catalog) ([]byte, error) {
	doc, err := Build(cat)
	if err != nil {
		return nil, err
	}
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("openapi: marshal: %w", err)
	}
	return payload, nil
}

func buildOperation(tpl model.Template, order int) *openapi3.Operation {
	body := openapi3.NewObjectSchema()
	body.Title = tpl.Title

	for i, field := range tpl.Fields {
		prop := fieldSchema(field, i)
		body = body.WithProperty(field.Name, prop)
		if field.Required {
			body.Required = append(body.Required, field.Name)
		}
	}

	response := openapi3.NewResponse().
		WithDescription("Assembled context document").
		WithContent(openapi3.NewContentWithSchema(openapi3.NewStringSchema(), responseContentTypes))

	return &openapi3.Operation{
		OperationID: string(tpl.Kind),
		Summary:     tpl.Title,
		Tags:        []string{"contexts"},
		RequestBody: &openapi3.RequestBodyRef{
			Value: openapi3.NewRequestBody().WithRequired(true).WithJSONSchema(body),
		},
		Responses: openapi3.NewResponses(
			openapi3.WithStatus(200, &openapi3.ResponseRef{Value: response}),
		),
		Extensions: map[string]any{
			ctxgenExtension: templateHints{
				Kind:          string(tpl.Kind),
				Order:         order,
				Envelope:      tpl.Envelope,
				Sections:      tpl.Sections,
				Checklist:     tpl.Checklist,
				QualityChecks: tpl.QualityChecks,
			},
		},
	}
}

func fieldSchema(field model.Field, order int) *openapi3.Schema {
	prop := openapi3.NewStringSchema()
	prop.Title = field.Label
	prop.Description = field.Help

	hints := fieldHints{
		Label: field.Label,
		Order: order,
	}
	switch in := field.Input.(type) {
	case model.Choice:
		options := make([]any, 0, len(in.Options))
		for _, option := range in.Options {
			options = append(options, option)
		}
		prop = prop.WithEnum(options...)
		hints.Widget = widgetSelect
	case model.MultiLine:
		hints.Widget = widgetTextarea
		hints.Placeholder = in.Placeholder
		hints.Rows = field.Height()
	case model.SingleLine:
		hints.Widget = widgetInput
		hints.Placeholder = in.Placeholder
	}
	prop.Extensions = map[string]any{formgenExtension: hints}
	return prop
}
