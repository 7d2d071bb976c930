package model

import (
	"strings"

	internalmodel "github.com/goliatone/go-ctxgen/internal/model"
)

// TemplateKind names one of the fixed form categories.
type TemplateKind string

const (
	KindAppDevelopment TemplateKind = "app_development"
	KindMCPDevelopment TemplateKind = "mcp_development"
	KindBugReport      TemplateKind = "bug_report"
	KindFeatureRequest TemplateKind = "feature_request"

	KindWebApp     TemplateKind = "web_app"
	KindDesktopApp TemplateKind = "desktop_app"
	KindCLITool    TemplateKind = "cli_tool"
	KindAPIService TemplateKind = "api_service"
	KindMobileApp  TemplateKind = "mobile_app"
)

// String implements fmt.Stringer.
func (k TemplateKind) String() string {
	return string(k)
}

// Title returns the human formatted kind ("Bug Report").
func (k TemplateKind) Title() string {
	return internalmodel.Title(string(k))
}

// InputKind enumerates the control types a field can be rendered with.
type InputKind string

const (
	InputSingleLine InputKind = "single_line"
	InputChoice     InputKind = "choice"
	InputMultiLine  InputKind = "multi_line"
)

// Input is the closed set of control descriptions. Only the types declared in
// this package implement it.
type Input interface {
	Kind() InputKind
	input()
}

// SingleLine is a one-line text box.
type SingleLine struct {
	Placeholder string `json:"placeholder,omitempty"`
}

// Choice is a drop-down restricted to Options.
type Choice struct {
	Options []string `json:"options"`
}

// MultiLine is a text area pre-seeded with Placeholder when present.
type MultiLine struct {
	Height      int    `json:"height,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`
}

func (SingleLine) Kind() InputKind { return InputSingleLine }
func (Choice) Kind() InputKind     { return InputChoice }
func (MultiLine) Kind() InputKind  { return InputMultiLine }

func (SingleLine) input() {}
func (Choice) input()     {}
func (MultiLine) input()  {}

// DefaultTextHeight is used for multi-line inputs declared without a height.
const DefaultTextHeight = 4

// Field describes one form input. Label is the identity used by form state and
// collected data; Name is the snake_case key derived from it.
type Field struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Required bool   `json:"required"`
	Help     string `json:"help,omitempty"`
	Input    Input  `json:"-"`
}

// NewField builds a field and derives its Name from label.
func NewField(label string, input Input, required bool, help string) Field {
	return Field{
		Name:     internalmodel.FieldName(label),
		Label:    label,
		Required: required,
		Help:     help,
		Input:    input,
	}
}

// Placeholder reports the placeholder configured on the field input, if any.
func (f Field) Placeholder() string {
	switch in := f.Input.(type) {
	case SingleLine:
		return in.Placeholder
	case MultiLine:
		return in.Placeholder
	default:
		return ""
	}
}

// Options returns the choices of a Choice field and nil otherwise.
func (f Field) Options() []string {
	if in, ok := f.Input.(Choice); ok {
		return in.Options
	}
	return nil
}

// Height returns the display height of a multi-line field, 1 otherwise.
func (f Field) Height() int {
	if in, ok := f.Input.(MultiLine); ok {
		if in.Height > 0 {
			return in.Height
		}
		return DefaultTextHeight
	}
	return 1
}

// InputKind reports the kind of the field input, defaulting to single line.
func (f Field) InputKind() InputKind {
	if f.Input == nil {
		return InputSingleLine
	}
	return f.Input.Kind()
}

// Part appends the value of another field to a section body, producing lines
// such as "TYPE: Web App using Go".
type Part struct {
	Field     string `json:"field"`
	Separator string `json:"separator"`
	Fallback  string `json:"fallback,omitempty"`
}

// Section places one field in the assembled output. Header is the plain text
// literal (for example "CURRENT BEHAVIOR:"), Tag the element name used by the
// XML format. Inline sections put the value on the header line.
//
// A section without a value is omitted unless Fallback is set. Static
// sections carry a fixed body and no field.
type Section struct {
	Field    string `json:"field,omitempty"`
	Title    string `json:"title,omitempty"`
	Header   string `json:"header"`
	Tag      string `json:"tag,omitempty"`
	Inline   bool   `json:"inline,omitempty"`
	Fallback string `json:"fallback,omitempty"`
	Static   string `json:"static,omitempty"`
	Parts    []Part `json:"parts,omitempty"`
	// Items names the element wrapping each line of the body in XML output.
	Items string `json:"items,omitempty"`
	// Group collects sections under one parent element in XML output.
	Group string `json:"group,omitempty"`
	// Attribute renders the value as an attribute of an empty element, for
	// example <frontend framework="React"/>. Only used inside a Group.
	Attribute string `json:"attribute,omitempty"`
}

// ElementName returns Tag or a name derived from the section title.
func (s Section) ElementName() string {
	if s.Tag != "" {
		return s.Tag
	}
	return internalmodel.Tag(s.DisplayTitle())
}

// DisplayTitle returns Title, the field label or the header without its
// trailing colon, in that order.
func (s Section) DisplayTitle() string {
	switch {
	case s.Title != "":
		return s.Title
	case s.Field != "":
		return s.Field
	default:
		return strings.TrimSuffix(strings.TrimSpace(s.Header), ":")
	}
}

// Envelope holds the literals framing a document. Empty values fall back to
// the package defaults.
type Envelope struct {
	Generator string `json:"generator,omitempty"`
	TypeLabel string `json:"typeLabel,omitempty"`
	Heading   string `json:"heading,omitempty"`
	Root      string `json:"root,omitempty"`
	Request   string `json:"request,omitempty"`
}

// Literals framing every document.
const (
	EntryBegin   = "--- CONTEXT ENTRY BEGIN ---"
	EntryEnd     = "--- CONTEXT ENTRY END ---"
	MessageBegin = "--- USER MESSAGE BEGIN ---"
	MessageEnd   = "--- USER MESSAGE END ---"
	Checkbox     = "□"

	DefaultGenerator = "AI Context Template Builder"
	DefaultTypeLabel = "Template"
	DefaultRequest   = "[Your request here]"
)

// Resolve fills empty values with the defaults. Root defaults to the kind.
func (e Envelope) Resolve(kind TemplateKind) Envelope {
	if e.Generator == "" {
		e.Generator = DefaultGenerator
	}
	if e.TypeLabel == "" {
		e.TypeLabel = DefaultTypeLabel
	}
	if e.Root == "" {
		e.Root = internalmodel.Tag(string(kind))
	}
	if e.Request == "" {
		e.Request = DefaultRequest
	}
	return e
}

// Template is the full definition of a template kind: its form and its output
// layout.
type Template struct {
	Kind          TemplateKind `json:"kind"`
	Title         string       `json:"title"`
	Envelope      Envelope     `json:"envelope"`
	Fields        []Field      `json:"fields"`
	Sections      []Section    `json:"sections"`
	Checklist     []string     `json:"checklist,omitempty"`
	QualityChecks []string     `json:"qualityChecks,omitempty"`
}

// Field looks up a field by label.
func (t Template) Field(label string) (Field, bool) {
	for _, field := range t.Fields {
		if field.Label == label {
			return field, true
		}
	}
	return Field{}, false
}

// Labels returns the field labels in display order.
func (t Template) Labels() []string {
	out := make([]string, 0, len(t.Fields))
	for _, field := range t.Fields {
		out = append(out, field.Label)
	}
	return out
}

// RenderedSection is a Section resolved against collected data.
type RenderedSection struct {
	Title     string `json:"title"`
	Header    string `json:"header"`
	Tag       string `json:"tag"`
	Body      string `json:"body"`
	Inline    bool   `json:"inline"`
	Spaced    bool   `json:"spaced"`
	Items     string `json:"items,omitempty"`
	Group     string `json:"group,omitempty"`
	Attribute string `json:"attribute,omitempty"`
}

// Document is the format independent view handed to output renderers.
type Document struct {
	Kind          TemplateKind      `json:"kind"`
	Title         string            `json:"title"`
	Generated     string            `json:"generated"`
	Envelope      Envelope          `json:"envelope"`
	Sections      []RenderedSection `json:"sections"`
	Checklist     []string          `json:"checklist,omitempty"`
	QualityChecks []string          `json:"qualityChecks,omitempty"`
}
