package form

import (
	"fmt"

	"github.com/goliatone/go-ctxgen/pkg/model"
)

// State tracks the entered value of every field of one template kind. It is
// owned by a Session and replaced wholesale when the kind changes.
type State struct {
	template model.Template
	values   map[string]string
}

func newState(tpl model.Template) *State {
	s := &State{
		template: tpl,
		values:   make(map[string]string, len(tpl.Fields)),
	}
	for _, field := range tpl.Fields {
		s.values[field.Label] = initialValue(field)
	}
	return s
}

// initialValue mirrors what a freshly created control shows: multi-line
// inputs are pre-seeded with their placeholder, everything else is blank.
func initialValue(field model.Field) string {
	if in, ok := field.Input.(model.MultiLine); ok {
		return in.Placeholder
	}
	return ""
}

// Kind reports the template kind the state was rendered for.
func (s *State) Kind() model.TemplateKind {
	if s == nil {
		return ""
	}
	return s.template.Kind
}

// Template returns the definition backing the state.
func (s *State) Template() model.Template {
	if s == nil {
		return model.Template{}
	}
	return s.template
}

// Fields returns the descriptors in display order.
func (s *State) Fields() []model.Field {
	if s == nil {
		return nil
	}
	return s.template.Fields
}

// Labels returns the labels tracked by the state in display order.
func (s *State) Labels() []string {
	if s == nil {
		return nil
	}
	return s.template.Labels()
}

// Value returns the raw value of label.
func (s *State) Value(label string) (string, bool) {
	if s == nil {
		return "", false
	}
	v, ok := s.values[label]
	return v, ok
}

// Set stores the raw value of label. Labels that are not part of the active
// template are rejected; Choice fields only accept one of their options or
// the empty string.
func (s *State) Set(label, value string) error {
	if s == nil {
		return ErrNoActiveForm
	}
	field, ok := s.template.Field(label)
	if !ok {
		return fmt.Errorf("%w: %q is not part of %s", ErrUnknownField, label, s.template.Kind)
	}
	if choice, ok := field.Input.(model.Choice); ok && value != "" && !contains(choice.Options, value) {
		return fmt.Errorf("form: %q is not a valid choice for %q", value, label)
	}
	s.values[label] = value
	return nil
}

// SetByName stores a value addressed by label or by the snake_case field name.
func (s *State) SetByName(key, value string) error {
	if s == nil {
		return ErrNoActiveForm
	}
	for _, field := range s.template.Fields {
		if field.Name == key {
			return s.Set(field.Label, value)
		}
	}
	return s.Set(key, value)
}

func contains(options []string, value string) bool {
	for _, option := range options {
		if option == value {
			return true
		}
	}
	return false
}
