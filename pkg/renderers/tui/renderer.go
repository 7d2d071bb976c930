package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-ctxgen/pkg/catalog"
	"github.com/goliatone/go-ctxgen/pkg/form"
	"github.com/goliatone/go-ctxgen/pkg/model"
)

// NoneOption is offered first by optional choice fields and stores an empty
// value.
const NoneOption = "(none)"

// RequiredMarker is appended to the prompt of required fields. It is purely
// informational.
const RequiredMarker = " *"

// Filler walks a form.State and prompts one control per field descriptor.
type Filler struct {
	driver PromptDriver
	theme  Theme
	out    io.Writer
	logger zerolog.Logger
}

// New constructs a Filler with defaults (survey driver, built-in theme).
func New(options ...Option) *Filler {
	f := &Filler{
		theme:  DefaultTheme(),
		out:    os.Stdout,
		logger: zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}
	if f.driver == nil {
		f.driver = NewSurveyDriver(f.out, f.theme)
	}
	return f
}

// Theme reports the theme in use.
func (f *Filler) Theme() Theme {
	return f.theme
}

// Fill prompts every field of state in order, seeding each prompt with the
// current value. Required fields left empty only produce a notice.
func (f *Filler) Fill(ctx context.Context, state *form.State) error {
	if ctx == nil {
		return errors.New("tui: context is required")
	}
	if state == nil {
		return form.ErrNoActiveForm
	}

	tpl := state.Template()
	heading := fmt.Sprintf("%s (%s marks required fields)", tpl.Title, strings.TrimSpace(RequiredMarker))
	if err := f.driver.Info(ctx, f.theme.Heading(heading)); err != nil {
		return err
	}

	for _, field := range state.Fields() {
		if err := f.promptField(ctx, field, state); err != nil {
			return err
		}
	}

	if missing := form.Missing(state); len(missing) > 0 {
		msg := fmt.Sprintf("No value for required field(s): %s. Their sections will show default text.", strings.Join(missing, ", "))
		return f.driver.Info(ctx, f.theme.WarnLine(msg))
	}
	return nil
}

func (f *Filler) promptField(ctx context.Context, field model.Field, state *form.State) error {
	current, _ := state.Value(field.Label)

	var (
		value string
		err   error
	)
	switch in := field.Input.(type) {
	case model.Choice:
		value, err = f.promptChoice(ctx, field, in, current)
	case model.MultiLine:
		value, err = f.driver.TextArea(ctx, TextAreaConfig{
			Message: displayLabel(field),
			Default: current,
			Help:    displayHelp(field),
		})
	default:
		value, err = f.driver.Input(ctx, InputConfig{
			Message: displayLabel(field),
			Default: current,
			Help:    displayHelp(field),
		})
	}
	if err != nil {
		return err
	}

	f.logger.Debug().Str("field", field.Name).Int("length", len(value)).Msg("field prompted")
	return state.Set(field.Label, value)
}

func (f *Filler) promptChoice(ctx context.Context, field model.Field, in model.Choice, current string) (string, error) {
	options := make([]string, 0, len(in.Options)+1)
	if !field.Required {
		options = append(options, NoneOption)
	}
	options = append(options, in.Options...)

	defaultIndex := 0
	if current != "" {
		if idx := indexOf(options, current); idx >= 0 {
			defaultIndex = idx
		}
	}

	idx, err := f.driver.Select(ctx, SelectConfig{
		Message:      displayLabel(field),
		Options:      options,
		DefaultIndex: defaultIndex,
		Help:         displayHelp(field),
	})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(options) {
		return "", fmt.Errorf("tui: %s: selection %d out of range", field.Label, idx)
	}
	if options[idx] == NoneOption && !field.Required {
		return "", nil
	}
	return options[idx], nil
}

// SelectKind asks for a template kind, defaulting to current.
func (f *Filler) SelectKind(ctx context.Context, cat *catalog.Catalog, current model.TemplateKind) (model.TemplateKind, error) {
	if cat == nil {
		cat = catalog.Default()
	}
	kinds := cat.Kinds()
	options := make([]string, 0, len(kinds))
	defaultIndex := 0
	for i, kind := range kinds {
		tpl, err := cat.Template(kind)
		if err != nil {
			return "", err
		}
		options = append(options, tpl.Title)
		if kind == current {
			defaultIndex = i
		}
	}

	idx, err := f.driver.Select(ctx, SelectConfig{
		Message:      "Template",
		Options:      options,
		DefaultIndex: defaultIndex,
	})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(kinds) {
		return "", fmt.Errorf("tui: template selection %d out of range", idx)
	}
	return kinds[idx], nil
}

// Choose presents a menu and returns the chosen index.
func (f *Filler) Choose(ctx context.Context, message string, options []string) (int, error) {
	idx, err := f.driver.Select(ctx, SelectConfig{
		Message: message,
		Options: options,
	})
	if err != nil {
		return -1, err
	}
	if idx < 0 || idx >= len(options) {
		return -1, fmt.Errorf("tui: selection %d out of range", idx)
	}
	return idx, nil
}

// Ask prompts for a single line of text.
func (f *Filler) Ask(ctx context.Context, message, defaultValue string) (string, error) {
	value, err := f.driver.Input(ctx, InputConfig{Message: message, Default: defaultValue})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

// ConfirmDiscard asks before a kind switch throws away entered values.
func (f *Filler) ConfirmDiscard(ctx context.Context) (bool, error) {
	return f.driver.Confirm(ctx, ConfirmConfig{
		Message: "Switching template discards every entered value. Continue?",
		Default: true,
	})
}

// Notify prints msg through the driver.
func (f *Filler) Notify(ctx context.Context, msg string) error {
	return f.driver.Info(ctx, msg)
}

func displayLabel(field model.Field) string {
	if field.Required {
		return field.Label + RequiredMarker
	}
	return field.Label
}

func displayHelp(field model.Field) string {
	help := strings.TrimSpace(field.Help)
	if in, ok := field.Input.(model.SingleLine); ok && in.Placeholder != "" {
		hint := "e.g. " + in.Placeholder
		if help == "" {
			return hint
		}
		return help + " (" + hint + ")"
	}
	return help
}
