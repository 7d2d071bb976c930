package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-ctxgen/pkg/export"
	"github.com/goliatone/go-ctxgen/pkg/form"
	"github.com/goliatone/go-ctxgen/pkg/model"
)

const (
	actionPreview = "Preview document"
	actionSave    = "Save to file"
	actionCopy    = "Copy to clipboard"
	actionEdit    = "Edit values"
	actionFormat  = "Change format"
	actionSwitch  = "Switch template (discards values)"
	actionQuit    = "Quit"
)

var interactiveActions = []string{
	actionPreview,
	actionSave,
	actionCopy,
	actionEdit,
	actionFormat,
	actionSwitch,
	actionQuit,
}

func newInteractiveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive [kind]",
		Short: "Fill a template with prompts, then preview, save or copy it",
		Long: `Start a prompt session. After the form is filled a menu offers to preview,
save, copy, edit the values again, change the output format or switch to a
different template. Switching templates discards every entered value.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rawKind := a.cfg.Kind
			if len(args) > 0 {
				rawKind = args[0]
			}
			return runInteractive(cmd.Context(), a, rawKind)
		},
	}
}

type interactiveSession struct {
	app     *app
	session *form.Session
	format  string
}

func runInteractive(ctx context.Context, a *app, rawKind string) error {
	filler := a.filler()
	s := &interactiveSession{
		app:     a,
		session: form.NewSession(a.catalog, form.WithLogger(a.logger)),
		format:  a.cfg.Format,
	}

	var kind model.TemplateKind
	if rawKind != "" {
		parsed, err := a.catalog.ParseKind(rawKind)
		if err != nil {
			return err
		}
		kind = parsed
	} else {
		selected, err := filler.SelectKind(ctx, a.catalog, "")
		if err != nil {
			return err
		}
		kind = selected
	}

	state, err := s.session.Render(kind)
	if err != nil {
		return err
	}
	if err := filler.Fill(ctx, state); err != nil {
		return err
	}

	for {
		idx, err := filler.Choose(ctx, fmt.Sprintf("%s (%s)", state.Template().Title, s.format), interactiveActions)
		if err != nil {
			return err
		}

		switch interactiveActions[idx] {
		case actionPreview:
			text, err := s.assemble(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.stdout, text)
		case actionSave:
			text, err := s.assemble(ctx)
			if err != nil {
				return err
			}
			renderer, err := a.assembler.Renderer(s.format)
			if err != nil {
				return err
			}
			suggested := filepath.Join(a.cfg.OutputDir, export.DefaultFilename(string(s.session.Kind()), renderer.Extension(), a.now()))
			path, err := filler.Ask(ctx, "Save as", suggested)
			if err != nil {
				return err
			}
			if path == "" {
				a.notify().Info("Save cancelled.")
				continue
			}
			if err := s.report(a.exportText(ctx, text, fileDestination(path))); err != nil {
				return err
			}
		case actionCopy:
			text, err := s.assemble(ctx)
			if err != nil {
				return err
			}
			if err := s.report(a.exportText(ctx, text, a.clipboardDestination())); err != nil {
				return err
			}
		case actionEdit:
			if err := filler.Fill(ctx, state); err != nil {
				return err
			}
		case actionFormat:
			formats := a.assembler.Formats()
			choice, err := filler.Choose(ctx, "Output format", formats)
			if err != nil {
				return err
			}
			s.format = formats[choice]
		case actionSwitch:
			ok, err := filler.ConfirmDiscard(ctx)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			next, err := filler.SelectKind(ctx, a.catalog, s.session.Kind())
			if err != nil {
				return err
			}
			if state, err = s.session.Render(next); err != nil {
				return err
			}
			if err := filler.Fill(ctx, state); err != nil {
				return err
			}
		case actionQuit:
			return nil
		}
	}
}

func (s *interactiveSession) assemble(ctx context.Context) (string, error) {
	state := s.session.State()
	if state == nil {
		return "", form.ErrNoActiveForm
	}
	return s.app.assembler.Assemble(ctx, state.Kind(), form.Collect(state), s.format)
}

// report keeps the session alive after recoverable export failures.
func (s *interactiveSession) report(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	if !errors.Is(err, export.ErrEmptyOutput) {
		s.app.notify().Error(err.Error())
	}
	return nil
}
