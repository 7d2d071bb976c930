package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-ctxgen/pkg/form"
	"github.com/goliatone/go-ctxgen/pkg/model"
)

type generateOptions struct {
	sets        []string
	valuesFile  string
	format      string
	output      string
	save        bool
	clipboard   bool
	interactive bool
}

func newGenerateCmd(a *app) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate [kind]",
		Short: "Render a context document from flags, a values file or prompts",
		Long: `Render a context document for a template kind.

Values are applied in order: --values file, then --set flags, then prompts
when --interactive is given. Keys may be field names (bug_title) or labels
("Bug Title"). Required fields left empty render with their default text,
such as "Not specified".

The document is printed to stdout unless --output, --save or --clipboard is
given. A directory passed to --output receives a generated file name.

Examples:
  ctxgen generate bug_report --set "Bug Title=Login fails" --set "environment=macOS 14"
  ctxgen generate app_development --values app.yaml --format markdown --output docs/
  ctxgen generate --interactive --clipboard`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rawKind := a.cfg.Kind
			if len(args) > 0 {
				rawKind = args[0]
			}
			return runGenerate(cmd.Context(), a, rawKind, opts)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.sets, "set", "s", nil, `Field value as "key=value" (repeatable)`)
	cmd.Flags().StringVar(&opts.valuesFile, "values", "", "YAML or JSON file mapping field keys to values")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Output format: plain, xml or markdown (default from config)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write to this file or directory")
	cmd.Flags().BoolVar(&opts.save, "save", false, "Write to the configured output directory with a generated name")
	cmd.Flags().BoolVarP(&opts.clipboard, "clipboard", "c", false, "Copy to the clipboard (OSC 52)")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "Prompt for every field")
	return cmd
}

func runGenerate(ctx context.Context, a *app, rawKind string, opts *generateOptions) error {
	var (
		kind model.TemplateKind
		err  error
	)
	switch {
	case strings.TrimSpace(rawKind) != "":
		kind, err = a.catalog.ParseKind(rawKind)
		if err != nil {
			return err
		}
	case opts.interactive:
		kind, err = a.filler().SelectKind(ctx, a.catalog, "")
		if err != nil {
			return err
		}
	default:
		return errors.New("a template kind is required (see `ctxgen kinds`)")
	}

	session := form.NewSession(a.catalog, form.WithLogger(a.logger))
	state, err := session.Render(kind)
	if err != nil {
		return err
	}

	if opts.valuesFile != "" {
		values, err := readValuesFile(opts.valuesFile)
		if err != nil {
			return err
		}
		for _, key := range sortedKeys(values) {
			if err := state.SetByName(key, values[key]); err != nil {
				return fmt.Errorf("%s: %w", opts.valuesFile, err)
			}
		}
	}
	for _, entry := range opts.sets {
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			return fmt.Errorf("--set %q: expected key=value", entry)
		}
		if err := state.SetByName(strings.TrimSpace(key), value); err != nil {
			return err
		}
	}

	if opts.interactive {
		if err := a.filler().Fill(ctx, state); err != nil {
			return err
		}
	} else if missing := form.Missing(state); len(missing) > 0 {
		a.notify().Info(fmt.Sprintf("No value for required field(s): %s", strings.Join(missing, ", ")))
	}

	format := opts.format
	if format == "" {
		format = a.cfg.Format
	}
	renderer, err := a.assembler.Renderer(format)
	if err != nil {
		return err
	}
	text, err := a.assembler.Assemble(ctx, kind, form.Collect(state), renderer.Name())
	if err != nil {
		return err
	}

	return a.deliver(ctx, text, string(kind), renderer.Extension(), deliverTargets{
		output:    opts.output,
		save:      opts.save,
		clipboard: opts.clipboard || a.cfg.Clipboard,
	})
}

type deliverTargets struct {
	output    string
	save      bool
	clipboard bool
}

// deliver writes text to every requested target, falling back to stdout.
func (a *app) deliver(ctx context.Context, text, kind, ext string, targets deliverTargets) error {
	written := false
	if targets.output != "" || targets.save {
		path := a.resolveOutputPath(targets.output, kind, ext)
		if err := a.exportText(ctx, text, fileDestination(path)); err != nil {
			return err
		}
		written = true
	}
	if targets.clipboard {
		if err := a.exportText(ctx, text, a.clipboardDestination()); err != nil {
			return err
		}
		written = true
	}
	if !written {
		_, err := fmt.Fprint(a.stdout, text)
		return err
	}
	return nil
}

func readValuesFile(path string) (map[string]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read values: %w", err)
	}
	values := map[string]string{}
	if err := yaml.Unmarshal(raw, &values); err != nil {
		return nil, fmt.Errorf("parse values %s: %w", path, err)
	}
	return values, nil
}
