package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-ctxgen/pkg/model"
)

type fieldDescription struct {
	Name        string   `yaml:"name"`
	Label       string   `yaml:"label"`
	Input       string   `yaml:"input"`
	Required    bool     `yaml:"required"`
	Help        string   `yaml:"help,omitempty"`
	Placeholder string   `yaml:"placeholder,omitempty"`
	Options     []string `yaml:"options,omitempty"`
	Height      int      `yaml:"height,omitempty"`
}

func describeField(field model.Field) fieldDescription {
	desc := fieldDescription{
		Name:        field.Name,
		Label:       field.Label,
		Input:       string(field.InputKind()),
		Required:    field.Required,
		Help:        field.Help,
		Placeholder: field.Placeholder(),
		Options:     field.Options(),
	}
	if field.InputKind() == model.InputMultiLine {
		desc.Height = field.Height()
	}
	return desc
}

func newFieldsCmd(a *app) *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "fields <kind>",
		Short: "Describe the fields of a template kind",
		Long: `Describe the fields of a template kind. Field names can be used with
"generate --set name=value" and as keys of a --values file.

Examples:
  ctxgen fields bug_report
  ctxgen fields "Feature Request" --yaml > values.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := a.catalog.ParseKind(args[0])
			if err != nil {
				return err
			}
			tpl, err := a.catalog.Template(kind)
			if err != nil {
				return err
			}
			fields := tpl.Fields

			if asYAML {
				out := make([]fieldDescription, 0, len(fields))
				for _, field := range fields {
					out = append(out, describeField(field))
				}
				enc := yaml.NewEncoder(a.stdout)
				enc.SetIndent(2)
				if err := enc.Encode(out); err != nil {
					return fmt.Errorf("encode fields: %w", err)
				}
				return enc.Close()
			}

			fmt.Fprintln(a.stdout, a.theme.Heading(tpl.Title))
			for _, field := range fields {
				desc := describeField(field)
				marker := " "
				if desc.Required {
					marker = "*"
				}
				fmt.Fprintf(a.stdout, "%s %-24s %-22s %s\n", marker, desc.Name, desc.Label, desc.Input)
				var details []string
				if desc.Help != "" {
					details = append(details, desc.Help)
				}
				if len(desc.Options) > 0 {
					details = append(details, "options: "+strings.Join(desc.Options, ", "))
				}
				if len(details) > 0 {
					text := strings.ReplaceAll(strings.Join(details, "; "), "\n", "\n  ")
					fmt.Fprintln(a.stdout, "  "+a.theme.Faint(text))
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Print descriptors as YAML")
	return cmd
}
