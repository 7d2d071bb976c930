package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-ctxgen/pkg/catalog"
	"github.com/goliatone/go-ctxgen/pkg/model"
)

func newGuideCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "guide [kind]",
		Short: "Show guidance for the application templates",
		Long: `Print the application development guide. With a kind, only the section for
that application type and the shared best practices are shown.

Examples:
  ctxgen guide
  ctxgen guide cli_tool`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var kind model.TemplateKind
			if len(args) > 0 {
				parsed, err := a.catalog.ParseKind(args[0])
				if err != nil {
					return err
				}
				kind = parsed
			}
			text, ok := catalog.Guide(kind)
			if !ok {
				return fmt.Errorf("no guide for %s", kind)
			}
			fmt.Fprint(a.stdout, text)
			return nil
		},
	}
}
