package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-ctxgen/pkg/openapi"
)

func newSchemaCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Export the templates as an OpenAPI 3 document",
		Long: `Export the templates as an OpenAPI 3 document. Each kind becomes a
POST /contexts/{kind} operation whose request body lists the fields; renderer
hints live under x-formgen. The document can be edited and passed back with
--templates to define custom kinds.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			payload, err := openapi.Marshal(a.catalog)
			if err != nil {
				return err
			}
			text := string(payload) + "\n"
			if output == "" {
				_, err := fmt.Fprint(a.stdout, text)
				return err
			}
			return a.exportText(cmd.Context(), text, fileDestination(output))
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to this file instead of stdout")
	return cmd
}
