package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "ctxgen",
		Short: "Build structured context documents for AI assistants",
		Long: `ctxgen fills out a template (app development, MCP development, bug report,
feature request or one of the application specifications: web, desktop, CLI,
API service and mobile) and renders it as a context document you can paste
into an AI assistant prompt.

Examples:
  ctxgen kinds                                   # List template kinds
  ctxgen fields bug_report                       # Describe the fields of a kind
  ctxgen generate bug_report --set "Bug Title=Login fails" --format xml
  ctxgen generate feature_request --interactive --output ./contexts/
  ctxgen interactive                             # Prompt, preview, save or copy
  ctxgen schema --output templates.json          # Export templates as OpenAPI
  ctxgen guide web_app                           # Guidance for an application type`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.Context())
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default .ctxgen.yaml)")
	root.PersistentFlags().StringVar(&a.templatesPath, "templates", "", "OpenAPI document that replaces the built-in templates")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newKindsCmd(a),
		newFieldsCmd(a),
		newGenerateCmd(a),
		newInteractiveCmd(a),
		newSchemaCmd(a),
		newGuideCmd(a),
	)
	return root
}
