package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newKindsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List template kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, kind := range a.catalog.Kinds() {
				tpl, err := a.catalog.Template(kind)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.stdout, "%-20s %s %s\n", kind, tpl.Title, a.theme.Faint(fmt.Sprintf("(%d fields)", len(tpl.Fields))))
			}
			return nil
		},
	}
}
