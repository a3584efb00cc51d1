package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFieldsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fields",
		Short: "List the fields of every section",
		Long:  "Print each section with its field names, kinds and whether they are required. Field names are the keys of an answers file.",
		Args:  cobra.NoArgs,
		RunE:  runFields,
	}
}

func runFields(cmd *cobra.Command, args []string) error {
	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, def := range e.catalog.Steps() {
		title := def.Title
		if def.Repeatable {
			title += " (repeatable)"
		}
		fmt.Fprintf(out, "%d. %s  [%s]\n", i+1, title, def.Category.Key())

		for _, f := range def.Fields {
			req := ""
			if f.Required {
				req = "required"
			}
			fmt.Fprintf(out, "   %-18s %-12s %s\n", f.Name, f.Kind, req)
		}
		fmt.Fprintln(out)
	}
	return nil
}
