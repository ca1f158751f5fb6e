package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/piwi3910/PatternCut/internal/engine"
	"github.com/piwi3910/PatternCut/internal/model"
)

func newCategoriesCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List garment categories with their pieces and measurements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			schemas := make([]model.Schema, 0, len(engine.Categories()))
			for _, name := range engine.Categories() {
				schemas = append(schemas, engine.ResolveCategory(name))
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(schemas)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CATÉGORIE\tPIÈCES\tMESURES")
			for _, s := range schemas {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", s.Category, strings.Join(s.Pieces, ", "), strings.Join(s.Measurements, ", "))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the schemas as JSON")
	return cmd
}
