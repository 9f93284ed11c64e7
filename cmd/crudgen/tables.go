package main

import (
	"fmt"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newTablesCmd(log *slog.Logger) *cobra.Command {
	var src source
	cmd := &cobra.Command{
		Use:   "tables",
		Short: "List the models of a schema file or database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := src.loadConfig()
			if err != nil {
				return err
			}
			catalog, err := src.loadCatalog(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			log.Debug("catalog loaded", "models", len(catalog.Schemas))
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "MODEL\tTABLE\tFILLABLE\tPARENTS")
			for _, s := range catalog.Schemas {
				var parents []string
				for _, r := range s.Parents() {
					parents = append(parents, r.Model)
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.QualifiedName(), s.Table(),
					strings.Join(s.Fillable(), ","), strings.Join(parents, ","))
			}
			return tw.Flush()
		},
	}
	src.bind(cmd)
	return cmd
}
