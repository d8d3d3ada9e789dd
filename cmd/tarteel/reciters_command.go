package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
)

func newRecitersCommand(ctx *commandContext) *cobra.Command {
	var search string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "reciters",
		Short: "List Arabic audio reciters from the upstream catalog",
		Long: `List the reciters whose Arabic recitations are available upstream.
Reciters are numbered 1..N in catalog order; the number is what the resolve
and fetch commands take as --reciter.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := ctx.newPipeline()
			if err != nil {
				return err
			}
			catalog, err := p.LoadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			fold := cases.Fold()
			reciters := catalog.SearchReciters(search, fold.String)

			if asJSON {
				return writeJSON(cmd, reciters)
			}

			rows := make([][]string, 0, len(reciters))
			for _, reciter := range reciters {
				rows = append(rows, []string{strconv.Itoa(reciter.ID), reciter.Name, reciter.Code})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderRows([]string{"ID", "Name", "Code"}, rows, 1))
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Filter by name or code (case-insensitive)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")

	return cmd
}
