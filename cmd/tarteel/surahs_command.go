package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newSurahsCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "surahs",
		Short: "List the 114 surahs with verse counts and global offsets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := ctx.newPipeline()
			if err != nil {
				return err
			}
			catalog, err := p.LoadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, catalog.Surahs)
			}

			rows := make([][]string, 0, len(catalog.Surahs))
			for _, surah := range catalog.Surahs {
				rows = append(rows, []string{
					strconv.Itoa(surah.ID),
					surah.Name,
					surah.EnglishName,
					surah.RevelationType,
					strconv.Itoa(surah.NAya),
					strconv.Itoa(surah.AyaBase),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderRows(
				[]string{"ID", "Name", "English", "Revelation", "Ayat", "Aya Base"},
				rows, 1, 5, 6))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")

	return cmd
}
