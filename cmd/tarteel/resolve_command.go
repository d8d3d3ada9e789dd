package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tarteel/internal/quran"
)

func newResolveCommand(ctx *commandContext) *cobra.Command {
	var req quran.Request
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a verse range without downloading audio",
		Long: `Resolve a (reciter, surah, start, end) range into global verse indices,
verse text, and CDN audio links. Nothing is downloaded; this is a dry run
for the fetch command.

Examples:
  tarteel resolve --reciter 1 --surah 1 --start 1 --end 7
  tarteel resolve --reciter 3 --surah 2 --start 1 --end 5 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := ctx.newPipeline()
			if err != nil {
				return err
			}
			recitations, err := p.Resolve(cmd.Context(), req)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, recitations)
			}

			rows := make([][]string, 0, len(recitations))
			for _, recitation := range recitations {
				rows = append(rows, []string{
					strconv.Itoa(recitation.VerseIndex),
					recitation.Text,
					recitation.AudioLink,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderRows([]string{"Verse", "Text", "Audio"}, rows, 1))
			return nil
		},
	}

	addRangeFlags(cmd, &req)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")

	return cmd
}

func addRangeFlags(cmd *cobra.Command, req *quran.Request) {
	cmd.Flags().IntVar(&req.ReciterID, "reciter", 0, "Reciter id from `tarteel reciters`")
	cmd.Flags().IntVar(&req.SurahID, "surah", 0, "Surah id (1-114)")
	cmd.Flags().IntVar(&req.Start, "start", 1, "First aya of the range (1-based within the surah)")
	cmd.Flags().IntVar(&req.End, "end", 0, "Last aya of the range (inclusive)")
	cmd.MarkFlagRequired("reciter")
	cmd.MarkFlagRequired("surah")
	cmd.MarkFlagRequired("end")
}
