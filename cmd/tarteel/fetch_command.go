package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tarteel/internal/quran"
)

func newFetchCommand(ctx *commandContext) *cobra.Command {
	var req quran.Request
	var outputDir string
	var captionPath string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download a verse range's audio and write its caption file",
		Long: `Run the full batch: resolve the verse range, download each verse's
recitation clip, measure clip durations, and write a caption file mapping
cumulative timestamps to verse text.

Examples:
  tarteel fetch --reciter 1 --surah 1 --start 1 --end 7
  tarteel fetch --reciter 3 --surah 2 --end 5 --output ./clips --captions ./clips/baqarah.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := ctx.newPipeline()
			if err != nil {
				return err
			}
			result, err := p.Run(cmd.Context(), req, outputDir, captionPath)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, result)
			}

			rows := make([][]string, 0, len(result.Recitations))
			cumulative := 0.0
			for i, recitation := range result.Recitations {
				start := cumulative
				cumulative += result.Durations[i]
				rows = append(rows, []string{
					strconv.Itoa(recitation.VerseIndex),
					formatSeconds(start),
					formatSeconds(cumulative),
					recitation.Text,
				})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderRows([]string{"Verse", "Start", "End", "Text"}, rows, 1, 2, 3))
			fmt.Fprintf(out, "\nDownloaded %d clips, captions written to %s\n", len(result.AudioPaths), result.CaptionPath)
			return nil
		},
	}

	addRangeFlags(cmd, &req)
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Destination directory for audio clips (default: configured output_dir)")
	cmd.Flags().StringVar(&captionPath, "captions", "", "Caption file path (default: {output}/captions.txt)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a summary table")

	return cmd
}

func formatSeconds(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}
