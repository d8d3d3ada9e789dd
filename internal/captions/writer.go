package captions

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"tarteel/internal/services"
)

const separator = ":"

// Entry is one caption line: the verse text spanning the half-open interval
// [Start, End) in seconds from the beginning of the concatenated audio.
type Entry struct {
	Start float64
	End   float64
	Text  string
}

// Build accumulates durations into cumulative caption entries. texts and
// durations must be positionally aligned.
func Build(texts []string, durations []float64) ([]Entry, error) {
	if len(texts) != len(durations) {
		return nil, services.Wrap(services.ErrSizeMismatch, "captions", "build",
			fmt.Sprintf("texts and durations should be of the same size, got %d texts and %d durations", len(texts), len(durations)), nil)
	}
	entries := make([]Entry, 0, len(texts))
	cumulative := 0.0
	for i := range texts {
		entries = append(entries, Entry{
			Start: cumulative,
			End:   cumulative + durations[i],
			Text:  texts[i],
		})
		cumulative += durations[i]
	}
	return entries, nil
}

// Write serializes caption entries for texts and durations to dest as
// "start:end:text" lines, overwriting any existing file. Nothing is written
// when the inputs disagree in length; the size check runs before the output
// file is opened.
func Write(texts []string, durations []float64, dest string) error {
	entries, err := Build(texts, durations)
	if err != nil {
		return err
	}

	file, err := os.Create(dest)
	if err != nil {
		return services.Wrap(services.ErrIO, "captions", "create", dest, err)
	}

	writer := bufio.NewWriter(file)
	for _, entry := range entries {
		if _, err := fmt.Fprintf(writer, "%s%s%s%s%s\n",
			formatSeconds(entry.Start), separator,
			formatSeconds(entry.End), separator,
			entry.Text); err != nil {
			file.Close()
			return services.Wrap(services.ErrIO, "captions", "write", dest, err)
		}
	}
	if err := writer.Flush(); err != nil {
		file.Close()
		return services.Wrap(services.ErrIO, "captions", "write", dest, err)
	}
	if err := file.Close(); err != nil {
		return services.Wrap(services.ErrIO, "captions", "close", dest, err)
	}
	return nil
}

// formatSeconds uses the default shortest round-trip formatting; the caption
// contract mandates no fixed decimal precision.
func formatSeconds(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}
