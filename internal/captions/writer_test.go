package captions

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tarteel/internal/services"
)

func TestBuildAccumulatesDurations(t *testing.T) {
	entries, err := Build([]string{"a", "b", "c"}, []float64{3.0, 4.5, 2.0})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	wantStarts := []float64{0.0, 3.0, 7.5}
	wantEnds := []float64{3.0, 7.5, 9.5}
	for i, entry := range entries {
		if entry.Start != wantStarts[i] || entry.End != wantEnds[i] {
			t.Fatalf("entry %d: expected [%v, %v], got [%v, %v]", i, wantStarts[i], wantEnds[i], entry.Start, entry.End)
		}
	}
}

func TestWriteProducesCumulativeLines(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "captions.txt")

	err := Write([]string{"alpha", "beta", "gamma"}, []float64{3.0, 4.5, 2.0}, dest)
	if err != nil {
		t.Fatalf("write: %v", err)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read captions: %v", err)
	}
	content := string(data)
	if !strings.HasSuffix(content, "\n") {
		t.Fatal("caption file must end with a newline")
	}
	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	want := []string{
		"0:3:alpha",
		"3:7.5:beta",
		"7.5:9.5:gamma",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(lines))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestWriteSizeMismatchWritesNothing(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "captions.txt")

	err := Write([]string{"a", "b", "c"}, []float64{1.0, 2.0}, dest)
	if !errors.Is(err, services.ErrSizeMismatch) {
		t.Fatalf("expected size mismatch, got %v", err)
	}
	if _, statErr := os.Stat(dest); !os.IsNotExist(statErr) {
		t.Fatal("no output file may exist after a size mismatch")
	}
}

func TestWriteOverwritesExistingFile(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "captions.txt")
	if err := os.WriteFile(dest, []byte("stale\n"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	if err := Write([]string{"fresh"}, []float64{1.5}, dest); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read captions: %v", err)
	}
	if string(data) != "0:1.5:fresh\n" {
		t.Fatalf("expected overwrite, got %q", string(data))
	}
}
