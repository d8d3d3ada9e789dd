package audio

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tarteel/internal/services"
)

type stubProber struct {
	durations map[string]float64
	failOn    string
}

func (s stubProber) Duration(_ context.Context, path string) (float64, error) {
	if s.failOn != "" && strings.HasSuffix(path, s.failOn) {
		return 0, fmt.Errorf("probe failed for %s", path)
	}
	return s.durations[filepath.Base(path)], nil
}

func writeClips(t *testing.T, names ...string) (string, []string) {
	t.Helper()
	dir := t.TempDir()
	paths := make([]string, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte("mp3"), 0o644); err != nil {
			t.Fatalf("seed clip %s: %v", name, err)
		}
		paths = append(paths, path)
	}
	return dir, paths
}

func TestDurationsAlignWithInput(t *testing.T) {
	_, paths := writeClips(t, "recitation_0.mp3", "recitation_1.mp3", "recitation_2.mp3")
	prober := stubProber{durations: map[string]float64{
		"recitation_0.mp3": 3.0,
		"recitation_1.mp3": 4.5,
		"recitation_2.mp3": 2.0,
	}}

	got, err := Durations(context.Background(), prober, nil, paths)
	if err != nil {
		t.Fatalf("durations: %v", err)
	}
	want := []float64{3.0, 4.5, 2.0}
	if len(got) != len(want) {
		t.Fatalf("expected %d durations, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("duration %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestDurationsMissingFileAborts(t *testing.T) {
	dir, paths := writeClips(t, "recitation_0.mp3")
	paths = append(paths, filepath.Join(dir, "recitation_1.mp3"))

	_, err := Durations(context.Background(), stubProber{}, nil, paths)
	if !errors.Is(err, services.ErrIO) {
		t.Fatalf("expected io error, got %v", err)
	}
	if !strings.Contains(err.Error(), "file doesn't exist") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestDurationsProbeFailureAborts(t *testing.T) {
	_, paths := writeClips(t, "recitation_0.mp3", "recitation_1.mp3")

	got, err := Durations(context.Background(), stubProber{failOn: "recitation_1.mp3"}, nil, paths)
	if !errors.Is(err, services.ErrIO) {
		t.Fatalf("expected io error, got %v", err)
	}
	if got != nil {
		t.Fatalf("no partial result may be returned, got %v", got)
	}
}
