package audio

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"tarteel/internal/logging"
	"tarteel/internal/media/ffprobe"
	"tarteel/internal/services"
)

// Prober measures the playback length of one local audio file in seconds.
type Prober interface {
	Duration(ctx context.Context, path string) (float64, error)
}

// FFprobeProber measures durations by shelling out to ffprobe.
type FFprobeProber struct {
	Binary string
}

// Duration returns the clip's container duration in seconds.
func (p FFprobeProber) Duration(ctx context.Context, path string) (float64, error) {
	result, err := ffprobe.Inspect(ctx, p.Binary, path)
	if err != nil {
		return 0, err
	}
	seconds := result.DurationSeconds()
	if math.IsNaN(seconds) || seconds < 0 {
		return 0, fmt.Errorf("no usable duration reported for %s", path)
	}
	return seconds, nil
}

// Durations measures every file in paths, in order, returning a slice
// positionally aligned with the input. A missing file or probe failure
// aborts the whole batch.
func Durations(ctx context.Context, prober Prober, logger *slog.Logger, paths []string) ([]float64, error) {
	if prober == nil {
		prober = FFprobeProber{}
	}
	log := logging.NewComponentLogger(logger, "duration")

	durations := make([]float64, 0, len(paths))
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			return nil, services.Wrap(services.ErrIO, "duration", "stat", fmt.Sprintf("file doesn't exist: %s", path), err)
		}
		seconds, err := prober.Duration(ctx, path)
		if err != nil {
			return nil, services.Wrap(services.ErrIO, "duration", "probe", filepath.Base(path), err)
		}
		log.Debug("computed clip duration",
			logging.String("file", filepath.Base(path)),
			logging.Float64("seconds", seconds))
		durations = append(durations, seconds)
	}
	return durations, nil
}
