package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"tarteel/internal/logging"
	"tarteel/internal/services"
)

const (
	defaultHTTPTimeout = 5 * time.Minute
	lockFileName       = ".tarteel.lock"
)

// failureHint is surfaced with every download failure. Wording kept from the
// original tool's diagnostic.
const failureHint = "problem downloading recitation: (1) change reciter and ayat (2) check your network connection"

// Downloader fetches audio clips sequentially into a destination directory.
type Downloader struct {
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// All downloads every link, in order, to {dest}/recitation_{i}.mp3 where i
// is the 0-based position in links. The destination directory is created if
// missing (non-recursive) and held under a file lock for the duration of the
// batch so concurrent runs cannot interleave writes. The first failure
// aborts the whole batch; no partial-success result is returned. On full
// success the ordered local file paths are returned.
func (d *Downloader) All(ctx context.Context, links []string, dest string) ([]string, error) {
	logger := logging.NewComponentLogger(d.loggerOrNop(), "download")

	if err := ensureDir(dest); err != nil {
		return nil, err
	}

	lock := flock.New(filepath.Join(dest, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, services.Wrap(services.ErrIO, "download", "lock", fmt.Sprintf("lock destination %s", dest), err)
	}
	if !locked {
		return nil, services.Wrap(services.ErrIO, "download", "lock", fmt.Sprintf("destination %s is in use by another run", dest), nil)
	}
	defer lock.Unlock()

	client := d.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: defaultHTTPTimeout}
	}

	paths := make([]string, 0, len(links))
	for i, link := range links {
		path := filepath.Join(dest, fmt.Sprintf("recitation_%d.mp3", i))
		logger.Debug("downloading recitation",
			logging.Int("position", i),
			logging.String("audio_link", link))
		if err := fetchFile(ctx, client, link, path); err != nil {
			return nil, services.Wrap(services.ErrIO, "download", "fetch", failureHint, err)
		}
		paths = append(paths, path)
	}

	logger.Info("batch download complete", logging.Int("clips", len(paths)))
	return paths, nil
}

func (d *Downloader) loggerOrNop() *slog.Logger {
	if d == nil || d.Logger == nil {
		return logging.NewNop()
	}
	return d.Logger
}

func ensureDir(dest string) error {
	info, err := os.Stat(dest)
	switch {
	case err == nil:
		if !info.IsDir() {
			return services.Wrap(services.ErrIO, "download", "destination", fmt.Sprintf("%s is not a directory", dest), nil)
		}
		return nil
	case errors.Is(err, fs.ErrNotExist):
		if err := os.Mkdir(dest, 0o755); err != nil {
			return services.Wrap(services.ErrIO, "download", "destination", fmt.Sprintf("create %s", dest), err)
		}
		return nil
	default:
		return services.Wrap(services.ErrIO, "download", "destination", fmt.Sprintf("stat %s", dest), err)
	}
}

func fetchFile(ctx context.Context, client *http.Client, link, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return fmt.Errorf("build request for %s: %w", link, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", link, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("get %s: unexpected status %s", link, resp.Status)
	}

	out, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		os.Remove(path)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := out.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
