package preflight

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sys/unix"

	"tarteel/internal/config"
)

// Result describes the outcome of one environment check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// Run evaluates every check the fetch pipeline depends on.
func Run(ctx context.Context, cfg *config.Config) []Result {
	return []Result{
		CheckFFprobe(cfg.FFprobeBinary()),
		CheckAPI(ctx, cfg.API.BaseURL),
		CheckOutputDir(cfg.Paths.OutputDir),
	}
}

// CheckFFprobe verifies the ffprobe binary is resolvable on PATH.
func CheckFFprobe(binary string) Result {
	const name = "FFprobe"
	path, err := exec.LookPath(binary)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s not found on PATH", binary)}
	}
	return Result{Name: name, Passed: true, Detail: path}
}

// CheckAPI verifies the metadata API answers the meta endpoint.
func CheckAPI(ctx context.Context, baseURL string) Result {
	const name = "Metadata API"

	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		return Result{Name: name, Detail: "missing base url"}
	}

	checkCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(checkCtx, http.MethodGet, base+"/meta", nil)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("reachability check failed (%v)", err)}
	}
	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("unreachable (%v)", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{Name: name, Detail: fmt.Sprintf("unexpected status %s", resp.Status)}
	}
	return Result{Name: name, Passed: true, Detail: "reachable"}
}

// CheckOutputDir verifies the output directory (or its parent, when it does
// not exist yet) is writable and reports available space.
func CheckOutputDir(path string) Result {
	const name = "Output directory"
	if strings.TrimSpace(path) == "" {
		return Result{Name: name, Detail: "missing output_dir"}
	}

	target := path
	if _, err := os.Stat(target); err != nil {
		if !os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
		}
		// Directory is created on first fetch; check the parent instead.
		target = filepath.Dir(path)
	}

	if err := unix.Access(target, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}

	var stat unix.Statfs_t
	if err := unix.Statfs(target, &stat); err != nil {
		return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
	}
	freeMiB := stat.Bavail * uint64(stat.Bsize) / (1 << 20)
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok, %d MiB free)", path, freeMiB)}
}
