package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrFetch marks failures talking to or parsing the upstream metadata API,
	// including lookups of unknown reciter or surah ids.
	ErrFetch = errors.New("fetch error")
	// ErrRange marks verse-range validation failures.
	ErrRange = errors.New("range error")
	// ErrSizeMismatch marks a texts/durations length disagreement.
	ErrSizeMismatch = errors.New("size mismatch")
	// ErrIO marks local filesystem and download failures.
	ErrIO = errors.New("io error")
)

// Wrap builds an error message that includes stage context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrIO
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Kind names the failure category of err for diagnostics and exit reporting.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrFetch):
		return "fetch"
	case errors.Is(err, ErrRange):
		return "range"
	case errors.Is(err, ErrSizeMismatch):
		return "size_mismatch"
	case errors.Is(err, ErrIO):
		return "io"
	default:
		return "unknown"
	}
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "stage failure"
	}
	return strings.Join(parts, ": ")
}
