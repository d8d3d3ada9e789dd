package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"  Warn ", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tc := range tests {
		if got := parseLevel(tc.in); got != tc.want {
			t.Fatalf("parseLevel(%q): expected %v, got %v", tc.in, tc.want, got)
		}
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestConsoleOutputToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "tarteel.log")
	logger, err := New(Options{Level: "debug", Format: "console", OutputPaths: []string{path}})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}

	component := NewComponentLogger(logger, "resolver")
	component.Info("verse range resolved", Int("clips", 3), String("surah", "الفاتحة"))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	line := strings.TrimSpace(string(data))
	if !strings.Contains(line, "INFO resolver: verse range resolved") {
		t.Fatalf("unexpected line: %q", line)
	}
	if !strings.Contains(line, "clips=3") {
		t.Fatalf("missing attr in line: %q", line)
	}
}

func TestJSONOutputRenamesKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tarteel.log")
	logger, err := New(Options{Level: "info", Format: "json", OutputPaths: []string{path}})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Info("catalog loaded", Int("reciters", 12))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	line := string(data)
	for _, fragment := range []string{`"ts":`, `"level":"info"`, `"msg":"catalog loaded"`, `"reciters":12`} {
		if !strings.Contains(line, fragment) {
			t.Fatalf("expected %s in %q", fragment, line)
		}
	}
}

func TestConsoleDropsBelowLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tarteel.log")
	logger, err := New(Options{Level: "warn", Format: "console", OutputPaths: []string{path}})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Info("suppressed")
	logger.Warn("kept")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if strings.Contains(string(data), "suppressed") {
		t.Fatalf("info line must be filtered at warn level: %q", string(data))
	}
	if !strings.Contains(string(data), "WARN kept") {
		t.Fatalf("warn line missing: %q", string(data))
	}
}
