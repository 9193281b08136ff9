package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "wheel.log")
	logger, closer, err := Open(path, slog.LevelInfo)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("shown", "user", "alice")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)
	if strings.Contains(got, "hidden") {
		t.Error("debug record written at info level")
	}
	if !strings.Contains(got, "user=alice") {
		t.Errorf("log = %q, want user=alice", got)
	}
}
