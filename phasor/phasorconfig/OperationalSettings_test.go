package phasorconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFileMissingReturnsDefaults(t *testing.T) {
	settings, err := LoadFile(filepath.Join(t.TempDir(), "does-not-exist.yaml"))

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if settings.CacheDirectory != "./cache" {
		t.Fatalf("expected default cache directory, got %q", settings.CacheDirectory)
	}
}

func TestLoadFileReadsYaml(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")

	content := "cacheDirectory: /var/lib/phasoradapter\nmetricsAddress: \":9999\"\nlogLevel: debug\n"

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	settings, err := LoadFile(path)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if settings.CacheDirectory != "/var/lib/phasoradapter" {
		t.Fatalf("unexpected cache directory: %q", settings.CacheDirectory)
	}

	if settings.MetricsAddress != ":9999" {
		t.Fatalf("unexpected metrics address: %q", settings.MetricsAddress)
	}

	if settings.LogLevel != "debug" {
		t.Fatalf("unexpected log level: %q", settings.LogLevel)
	}
}
