package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-floatform/internal/config"
)

func TestFromMapDefaults(t *testing.T) {
	cfg, err := config.FromMap(nil)
	if err != nil {
		t.Fatalf("from map: %v", err)
	}
	want := config.Config{LogLevel: "info", LogFormat: "text", Addr: ":8080"}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestFromMapOverrides(t *testing.T) {
	cfg, err := config.FromMap(map[string]string{
		"LOG_LEVEL":               "debug",
		"FLOATFORM_LOG_FORMAT":    "json",
		"ADDR":                    "127.0.0.1:9000",
		"DEFINITION":              "forms/contact.yaml",
		"FLOATFORM_THEME":         "midnight",
		"FLOATFORM_THEME_VARIANT": "contrast",
		"FLOATFORM_TEMPLATES_DIR": "./templates",
	})
	if err != nil {
		t.Fatalf("from map: %v", err)
	}
	want := config.Config{
		LogLevel:     "debug",
		LogFormat:    "json",
		Addr:         "127.0.0.1:9000",
		TemplatesDir: "./templates",
		Definition:   "forms/contact.yaml",
		Theme:        "midnight",
		ThemeVariant: "contrast",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestFromMapRejectsUnknownFormat(t *testing.T) {
	_, err := config.FromMap(map[string]string{"LOG_FORMAT": "xml"})
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoadReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("FLOATFORM_DEFINITION=from-file.yaml\nFLOATFORM_ADDR=:7070\n"), 0o644); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("FLOATFORM_ADDR", ":6060")
	t.Cleanup(func() { os.Unsetenv("FLOATFORM_DEFINITION") })

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Definition != "from-file.yaml" {
		t.Fatalf("definition = %q, want value from file", cfg.Definition)
	}
	if cfg.Addr != ":6060" {
		t.Fatalf("addr = %q, environment should win over file", cfg.Addr)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatalf("expected error for missing env file")
	}
}
