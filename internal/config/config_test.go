package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Audio {
		t.Error("expected audio enabled by default")
	}
	if !cfg.Coach.Enabled {
		t.Error("expected coach enabled by default")
	}
	if cfg.Coach.Provider != "" {
		t.Errorf("expected empty provider, got %q", cfg.Coach.Provider)
	}
}

func TestLoad_FileValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "audio: false\ncoach:\n  enabled: true\n  provider: gemini\n  model: gemini-pro\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Audio {
		t.Error("expected audio disabled")
	}
	if cfg.Coach.Provider != "gemini" || cfg.Coach.Model != "gemini-pro" {
		t.Errorf("coach = %+v", cfg.Coach)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("coach:\n  provider: openai\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("EXPLAINLY_COACH_PROVIDER", "anthropic")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Coach.Provider != "anthropic" {
		t.Errorf("provider = %q, want env override", cfg.Coach.Provider)
	}
}

func TestDefaultPath_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	path, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join("/tmp/xdg", "explainly", "config.yaml") {
		t.Errorf("path = %q", path)
	}
}
