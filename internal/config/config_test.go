package config

import (
	"path/filepath"
	"testing"
)

func TestValidateFillsDefaults(t *testing.T) {
	var cfg Config
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.Manifest != "exercises.yaml" {
		t.Fatalf("unexpected manifest default: %q", cfg.Manifest)
	}
	if cfg.DataDir == "" {
		t.Fatalf("expected data dir default")
	}
	if cfg.StatePath() != filepath.Join(cfg.DataDir, "progress.db") {
		t.Fatalf("unexpected state path: %q", cfg.StatePath())
	}
}

func TestValidateKeepsExplicitValues(t *testing.T) {
	cfg := Config{DataDir: "/tmp/gokata-test", Manifest: "custom.yaml", NoEmoji: true}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.DataDir != "/tmp/gokata-test" || cfg.Manifest != "custom.yaml" {
		t.Fatalf("expected explicit values preserved: %#v", cfg)
	}
	if !cfg.NoEmoji {
		t.Fatalf("expected no-emoji preserved")
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("GOKATA_NO_EMOJI", "true")
	t.Setenv("GOKATA_MANIFEST", "alt.yaml")
	t.Setenv("GOKATA_DATA_DIR", t.TempDir())
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.NoEmoji {
		t.Fatalf("expected no-emoji from environment")
	}
	if cfg.Manifest != "alt.yaml" {
		t.Fatalf("expected manifest from environment, got %q", cfg.Manifest)
	}
}
