package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load = %v", err)
	}
	if cfg.Player.Name != "Alex" {
		t.Errorf("name = %q, want the default", cfg.Player.Name)
	}
	if cfg.Player.SkipAssessment {
		t.Error("skip_assessment defaulted to true")
	}
}

func TestLoadReadsPlayerSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := "[player]\nname = \"Morgan\"\nskip_assessment = true\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load = %v", err)
	}
	if cfg.Player.Name != "Morgan" {
		t.Errorf("name = %q, want Morgan", cfg.Player.Name)
	}
	if !cfg.Player.SkipAssessment {
		t.Error("skip_assessment not read")
	}
}

func TestLoadEmptyNameFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[player]\nname = \"\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load = %v", err)
	}
	if cfg.Player.Name != "Alex" {
		t.Errorf("name = %q, want the default", cfg.Player.Name)
	}
}

func TestLoadRejectsMalformedToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[player\nname ="), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("malformed config accepted")
	}
}

func TestDefaultPathEnvOverride(t *testing.T) {
	t.Setenv("HRQUEST_CONFIG", "/tmp/custom.toml")

	p, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath = %v", err)
	}
	if p != "/tmp/custom.toml" {
		t.Errorf("path = %q", p)
	}
}

func TestDefaultPathXDG(t *testing.T) {
	t.Setenv("HRQUEST_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	p, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath = %v", err)
	}
	if p != filepath.Join("/xdg", "hrquest", "config.toml") {
		t.Errorf("path = %q", p)
	}
}
