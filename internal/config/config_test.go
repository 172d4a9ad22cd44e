package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.ContentFile != "portfolio.json" {
		t.Errorf("expected default content_file %q, got %q", "portfolio.json", cfg.ContentFile)
	}
	if cfg.OutputDir != "public" {
		t.Errorf("expected default output_dir %q, got %q", "public", cfg.OutputDir)
	}
	if cfg.DefaultTheme != ThemeLight {
		t.Errorf("expected default theme %q, got %q", ThemeLight, cfg.DefaultTheme)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.portfolio.yml")

	original := DefaultConfig()
	original.ContentFile = "me.json"
	original.OutputDir = "dist"
	original.DefaultTheme = ThemeDark
	original.Exclude = []string{"**/*.psd", "drafts/**"}
	original.Port = 9000
	original.Production = true
	original.Watch = true

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Verify file exists.
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not created: %v", err)
	}

	// Load.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.ContentFile != original.ContentFile {
		t.Errorf("content_file: got %q, want %q", loaded.ContentFile, original.ContentFile)
	}
	if loaded.OutputDir != original.OutputDir {
		t.Errorf("output_dir: got %q, want %q", loaded.OutputDir, original.OutputDir)
	}
	if loaded.DefaultTheme != original.DefaultTheme {
		t.Errorf("default_theme: got %q, want %q", loaded.DefaultTheme, original.DefaultTheme)
	}
	if loaded.Port != original.Port {
		t.Errorf("port: got %d, want %d", loaded.Port, original.Port)
	}
	if !loaded.Production || !loaded.Watch {
		t.Errorf("booleans not round-tripped: production=%v watch=%v", loaded.Production, loaded.Watch)
	}
	if len(loaded.Exclude) != len(original.Exclude) {
		t.Errorf("exclude length: got %d, want %d", len(loaded.Exclude), len(original.Exclude))
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.OutputDir != "public" {
		t.Errorf("expected default output_dir, got %q", cfg.OutputDir)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("PORTFOLIO_OUTPUT_DIR", "site")
	t.Setenv("PORTFOLIO_PORT", "3000")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.OutputDir != "site" {
		t.Errorf("env override failed: got %q, want %q", loaded.OutputDir, "site")
	}
	if loaded.Port != 3000 {
		t.Errorf("env override failed: got %d, want %d", loaded.Port, 3000)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yml")
	if err := os.WriteFile(path, []byte("output_dir: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"dark theme", func(c *Config) { c.DefaultTheme = ThemeDark }, false},
		{"empty content file", func(c *Config) { c.ContentFile = "" }, true},
		{"empty output dir", func(c *Config) { c.OutputDir = "" }, true},
		{"unknown theme", func(c *Config) { c.DefaultTheme = "purple" }, true},
		{"negative port", func(c *Config) { c.Port = -1 }, true},
		{"port too large", func(c *Config) { c.Port = 70000 }, true},
		{"unknown log level", func(c *Config) { c.LogLevel = "loud" }, true},
		{"empty log level", func(c *Config) { c.LogLevel = "" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidEmail(t *testing.T) {
	for _, s := range []string{"", "me@example.com"} {
		if err := validEmail(s); err != nil {
			t.Errorf("validEmail(%q) = %v", s, err)
		}
	}
	for _, s := range []string{"me", "@example.com", "me@"} {
		if err := validEmail(s); err == nil {
			t.Errorf("validEmail(%q) should fail", s)
		}
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b , c ", []string{"a", "b", "c"}},
		{"**/*.psd", []string{"**/*.psd"}},
		{"", nil},
		{"  ,  , ", nil},
	}
	for _, tt := range tests {
		got := splitAndTrim(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("splitAndTrim(%q) len = %d, want %d", tt.input, len(got), len(tt.want))
			continue
		}
		for i, v := range got {
			if v != tt.want[i] {
				t.Errorf("splitAndTrim(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
			}
		}
	}
}
