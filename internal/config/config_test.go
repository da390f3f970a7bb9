package config

import (
	"os"
	"path/filepath"
	"testing"
)

// validConfig returns a minimal valid sub-path configuration.
func validConfig() *Config {
	cfg := DefaultConfig()
	cfg.Site.Name = "Example"
	cfg.Repository = Repository{Service: "github", Name: "acme/site", Branch: "main"}
	return cfg
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.DataSource.Mode != ModeSubPath {
		t.Errorf("expected default mode %q, got %q", ModeSubPath, cfg.DataSource.Mode)
	}
	if folder, ok := cfg.DataSource.Data.(string); !ok || folder != "docs" {
		t.Errorf("expected default sub-folder %q, got %v", "docs", cfg.DataSource.Data)
	}
	if cfg.OutputDir != "dist" {
		t.Errorf("expected default output_dir %q, got %q", "dist", cfg.OutputDir)
	}
	if cfg.MaxConcurrency != 4 {
		t.Errorf("expected default max_concurrency 4, got %d", cfg.MaxConcurrency)
	}
	// No implicit filtering: a README.md or dotfile in the listing loads
	// unless the user configures excludes.
	if len(cfg.Include) != 0 || len(cfg.Exclude) != 0 {
		t.Errorf("default patterns must be empty, got include=%v exclude=%v", cfg.Include, cfg.Exclude)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "karaty.yml")

	original := validConfig()
	original.Site.Slogan = "a tiny site"
	original.Navigation = Navigation{List: []NavLink{
		{Display: "Home", Link: "/", Target: "_self"},
		{Display: "GitHub", Link: "https://github.com/acme", Target: "_blank"},
	}}
	original.Pages = map[string]map[string]any{
		"about.md": {"hide-navbar": true, "style": map[string]any{"h1": "text-xl"}},
	}
	original.OutputDir = "public"

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Site.Name != original.Site.Name {
		t.Errorf("site.name: got %q, want %q", loaded.Site.Name, original.Site.Name)
	}
	if loaded.Site.Slogan != original.Site.Slogan {
		t.Errorf("site.slogan: got %q, want %q", loaded.Site.Slogan, original.Site.Slogan)
	}
	if loaded.Repository != original.Repository {
		t.Errorf("repository: got %+v, want %+v", loaded.Repository, original.Repository)
	}
	if loaded.DataSource.Mode != ModeSubPath {
		t.Errorf("mode: got %q, want %q", loaded.DataSource.Mode, ModeSubPath)
	}
	if folder, ok := loaded.DataSource.Data.(string); !ok || folder != "docs" {
		t.Errorf("data: got %v, want %q", loaded.DataSource.Data, "docs")
	}
	if len(loaded.Navigation.List) != 2 || loaded.Navigation.List[1].Target != "_blank" {
		t.Errorf("navigation did not round-trip: %+v", loaded.Navigation.List)
	}
	if loaded.OutputDir != "public" {
		t.Errorf("output_dir: got %q, want %q", loaded.OutputDir, "public")
	}

	page, ok := loaded.Pages["about.md"]
	if !ok {
		t.Fatal("pages table for about.md missing after round-trip")
	}
	if hide, _ := page["hide-navbar"].(bool); !hide {
		t.Errorf("pages.about.md.hide-navbar: got %v", page["hide-navbar"])
	}
	if style, ok := page["style"].(map[string]any); !ok || style["h1"] != "text-xl" {
		t.Errorf("pages.about.md.style did not round-trip: %v", page["style"])
	}
}

func TestSaveAndLoadIndependentMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "karaty.yml")

	original := validConfig()
	original.DataSource = DataSource{
		Mode: ModeIndependentRepository,
		Data: map[string]any{"service": "gitee", "name": "acme/content", "branch": "master"},
	}
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := loaded.Validate(); err != nil {
		t.Fatalf("round-tripped config should validate: %v", err)
	}
	data, ok := loaded.DataSource.Data.(map[string]any)
	if !ok {
		t.Fatalf("data: got %T, want table", loaded.DataSource.Data)
	}
	if data["service"] != "gitee" || data["name"] != "acme/content" || data["branch"] != "master" {
		t.Errorf("data table did not round-trip: %v", data)
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
	if cfg.OutputDir != "dist" {
		t.Errorf("expected default output_dir, got %q", cfg.OutputDir)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "karaty.yml")

	cfg := validConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	os.Setenv("KARATY_OUTPUT_DIR", "public")
	defer os.Unsetenv("KARATY_OUTPUT_DIR")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.OutputDir != "public" {
		t.Errorf("env override failed: got %q, want %q", loaded.OutputDir, "public")
	}
}

func TestLoadEnvOverrideNestedKey(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "karaty.yml")

	cfg := validConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// A double underscore in the variable name descends into nested tables.
	os.Setenv("KARATY_SITE__NAME", "Overridden")
	defer os.Unsetenv("KARATY_SITE__NAME")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Site.Name != "Overridden" {
		t.Errorf("nested env override failed: got %q, want %q", loaded.Site.Name, "Overridden")
	}
}

func TestValidateValid(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Errorf("config should be valid, got: %v", err)
	}
}

func TestValidateEmptySiteName(t *testing.T) {
	cfg := validConfig()
	cfg.Site.Name = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for empty site.name")
	}
}

func TestValidateUnknownMode(t *testing.T) {
	cfg := validConfig()
	cfg.DataSource.Mode = "local"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for unknown mode")
	}
}

func TestValidateModeIsCaseInsensitive(t *testing.T) {
	cfg := validConfig()
	cfg.DataSource.Mode = "Sub-Path"
	if err := cfg.Validate(); err != nil {
		t.Errorf("mixed-case mode should validate, got: %v", err)
	}
}

func TestValidatePayloadShapeMismatch(t *testing.T) {
	// sub-path mode with a table payload.
	cfg := validConfig()
	cfg.DataSource.Data = map[string]any{"service": "github"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for table payload in sub-path mode")
	}

	// independent-repository mode with a string payload.
	cfg = validConfig()
	cfg.DataSource = DataSource{Mode: ModeIndependentRepository, Data: "docs"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for string payload in independent-repository mode")
	}

	// independent-repository mode with a missing field.
	cfg = validConfig()
	cfg.DataSource = DataSource{
		Mode: ModeIndependentRepository,
		Data: map[string]any{"service": "github", "name": "acme/content"},
	}
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for missing branch")
	}
}

func TestValidateSubPathRequiresRepository(t *testing.T) {
	cfg := validConfig()
	cfg.Repository.Branch = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for incomplete repository")
	}
}

func TestValidateNegativeConcurrency(t *testing.T) {
	cfg := validConfig()
	cfg.MaxConcurrency = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for negative max_concurrency")
	}
}
