package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	if cfg.ColumnCount != 3 {
		t.Errorf("ColumnCount = %d, want 3", cfg.ColumnCount)
	}
	if cfg.MarginXPercent != 0 || cfg.MarginYPercent != 0 {
		t.Errorf("default margins = %v/%v, want 0/0", cfg.MarginXPercent, cfg.MarginYPercent)
	}
	if !cfg.Wrap() {
		t.Error("MovementsWrap should default to true")
	}
	if cfg.ModMask != "<Ctrl><Alt>" {
		t.Errorf("ModMask = %q, want <Ctrl><Alt>", cfg.ModMask)
	}
	if cfg.Keys["KP_5"] != "center" {
		t.Errorf("KP_5 binding = %q, want center", cfg.Keys["KP_5"])
	}
}

func TestLoadFromPathMissingFile(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	if err != nil {
		t.Fatalf("missing config file should not error, got %v", err)
	}
	if cfg.ColumnCount != 3 {
		t.Errorf("missing file should yield defaults, ColumnCount = %d", cfg.ColumnCount)
	}
}

func TestLoadFromPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
column_count: 4
margin_x_percent: 2.5
movements_wrap: false
keys:
  KP_5: maximize
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path, nil)
	if err != nil {
		t.Fatalf("LoadFromPath() returned error: %v", err)
	}

	if cfg.ColumnCount != 4 {
		t.Errorf("ColumnCount = %d, want 4", cfg.ColumnCount)
	}
	if cfg.MarginXPercent != 2.5 {
		t.Errorf("MarginXPercent = %v, want 2.5", cfg.MarginXPercent)
	}
	if cfg.Wrap() {
		t.Error("movements_wrap: false was not honored")
	}
	if cfg.Keys["KP_5"] != "maximize" {
		t.Errorf("KP_5 override = %q, want maximize", cfg.Keys["KP_5"])
	}
	// Unmentioned settings keep their defaults.
	if cfg.ModMask != "<Ctrl><Alt>" {
		t.Errorf("ModMask = %q, want default", cfg.ModMask)
	}
	if cfg.Keys["KP_7"] != "top-left" {
		t.Errorf("unmentioned binding KP_7 = %q, want default top-left", cfg.Keys["KP_7"])
	}
}

func TestLoadFromPathMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("column_count: [not a number"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFromPath(path, nil); err == nil {
		t.Error("malformed YAML should fail to load")
	}
}

func TestValidateDemotesInvalidValues(t *testing.T) {
	cfg := &Config{
		ColumnCount:    -2,
		MarginXPercent: 150,
		MarginYPercent: -1,
	}
	cfg.Validate(nil)

	if cfg.ColumnCount != 3 {
		t.Errorf("ColumnCount demoted to %d, want 3", cfg.ColumnCount)
	}
	if cfg.MarginXPercent != 0 {
		t.Errorf("MarginXPercent demoted to %v, want 0", cfg.MarginXPercent)
	}
	if cfg.MarginYPercent != 0 {
		t.Errorf("MarginYPercent demoted to %v, want 0", cfg.MarginYPercent)
	}
	if !cfg.Wrap() {
		t.Error("MovementsWrap should demote to true")
	}
	if len(cfg.Keys) == 0 {
		t.Error("missing key map should demote to defaults")
	}
}

func TestValidateDropsUnknownCommands(t *testing.T) {
	cfg := Default()
	cfg.Keys["KP_5"] = "defenestrate"

	cfg.Validate(func(name string) bool { return name != "defenestrate" })

	if _, bound := cfg.Keys["KP_5"]; bound {
		t.Error("binding to an unknown command survived validation")
	}
	if _, bound := cfg.Keys["KP_7"]; !bound {
		t.Error("valid binding was dropped")
	}
}

func TestDumpRoundTrips(t *testing.T) {
	cfg := Default()
	cfg.ColumnCount = 5

	out, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() returned error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(out), 0644); err != nil {
		t.Fatal(err)
	}

	back, err := LoadFromPath(path, nil)
	if err != nil {
		t.Fatalf("LoadFromPath() returned error: %v", err)
	}
	if back.ColumnCount != 5 {
		t.Errorf("round-tripped ColumnCount = %d, want 5", back.ColumnCount)
	}
}
