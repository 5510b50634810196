package config

import (
	"os"
	"path/filepath"
	"testing"

	jsoniter "github.com/json-iterator/go"
)

func TestValidateRequiresChannels(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty channels")
	}
}

func TestValidateFillsDefaults(t *testing.T) {
	cfg := &Config{Channels: map[string]jsoniter.RawMessage{
		"console": jsoniter.RawMessage(`{}`),
	}}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if cfg.Store.Path != "hr_system.db" {
		t.Fatalf("store path = %q", cfg.Store.Path)
	}
	if cfg.Policy.Path != "policies.yaml" {
		t.Fatalf("policy path = %q", cfg.Policy.Path)
	}
	if cfg.Reports.Dir != "reports" {
		t.Fatalf("reports dir = %q", cfg.Reports.Dir)
	}
}

func TestLoadSystemConfigMissingFileGivesDefaults(t *testing.T) {
	cfg := LoadSystemConfig(filepath.Join(t.TempDir(), "absent.json"))
	def := DefaultSystemConfig()
	if *cfg != *def {
		t.Fatalf("got %+v, want defaults %+v", cfg, def)
	}
}

func TestLoadSystemConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "system.json")
	content := `{"max_retries": 7, "log_level": "debug"}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write system config: %v", err)
	}

	cfg := LoadSystemConfig(path)
	if cfg.MaxRetries != 7 || cfg.LogLevel != "debug" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	// Untouched keys keep their defaults.
	if cfg.PolicyTopK != DefaultSystemConfig().PolicyTopK {
		t.Fatalf("default lost: %+v", cfg)
	}
}
