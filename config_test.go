package press

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "press.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultConfig_Valid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadConfig_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
loading_message = "Bitte warten"
default_duration_ms = 500
right_to_left = true
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.LoadingMessage != "Bitte warten" {
		t.Errorf("loading message = %q", cfg.LoadingMessage)
	}
	if cfg.DefaultDurationMs != 500 {
		t.Errorf("default duration = %d, want 500", cfg.DefaultDurationMs)
	}
	if !cfg.RightToLeft {
		t.Error("right_to_left should be set")
	}

	// Untouched keys keep their defaults.
	if cfg.LoadedMessage != defaultLoadedMessage {
		t.Errorf("loaded message = %q, want default", cfg.LoadedMessage)
	}
	if cfg.FrameRate != 60 {
		t.Errorf("frame rate = %d, want 60", cfg.FrameRate)
	}
	if !cfg.AutoStart {
		t.Error("auto_start should default to true")
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadConfig_RejectsInvalidValues(t *testing.T) {
	path := writeConfig(t, "frame_rate = 500\n")
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := map[string]func(*Config){
		"empty loading message": func(c *Config) { c.LoadingMessage = "" },
		"empty loaded message":  func(c *Config) { c.LoadedMessage = "" },
		"zero default duration": func(c *Config) { c.DefaultDurationMs = 0 },
		"zero min duration":     func(c *Config) { c.MinDurationMs = 0 },
		"max below min":         func(c *Config) { c.MaxDurationMs = c.MinDurationMs - 1 },
		"zero announce delay":   func(c *Config) { c.AnnounceDelayMs = 0 },
		"zero cache window":     func(c *Config) { c.ItemCacheWindowMs = 0 },
		"frame rate too low":    func(c *Config) { c.FrameRate = 0 },
		"frame rate too high":   func(c *Config) { c.FrameRate = 241 },
		"zero queue size":       func(c *Config) { c.QueueSize = 0 },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestConfig_OptionsApply(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LoadingMessage = "Busy"
	cfg.LoadedMessage = "Ready"
	cfg.DefaultDurationMs = 750
	cfg.AutoStart = false
	cfg.CancelTimersOnTeardown = true
	cfg.RightToLeft = true

	c, err := New(NewWidget(), cfg.Options()...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Stop()

	if c.Running() {
		t.Error("auto_start=false should defer startup")
	}
	if c.loadingMessage != "Busy" || c.loadedMessage != "Ready" {
		t.Error("announcement messages should be applied")
	}
	if c.defaultDuration != 750*time.Millisecond {
		t.Errorf("default duration = %v, want 750ms", c.defaultDuration)
	}
	if !c.cancelTimersOnTeardown {
		t.Error("teardown policy should be applied")
	}
	if !c.rtl {
		t.Error("layout direction should be applied")
	}
}
