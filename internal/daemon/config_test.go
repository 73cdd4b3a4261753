package daemon

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.API.Host != "127.0.0.1" {
		t.Errorf("Host = %q, want 127.0.0.1", cfg.API.Host)
	}
	if cfg.API.Port != 7421 {
		t.Errorf("Port = %d, want 7421", cfg.API.Port)
	}
	if cfg.Store.Dir == "" {
		t.Error("Store.Dir should default to the pacely home")
	}
	if cfg.Telemetry.Prometheus {
		t.Error("Prometheus should be off by default")
	}
}

func TestPacelyHome_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PACELY_HOME", dir)

	if got := PacelyHome(); got != dir {
		t.Errorf("PacelyHome() = %q, want %q", got, dir)
	}
}

func TestLoadConfig_NoFile(t *testing.T) {
	t.Setenv("PACELY_HOME", t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.API.Port != 7421 {
		t.Errorf("Port = %d, want default 7421", cfg.API.Port)
	}
}

func TestSaveLoadConfig_RoundTrip(t *testing.T) {
	t.Setenv("PACELY_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.API.Port = 9000
	cfg.Analytics.Timezone = "Asia/Tokyo"
	cfg.Telemetry.Prometheus = true

	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig() error: %v", err)
	}

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if loaded.API.Port != 9000 {
		t.Errorf("Port = %d, want 9000", loaded.API.Port)
	}
	if loaded.Analytics.Timezone != "Asia/Tokyo" {
		t.Errorf("Timezone = %q, want Asia/Tokyo", loaded.Analytics.Timezone)
	}
	if !loaded.Telemetry.Prometheus {
		t.Error("Prometheus should round-trip as true")
	}
}

func TestLoadConfig_BadFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PACELY_HOME", dir)

	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("not = [valid"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(); err == nil {
		t.Error("LoadConfig() should fail on malformed TOML")
	}
}
