// Package daemon manages the Pacely runtime lifecycle and configuration.
package daemon

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all Pacely configuration.
type Config struct {
	Store     StoreConfig     `toml:"store"`
	API       APIConfig       `toml:"api"`
	Analytics AnalyticsConfig `toml:"analytics"`
	Telemetry TelemetryConfig `toml:"telemetry"`
}

// StoreConfig controls task storage.
type StoreConfig struct {
	Dir string `toml:"dir"`
}

// APIConfig controls the HTTP API server.
type APIConfig struct {
	Host        string   `toml:"host"`
	Port        int      `toml:"port"`
	CORSOrigins []string `toml:"cors_origins"`
}

// AnalyticsConfig controls month-boundary computation.
type AnalyticsConfig struct {
	Timezone string `toml:"timezone"` // IANA name; "" = local time
}

// TelemetryConfig controls observability endpoints.
type TelemetryConfig struct {
	Prometheus bool `toml:"prometheus"`
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() Config {
	return Config{
		Store: StoreConfig{
			Dir: pacelyHome(),
		},
		API: APIConfig{
			Host:        "127.0.0.1",
			Port:        7421,
			CORSOrigins: []string{"*"},
		},
		Analytics: AnalyticsConfig{
			Timezone: "",
		},
		Telemetry: TelemetryConfig{
			Prometheus: false,
		},
	}
}

// LoadConfig reads config from ~/.pacely/config.toml, falling back to defaults.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	path := filepath.Join(pacelyHome(), "config.toml")

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil // No config file yet — use defaults
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// SaveConfig writes the config to ~/.pacely/config.toml.
func SaveConfig(cfg Config) error {
	path := filepath.Join(pacelyHome(), "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(cfg)
}

// pacelyHome returns the Pacely data directory.
func pacelyHome() string {
	if env := os.Getenv("PACELY_HOME"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".pacely")
}

// PacelyHome is exported for use by other packages.
func PacelyHome() string {
	return pacelyHome()
}
