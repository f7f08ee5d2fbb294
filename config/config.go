package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
)

// Config holds the application configuration
type Config struct {
	General  GeneralConfig  `toml:"general"`
	Database DatabaseConfig `toml:"database"`
	Ledger   LedgerConfig   `toml:"ledger"`
}

// GeneralConfig holds general settings
type GeneralConfig struct {
	LogLevel string `toml:"log_level"`
}

// DatabaseConfig holds database paths
type DatabaseConfig struct {
	StatePath string `toml:"state_path"`
}

// LedgerConfig holds ledger snapshot settings
type LedgerConfig struct {
	SnapshotPath string `toml:"snapshot_path"`
}

// DefaultConfig returns the default configuration rooted at home
func DefaultConfig(home string) Config {
	return Config{
		General: GeneralConfig{
			LogLevel: "info",
		},
		Database: DatabaseConfig{
			StatePath: filepath.Join(home, "data", "state_db"),
		},
		Ledger: LedgerConfig{
			SnapshotPath: filepath.Join(home, "data", "ledger.bin"),
		},
	}
}

// LoadConfig reads from config.toml and returns Config struct
func LoadConfig(path string) (Config, error) {
	var cfg Config
	file, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	err = toml.Unmarshal(file, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to path as TOML
func (c Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
