package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/airchains-network/ledgerd/config"
)

// InitCmd represents the init command
var InitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the ledger daemon",
	Long: `Initialize the ledger daemon with the required configuration.
This command creates the necessary directories and configuration file under ~/.ledgerd.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(cmd)
	},
}

func init() {
	InitCmd.Flags().String("ledger.snapshot-path", "", "Ledger snapshot file path")
	InitCmd.Flags().String("database.state-path", "", "State database path")
	InitCmd.Flags().String("log.level", "info", "Log level (debug/info/warn/error)")
}

func initCommand(cmd *cobra.Command) error {
	snapshotPath, _ := cmd.Flags().GetString("ledger.snapshot-path")
	statePath, _ := cmd.Flags().GetString("database.state-path")
	logLevel, _ := cmd.Flags().GetString("log.level")

	log := newLogger(logLevel)

	home, err := ledgerHome()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(home, 0755); err != nil {
		return fmt.Errorf("failed to create .ledgerd directory: %w", err)
	}

	cfg := config.DefaultConfig(home)
	cfg.General.LogLevel = logLevel
	if snapshotPath != "" {
		cfg.Ledger.SnapshotPath = snapshotPath
	}
	if statePath != "" {
		cfg.Database.StatePath = statePath
	}

	dirs := []string{
		filepath.Dir(cfg.Ledger.SnapshotPath),
		cfg.Database.StatePath,
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	configPath := filepath.Join(home, "config.toml")
	if err := cfg.Save(configPath); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	log.Infof("Created config file at: %s", configPath)

	// Show configuration summary
	fmt.Println("\n=== Configuration Summary ===")
	fmt.Printf("Snapshot Path: %s\n", cfg.Ledger.SnapshotPath)
	fmt.Printf("State DB Path: %s\n", cfg.Database.StatePath)
	fmt.Printf("Log Level: %s\n", cfg.General.LogLevel)
	fmt.Printf("Config File: %s\n", configPath)

	log.Info("Initialization completed successfully!")
	log.Info("Create accounts with: ledgerd create-account wallet --balance 1000")

	return nil
}
