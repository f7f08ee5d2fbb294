package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/airchains-network/ledgerd/config"
	"github.com/airchains-network/ledgerd/ledger"
	"github.com/airchains-network/ledgerd/state"
)

func newLogger(level string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		ForceColors:     true,
	})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	return log
}

func ledgerHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".ledgerd"), nil
}

func loadConfig() (config.Config, error) {
	home, err := ledgerHome()
	if err != nil {
		return config.Config{}, err
	}
	return config.LoadConfig(filepath.Join(home, "config.toml"))
}

// openLedger loads the snapshot at the configured path, starting from
// an empty ledger when no snapshot exists yet.
func openLedger(cfg config.Config) (*ledger.Ledger, error) {
	if _, err := os.Stat(cfg.Ledger.SnapshotPath); os.IsNotExist(err) {
		return ledger.New(), nil
	}
	return ledger.Load(cfg.Ledger.SnapshotPath)
}

// persist saves the snapshot, syncs the state store and returns the
// state commitment over the new account set.
func persist(cfg config.Config, l *ledger.Ledger) (string, error) {
	if err := l.Save(cfg.Ledger.SnapshotPath); err != nil {
		return "", err
	}

	store, err := state.Open(cfg.Database.StatePath)
	if err != nil {
		return "", err
	}
	defer store.Close()

	if err := store.SyncLedger(l); err != nil {
		return "", err
	}
	return store.Commitment()
}
