package main

import (
	"os"

	"github.com/airchains-network/ledgerd/cmd/ledgerd/commands"
	"github.com/spf13/cobra"
)

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "ledgerd",
		Short: "An in-memory account ledger with binary persistence",
		Long: `An in-memory ledger of typed accounts supporting balance transfers and persistence.
Accounts are keyed by a 32 byte pubkey and saved as a borsh-encoded snapshot plus a LevelDB state store.`,
	}

	// Add commands
	rootCmd.AddCommand(commands.InitCmd)
	rootCmd.AddCommand(commands.CreateAccountCmd)
	rootCmd.AddCommand(commands.AccountsCmd)
	rootCmd.AddCommand(commands.TransferCmd)
	rootCmd.AddCommand(commands.ShowCmd)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
