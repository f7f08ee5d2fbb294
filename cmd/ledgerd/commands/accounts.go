package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/airchains-network/ledgerd/types"
)

// AccountsCmd represents the accounts command
var AccountsCmd = &cobra.Command{
	Use:   "accounts [kind]",
	Short: "List ledger accounts",
	Long: `List all accounts in the ledger in insertion order, optionally filtered
by kind (wallet/program/token-account/stake).`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		l, err := openLedger(cfg)
		if err != nil {
			return err
		}

		accounts := l.Accounts()
		if len(args) == 1 {
			kind, err := types.ParseKind(args[0])
			if err != nil {
				return err
			}
			accounts = l.AccountsByKind(kind)
		}

		if len(accounts) == 0 {
			fmt.Println("No accounts found")
			return nil
		}

		for _, acc := range accounts {
			fmt.Println(acc.Summary())
		}
		fmt.Printf("\nTotal accounts: %d\n", len(accounts))
		fmt.Printf("Total supply (wallets): %d\n", l.TotalSupply())
		return nil
	},
}
