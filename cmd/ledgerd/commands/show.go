package commands

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/airchains-network/ledgerd/types"
)

// ShowCmd represents the show command
var ShowCmd = &cobra.Command{
	Use:   "show [pubkey]",
	Short: "Show a single account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pk, err := types.PubkeyFromString(args[0])
		if err != nil {
			return err
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		l, err := openLedger(cfg)
		if err != nil {
			return err
		}

		acc, ok := l.Account(pk)
		if !ok {
			return fmt.Errorf("account %s not found", pk.Short())
		}

		fmt.Printf("Pubkey: %s\n", acc.Pubkey)
		fmt.Printf("Kind: %s\n", acc.Kind())
		fmt.Printf("Created: %s\n", time.Unix(int64(acc.CreatedAt), 0).UTC().Format(time.RFC3339))
		switch acc.Kind() {
		case types.KindWallet:
			fmt.Printf("Balance: %d\n", acc.Type.Wallet.Balance)
		case types.KindProgram:
			fmt.Printf("Data: %s\n", hex.EncodeToString(acc.Type.Program.Data))
		case types.KindTokenAccount:
			fmt.Printf("Owner: %s\n", acc.Type.TokenAccount.Owner)
			fmt.Printf("Amount: %d\n", acc.Type.TokenAccount.Amount)
		case types.KindStake:
			fmt.Printf("Amount: %d\n", acc.Type.Stake.Amount)
		}
		return nil
	},
}
