package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/airchains-network/ledgerd/types"
)

// TransferCmd represents the transfer command
var TransferCmd = &cobra.Command{
	Use:   "transfer [from] [to] [amount]",
	Short: "Transfer funds between two wallets",
	Long: `Transfer the given amount from one wallet to another. Both pubkeys are
hex encoded; the transfer fails if either account is missing, is not a
wallet, or the source balance is insufficient.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := types.PubkeyFromString(args[0])
		if err != nil {
			return err
		}
		to, err := types.PubkeyFromString(args[1])
		if err != nil {
			return err
		}
		amount, err := strconv.ParseUint(args[2], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", args[2], err)
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log := newLogger(cfg.General.LogLevel)

		l, err := openLedger(cfg)
		if err != nil {
			return err
		}

		if err := l.Transfer(from, to, amount); err != nil {
			return err
		}

		commitment, err := persist(cfg, l)
		if err != nil {
			return err
		}

		log.Infof("Transferred %d from %s to %s", amount, from.Short(), to.Short())
		if src, ok := l.Account(from); ok {
			fmt.Printf("From: %s\n", src.Summary())
		}
		if dst, ok := l.Account(to); ok {
			fmt.Printf("To: %s\n", dst.Summary())
		}
		fmt.Printf("State Commitment: %s\n", commitment)
		return nil
	},
}
