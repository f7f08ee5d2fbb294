package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/airchains-network/ledgerd/types"
)

// CreateAccountCmd represents the create-account command
var CreateAccountCmd = &cobra.Command{
	Use:   "create-account [kind]",
	Short: "Create a new ledger account",
	Long: `Create a new account of the given kind (wallet/program/token-account/stake)
with a freshly generated pubkey and add it to the ledger.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return createAccountCommand(cmd, args[0])
	},
}

func init() {
	CreateAccountCmd.Flags().Uint64("balance", 0, "Initial wallet balance")
	CreateAccountCmd.Flags().Uint64("amount", 0, "Token or stake amount")
	CreateAccountCmd.Flags().String("owner", "", "Owner pubkey for token accounts (hex)")
	CreateAccountCmd.Flags().String("data", "", "Program data (hex)")
}

func createAccountCommand(cmd *cobra.Command, kindName string) error {
	kind, err := types.ParseKind(kindName)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg.General.LogLevel)

	var accType types.AccountType
	switch kind {
	case types.KindWallet:
		balance, _ := cmd.Flags().GetUint64("balance")
		accType = types.NewWallet(balance)
	case types.KindProgram:
		dataHex, _ := cmd.Flags().GetString("data")
		data, err := hex.DecodeString(dataHex)
		if err != nil {
			return fmt.Errorf("invalid --data: %w", err)
		}
		accType = types.NewProgram(data)
	case types.KindTokenAccount:
		ownerHex, _ := cmd.Flags().GetString("owner")
		owner, err := types.PubkeyFromString(ownerHex)
		if err != nil {
			return fmt.Errorf("invalid --owner: %w", err)
		}
		amount, _ := cmd.Flags().GetUint64("amount")
		accType = types.NewTokenAccount(owner, amount)
	case types.KindStake:
		amount, _ := cmd.Flags().GetUint64("amount")
		accType = types.NewStake(amount)
	}

	l, err := openLedger(cfg)
	if err != nil {
		return err
	}

	acc := types.NewAccount(accType)
	if err := l.AddAccount(acc); err != nil {
		return err
	}

	commitment, err := persist(cfg, l)
	if err != nil {
		return err
	}

	log.Infof("Created %s account %s", kind, acc.Pubkey)
	fmt.Printf("Pubkey: %s\n", acc.Pubkey)
	fmt.Printf("Account: %s\n", acc.Summary())
	fmt.Printf("State Commitment: %s\n", commitment)

	return nil
}
