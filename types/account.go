package types

import (
	"fmt"
	"time"

	"github.com/near/borsh-go"
)

// Kind discriminates the account variants.
type Kind uint8

const (
	KindWallet Kind = iota
	KindProgram
	KindTokenAccount
	KindStake
)

func (k Kind) String() string {
	switch k {
	case KindWallet:
		return "wallet"
	case KindProgram:
		return "program"
	case KindTokenAccount:
		return "token-account"
	case KindStake:
		return "stake"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// ParseKind maps the user-facing kind names onto Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "wallet":
		return KindWallet, nil
	case "program":
		return KindProgram, nil
	case "token-account", "token_account":
		return KindTokenAccount, nil
	case "stake":
		return KindStake, nil
	default:
		return 0, fmt.Errorf("unknown account kind: %q", s)
	}
}

// Wallet holds a spendable balance.
type Wallet struct {
	Balance uint64
}

// Program holds opaque executable data.
type Program struct {
	Data []byte
}

// TokenAccount holds a token amount on behalf of an owner account.
type TokenAccount struct {
	Owner  Pubkey
	Amount uint64
}

// Stake holds an amount locked with a validator.
type Stake struct {
	Amount uint64
}

// AccountType is the tagged union over the four account variants. The
// Enum field selects the populated payload; only the selected payload
// goes on the wire, prefixed by the single-byte variant tag.
type AccountType struct {
	Enum         borsh.Enum `borsh_enum:"true"`
	Wallet       Wallet
	Program      Program
	TokenAccount TokenAccount
	Stake        Stake
}

func NewWallet(balance uint64) AccountType {
	return AccountType{Enum: borsh.Enum(KindWallet), Wallet: Wallet{Balance: balance}}
}

func NewProgram(data []byte) AccountType {
	return AccountType{Enum: borsh.Enum(KindProgram), Program: Program{Data: data}}
}

func NewTokenAccount(owner Pubkey, amount uint64) AccountType {
	return AccountType{Enum: borsh.Enum(KindTokenAccount), TokenAccount: TokenAccount{Owner: owner, Amount: amount}}
}

func NewStake(amount uint64) AccountType {
	return AccountType{Enum: borsh.Enum(KindStake), Stake: Stake{Amount: amount}}
}

// Kind returns the variant tag.
func (t AccountType) Kind() Kind {
	return Kind(t.Enum)
}

// Balance returns the amount carried by the selected variant. Programs
// hold no funds and report zero.
func (t AccountType) Balance() uint64 {
	switch t.Kind() {
	case KindWallet:
		return t.Wallet.Balance
	case KindTokenAccount:
		return t.TokenAccount.Amount
	case KindStake:
		return t.Stake.Amount
	default:
		return 0
	}
}

// Account is a typed ledger record. The pubkey is fixed at construction
// and unique within a ledger.
type Account struct {
	Pubkey    Pubkey
	CreatedAt uint64
	Type      AccountType
}

// NewAccount builds an account around t with a fresh random pubkey.
func NewAccount(t AccountType) Account {
	return Account{
		Pubkey:    NewPubkey(),
		CreatedAt: uint64(time.Now().Unix()),
		Type:      t,
	}
}

// Kind returns the variant tag of the account's payload.
func (a Account) Kind() Kind {
	return a.Type.Kind()
}

// Summary returns a one-line rendering "pubkey|kind|balance" for CLI
// and log output.
func (a Account) Summary() string {
	return fmt.Sprintf("%s|%s|%d", a.Pubkey.Short(), a.Kind(), a.Type.Balance())
}
