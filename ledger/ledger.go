// Package ledger implements the in-memory account ledger: an ordered,
// duplicate-free collection of typed accounts with balance-conserving
// transfers between wallets.
package ledger

import (
	"fmt"
	"math"

	"github.com/airchains-network/ledgerd/types"
)

// Ledger holds accounts in insertion order. It owns its accounts
// exclusively: lookups return copies and balances change only through
// Transfer. A Ledger is not safe for concurrent use.
type Ledger struct {
	accounts []types.Account
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{}
}

// AddAccount appends acc to the ledger. It fails with
// ErrDuplicateAccount if an account with the same pubkey is already
// present, leaving the ledger unchanged.
func (l *Ledger) AddAccount(acc types.Account) error {
	if _, ok := l.index(acc.Pubkey); ok {
		return fmt.Errorf("%w: %s", ErrDuplicateAccount, acc.Pubkey)
	}
	l.accounts = append(l.accounts, acc)
	return nil
}

// Account returns a copy of the account with the given pubkey. The
// second return value reports whether it exists.
func (l *Ledger) Account(pk types.Pubkey) (types.Account, bool) {
	i, ok := l.index(pk)
	if !ok {
		return types.Account{}, false
	}
	return l.accounts[i], true
}

// Accounts returns a copy of the account sequence in insertion order.
func (l *Ledger) Accounts() []types.Account {
	out := make([]types.Account, len(l.accounts))
	copy(out, l.accounts)
	return out
}

// AccountsByKind returns copies of all accounts of the given kind, in
// insertion order. No match yields an empty slice.
func (l *Ledger) AccountsByKind(k types.Kind) []types.Account {
	out := make([]types.Account, 0)
	for _, acc := range l.accounts {
		if acc.Kind() == k {
			out = append(out, acc)
		}
	}
	return out
}

// Len returns the number of accounts in the ledger.
func (l *Ledger) Len() int {
	return len(l.accounts)
}

// TotalSupply returns the sum of all wallet balances.
func (l *Ledger) TotalSupply() uint64 {
	var total uint64
	for _, acc := range l.accounts {
		if acc.Kind() == types.KindWallet {
			total += acc.Type.Wallet.Balance
		}
	}
	return total
}

// Transfer moves amount from one wallet to another. Preconditions are
// checked in order: from must resolve to a wallet, then to, then from
// must hold at least amount; the first violation fails with
// ErrAccountNotFound, ErrNotAWallet or ErrInsufficientFunds and leaves
// both balances untouched. A credit that would wrap the destination
// balance past the uint64 maximum fails with ErrBalanceOverflow before
// any mutation. Transferring from a wallet to itself is permitted and
// leaves its balance unchanged.
func (l *Ledger) Transfer(from, to types.Pubkey, amount uint64) error {
	fromIdx, err := l.walletIndex(from)
	if err != nil {
		return err
	}
	toIdx, err := l.walletIndex(to)
	if err != nil {
		return err
	}

	src := &l.accounts[fromIdx].Type.Wallet
	if src.Balance < amount {
		return fmt.Errorf("%w: %s has %d, transfer needs %d",
			ErrInsufficientFunds, from.Short(), src.Balance, amount)
	}

	dst := &l.accounts[toIdx].Type.Wallet
	// A self-transfer debits before it credits, so it cannot wrap.
	if fromIdx != toIdx && dst.Balance > math.MaxUint64-amount {
		return fmt.Errorf("%w: crediting %d to %s", ErrBalanceOverflow, amount, to.Short())
	}

	src.Balance -= amount
	dst.Balance += amount
	return nil
}

func (l *Ledger) index(pk types.Pubkey) (int, bool) {
	for i := range l.accounts {
		if l.accounts[i].Pubkey == pk {
			return i, true
		}
	}
	return 0, false
}

func (l *Ledger) walletIndex(pk types.Pubkey) (int, error) {
	i, ok := l.index(pk)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrAccountNotFound, pk)
	}
	if k := l.accounts[i].Kind(); k != types.KindWallet {
		return 0, fmt.Errorf("%w: %s is a %s", ErrNotAWallet, pk.Short(), k)
	}
	return i, nil
}
