package ledger

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/airchains-network/ledgerd/types"
)

func newWallet(balance uint64) types.Account {
	return types.NewAccount(types.NewWallet(balance))
}

func TestAddAccount(t *testing.T) {
	require := require.New(t)

	l := New()
	require.Equal(0, l.Len())

	acc := newWallet(100)
	require.NoError(l.AddAccount(acc))
	require.Equal(1, l.Len())

	got, ok := l.Account(acc.Pubkey)
	require.True(ok)
	require.Equal(acc, got)
}

func TestAddAccountRejectsDuplicate(t *testing.T) {
	require := require.New(t)

	l := New()
	acc := newWallet(100)
	require.NoError(l.AddAccount(acc))

	dup := acc
	dup.Type = types.NewWallet(999)
	err := l.AddAccount(dup)
	require.ErrorIs(err, ErrDuplicateAccount)

	// ledger untouched by the failed add
	require.Equal(1, l.Len())
	got, ok := l.Account(acc.Pubkey)
	require.True(ok)
	require.Equal(uint64(100), got.Type.Wallet.Balance)
}

func TestAccountAbsentIsNotAnError(t *testing.T) {
	require := require.New(t)

	l := New()
	_, ok := l.Account(types.NewPubkey())
	require.False(ok)
}

func TestAccountReturnsCopy(t *testing.T) {
	require := require.New(t)

	l := New()
	acc := newWallet(100)
	require.NoError(l.AddAccount(acc))

	got, ok := l.Account(acc.Pubkey)
	require.True(ok)
	got.Type.Wallet.Balance = 0

	again, ok := l.Account(acc.Pubkey)
	require.True(ok)
	require.Equal(uint64(100), again.Type.Wallet.Balance)
}

func TestAccountsByKind(t *testing.T) {
	require := require.New(t)

	l := New()
	w1 := newWallet(1)
	program := types.NewAccount(types.NewProgram([]byte{1, 2}))
	w2 := newWallet(2)
	stake := types.NewAccount(types.NewStake(50))
	for _, acc := range []types.Account{w1, program, w2, stake} {
		require.NoError(l.AddAccount(acc))
	}

	wallets := l.AccountsByKind(types.KindWallet)
	require.Len(wallets, 2)
	require.Equal(w1.Pubkey, wallets[0].Pubkey)
	require.Equal(w2.Pubkey, wallets[1].Pubkey)

	require.Len(l.AccountsByKind(types.KindStake), 1)
	require.Empty(l.AccountsByKind(types.KindTokenAccount))
}

func TestTransferConservation(t *testing.T) {
	require := require.New(t)

	l := New()
	a := newWallet(10_000)
	b := newWallet(50_000_000)
	require.NoError(l.AddAccount(a))
	require.NoError(l.AddAccount(b))

	supplyBefore := l.TotalSupply()
	require.NoError(l.Transfer(b.Pubkey, a.Pubkey, 100))

	gotA, _ := l.Account(a.Pubkey)
	gotB, _ := l.Account(b.Pubkey)
	require.Equal(uint64(10_100), gotA.Type.Wallet.Balance)
	require.Equal(uint64(49_999_900), gotB.Type.Wallet.Balance)
	require.Equal(supplyBefore, l.TotalSupply())
}

func TestTransferInsufficientFunds(t *testing.T) {
	require := require.New(t)

	l := New()
	a := newWallet(10)
	b := newWallet(2)
	require.NoError(l.AddAccount(a))
	require.NoError(l.AddAccount(b))

	err := l.Transfer(a.Pubkey, b.Pubkey, 15)
	require.ErrorIs(err, ErrInsufficientFunds)

	gotA, _ := l.Account(a.Pubkey)
	gotB, _ := l.Account(b.Pubkey)
	require.Equal(uint64(10), gotA.Type.Wallet.Balance)
	require.Equal(uint64(2), gotB.Type.Wallet.Balance)
}

func TestTransferMissingAccount(t *testing.T) {
	require := require.New(t)

	l := New()
	a := newWallet(10)
	require.NoError(l.AddAccount(a))

	require.ErrorIs(l.Transfer(types.NewPubkey(), a.Pubkey, 1), ErrAccountNotFound)
	require.ErrorIs(l.Transfer(a.Pubkey, types.NewPubkey(), 1), ErrAccountNotFound)

	got, _ := l.Account(a.Pubkey)
	require.Equal(uint64(10), got.Type.Wallet.Balance)
}

func TestTransferRequiresWallets(t *testing.T) {
	require := require.New(t)

	l := New()
	wallet := newWallet(10)
	program := types.NewAccount(types.NewProgram(nil))
	require.NoError(l.AddAccount(wallet))
	require.NoError(l.AddAccount(program))

	require.ErrorIs(l.Transfer(wallet.Pubkey, program.Pubkey, 1), ErrNotAWallet)
	require.ErrorIs(l.Transfer(program.Pubkey, wallet.Pubkey, 1), ErrNotAWallet)

	got, _ := l.Account(wallet.Pubkey)
	require.Equal(uint64(10), got.Type.Wallet.Balance)
}

func TestTransferToSelf(t *testing.T) {
	require := require.New(t)

	l := New()
	a := newWallet(10)
	require.NoError(l.AddAccount(a))

	require.NoError(l.Transfer(a.Pubkey, a.Pubkey, 7))
	got, _ := l.Account(a.Pubkey)
	require.Equal(uint64(10), got.Type.Wallet.Balance)

	require.ErrorIs(l.Transfer(a.Pubkey, a.Pubkey, 11), ErrInsufficientFunds)
}

func TestTransferOverflow(t *testing.T) {
	require := require.New(t)

	l := New()
	a := newWallet(100)
	b := newWallet(math.MaxUint64)
	require.NoError(l.AddAccount(a))
	require.NoError(l.AddAccount(b))

	err := l.Transfer(a.Pubkey, b.Pubkey, 1)
	require.ErrorIs(err, ErrBalanceOverflow)

	gotA, _ := l.Account(a.Pubkey)
	gotB, _ := l.Account(b.Pubkey)
	require.Equal(uint64(100), gotA.Type.Wallet.Balance)
	require.Equal(uint64(math.MaxUint64), gotB.Type.Wallet.Balance)
}

func TestTotalSupplyCountsOnlyWallets(t *testing.T) {
	require := require.New(t)

	l := New()
	require.Zero(l.TotalSupply())

	require.NoError(l.AddAccount(newWallet(40)))
	require.NoError(l.AddAccount(types.NewAccount(types.NewStake(200))))
	require.NoError(l.AddAccount(types.NewAccount(types.NewTokenAccount(types.NewPubkey(), 500))))
	require.Equal(uint64(40), l.TotalSupply())
}
