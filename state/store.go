package state

import (
	"fmt"

	"github.com/airchains-network/ledgerd/codec"
	"github.com/airchains-network/ledgerd/db"
	"github.com/airchains-network/ledgerd/ledger"
	"github.com/airchains-network/ledgerd/types"
)

const accountPrefix = "account:"

// Store is the durable account store, keyed by pubkey under an
// account: prefix in LevelDB. Accounts iterate back out in pubkey
// order, not insertion order; the ordered sequence lives in the
// ledger snapshot file.
type Store struct {
	db db.DB
}

// Open opens (creating if absent) the store at the given path.
func Open(path string) (*Store, error) {
	ldb, err := db.NewLevelDB(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open state database: %w", err)
	}
	return &Store{db: ldb}, nil
}

// NewStore wraps an existing database.
func NewStore(d db.DB) *Store {
	return &Store{db: d}
}

func accountKey(pk types.Pubkey) []byte {
	return append([]byte(accountPrefix), pk[:]...)
}

// SaveAccount writes acc under its pubkey, replacing any previous value.
func (s *Store) SaveAccount(acc types.Account) error {
	data, err := codec.Encode(acc)
	if err != nil {
		return err
	}
	if err := s.db.Put(accountKey(acc.Pubkey), data); err != nil {
		return fmt.Errorf("failed to save account %s: %w", acc.Pubkey.Short(), err)
	}
	return nil
}

// GetAccount returns the stored account for pk; the second return
// value reports whether it exists.
func (s *Store) GetAccount(pk types.Pubkey) (types.Account, bool, error) {
	data, err := s.db.Get(accountKey(pk))
	if err != nil {
		return types.Account{}, false, fmt.Errorf("failed to get account %s: %w", pk.Short(), err)
	}
	if data == nil {
		return types.Account{}, false, nil
	}
	acc, err := codec.Decode[types.Account](data)
	if err != nil {
		return types.Account{}, false, err
	}
	return acc, true, nil
}

// DeleteAccount removes pk from the store. Deleting an absent account
// is not an error.
func (s *Store) DeleteAccount(pk types.Pubkey) error {
	return s.db.Delete(accountKey(pk))
}

// AllAccounts returns every stored account in pubkey order.
func (s *Store) AllAccounts() ([]types.Account, error) {
	accounts := make([]types.Account, 0)
	err := s.db.Iterate([]byte(accountPrefix), func(key, value []byte) error {
		acc, err := codec.Decode[types.Account](value)
		if err != nil {
			return fmt.Errorf("account %x: %w", key[len(accountPrefix):], err)
		}
		accounts = append(accounts, acc)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

// SyncLedger writes every account of l into the store.
func (s *Store) SyncLedger(l *ledger.Ledger) error {
	for _, acc := range l.Accounts() {
		if err := s.SaveAccount(acc); err != nil {
			return err
		}
	}
	return nil
}

// Ledger rebuilds a ledger from the stored accounts, re-validating
// pubkey uniqueness. Account order follows pubkey order.
func (s *Store) Ledger() (*ledger.Ledger, error) {
	accounts, err := s.AllAccounts()
	if err != nil {
		return nil, err
	}
	l := ledger.New()
	for _, acc := range accounts {
		if err := l.AddAccount(acc); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Commitment returns the state commitment over the stored account set.
func (s *Store) Commitment() (string, error) {
	accounts, err := s.AllAccounts()
	if err != nil {
		return "", err
	}
	return Commitment(accounts)
}

// Close shuts down the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
