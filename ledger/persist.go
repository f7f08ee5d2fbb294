package ledger

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/airchains-network/ledgerd/codec"
	"github.com/airchains-network/ledgerd/types"
)

// Save writes the borsh encoding of the account sequence to path,
// creating parent directories as needed and truncating any existing
// file. The on-disk format is the encoded account vector: a u32 count
// followed by each account in insertion order.
func (l *Ledger) Save(path string) error {
	data, err := codec.Encode(l.accounts)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create ledger directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write ledger file: %w", err)
	}
	return nil
}

// Load reads the file at path and decodes it into a new ledger,
// preserving the saved account order. The pubkey-uniqueness invariant
// is re-validated account by account, so a corrupted or hand-edited
// file with repeated pubkeys fails with ErrDuplicateAccount.
func Load(path string) (*Ledger, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger file: %w", err)
	}
	accounts, err := codec.Decode[[]types.Account](data)
	if err != nil {
		return nil, err
	}
	l := New()
	for _, acc := range accounts {
		if err := l.AddAccount(acc); err != nil {
			return nil, err
		}
	}
	return l, nil
}
