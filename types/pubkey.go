package types

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// PubkeyLen is the byte length of an account identifier.
const PubkeyLen = 32

// Pubkey is the 32 byte public identifier of a ledger account.
// Equality is byte-wise.
type Pubkey [PubkeyLen]byte

var EmptyPubkey = Pubkey{}

// NewPubkey returns a fresh random identifier.
func NewPubkey() Pubkey {
	var pk Pubkey
	if _, err := rand.Read(pk[:]); err != nil {
		// crypto/rand.Read does not fail on any supported platform
		panic(fmt.Sprintf("read entropy: %v", err))
	}
	return pk
}

// PubkeyFromString parses the hex representation produced by String.
func PubkeyFromString(s string) (Pubkey, error) {
	var pk Pubkey
	b, err := hex.DecodeString(s)
	if err != nil {
		return pk, fmt.Errorf("invalid pubkey %q: %v", s, err)
	}
	if len(b) != PubkeyLen {
		return pk, fmt.Errorf("invalid pubkey length: %d", len(b))
	}
	copy(pk[:], b)
	return pk, nil
}

// String implements fmt.Stringer.
func (pk Pubkey) String() string {
	return hex.EncodeToString(pk[:])
}

// Short returns an abbreviated rendering for log and CLI output.
func (pk Pubkey) Short() string {
	s := pk.String()
	return s[:8] + ".." + s[len(s)-4:]
}

// MarshalText returns the hex representation of pk.
func (pk Pubkey) MarshalText() ([]byte, error) {
	result := make([]byte, PubkeyLen*2)
	hex.Encode(result, pk[:])
	return result, nil
}

// UnmarshalText parses a hex-encoded pubkey.
func (pk *Pubkey) UnmarshalText(input []byte) error {
	decoded, err := hex.DecodeString(string(input))
	if err != nil {
		return err
	}
	if len(decoded) != PubkeyLen {
		return fmt.Errorf("invalid pubkey length: %d", len(decoded))
	}
	copy(pk[:], decoded)
	return nil
}
