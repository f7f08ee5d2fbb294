// Package codec wraps the borsh binary format used for account and
// ledger persistence. The encoding is deterministic and versionless:
// integers are little-endian and bit-exact, byte sequences are length
// prefixed, and tagged unions carry a single-byte variant tag, so
// Decode(Encode(v)) reproduces v exactly.
package codec

import (
	"fmt"

	"github.com/near/borsh-go"
)

// Encode serializes v into its borsh representation.
func Encode[T any](v T) ([]byte, error) {
	data, err := borsh.Serialize(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialize, err)
	}
	return data, nil
}

// Decode parses the borsh representation of T from data. Malformed or
// truncated input fails with ErrDeserialize.
func Decode[T any](data []byte) (T, error) {
	var v T
	if err := borsh.Deserialize(&v, data); err != nil {
		return v, fmt.Errorf("%w: %v", ErrDeserialize, err)
	}
	return v, nil
}
