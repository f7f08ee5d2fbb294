package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPubkeyUnique(t *testing.T) {
	require := require.New(t)

	seen := make(map[Pubkey]bool)
	for i := 0; i < 100; i++ {
		pk := NewPubkey()
		require.False(seen[pk])
		seen[pk] = true
	}
}

func TestPubkeyStringRoundTrip(t *testing.T) {
	require := require.New(t)

	pk := NewPubkey()
	parsed, err := PubkeyFromString(pk.String())
	require.NoError(err)
	require.Equal(pk, parsed)
}

func TestPubkeyTextRoundTrip(t *testing.T) {
	require := require.New(t)

	pk := NewPubkey()
	text, err := pk.MarshalText()
	require.NoError(err)

	var parsed Pubkey
	require.NoError(parsed.UnmarshalText(text))
	require.Equal(pk, parsed)
}

func TestPubkeyFromStringRejectsBadInput(t *testing.T) {
	require := require.New(t)

	_, err := PubkeyFromString("zzzz")
	require.Error(err)

	_, err = PubkeyFromString("deadbeef")
	require.Error(err)
}

func TestPubkeyShort(t *testing.T) {
	require := require.New(t)

	pk := NewPubkey()
	short := pk.Short()
	require.Len(short, 14)
	require.Equal(pk.String()[:8], short[:8])
}
