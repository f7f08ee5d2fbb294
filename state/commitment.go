package state

import (
	"bytes"
	"encoding/hex"
	"sort"

	"github.com/ethereum/go-ethereum/rlp"
	"golang.org/x/crypto/sha3"

	"github.com/airchains-network/ledgerd/types"
)

// sptNode is a node in the sparse prefix tree behind the state
// commitment.
type sptNode struct {
	hash     []byte
	children map[byte]*sptNode
	value    []byte
	leaf     bool
}

func newSPTNode() *sptNode {
	return &sptNode{children: make(map[byte]*sptNode)}
}

type spt struct {
	root *sptNode
}

func newSPT() *spt {
	return &spt{root: newSPTNode()}
}

func (n *sptNode) computeHash() []byte {
	if n.leaf {
		return n.value
	}

	var buf []byte
	for i := 0; i < 256; i++ {
		if child, exists := n.children[byte(i)]; exists {
			buf = append(buf, child.hash...)
		} else {
			// zero hash for empty children
			buf = append(buf, make([]byte, 32)...)
		}
	}

	hash := sha3.NewLegacyKeccak256()
	hash.Write(buf)
	return hash.Sum(nil)
}

func (t *spt) insert(key, value []byte) {
	current := t.root
	for _, b := range key {
		if _, exists := current.children[b]; !exists {
			current.children[b] = newSPTNode()
		}
		current = current.children[b]
	}
	current.leaf = true
	current.value = value
	current.hash = value
}

func (t *spt) updateHashes(node *sptNode) {
	if node.leaf {
		return
	}
	for _, child := range node.children {
		t.updateHashes(child)
	}
	node.hash = node.computeHash()
}

func (t *spt) rootHash() string {
	t.updateHashes(t.root)
	return hex.EncodeToString(t.root.hash)
}

// leafAccount flattens an account across the variant payloads for RLP
// leaf encoding.
type leafAccount struct {
	Kind      uint8
	Balance   uint64
	Data      []byte
	Owner     []byte
	CreatedAt uint64
}

func accountLeaf(acc types.Account) ([]byte, error) {
	leaf := leafAccount{
		Kind:      uint8(acc.Kind()),
		Balance:   acc.Type.Balance(),
		CreatedAt: acc.CreatedAt,
	}
	switch acc.Kind() {
	case types.KindProgram:
		leaf.Data = acc.Type.Program.Data
	case types.KindTokenAccount:
		owner := acc.Type.TokenAccount.Owner
		leaf.Owner = owner[:]
	}
	return rlp.EncodeToBytes(leaf)
}

// Commitment returns the keccak-256 root of the sparse prefix tree
// over the account set, keyed by pubkey with RLP-encoded account
// leaves. The account set is sorted by pubkey first, so the result is
// deterministic for a given set regardless of input order.
func Commitment(accounts []types.Account) (string, error) {
	sorted := make([]types.Account, len(accounts))
	copy(sorted, accounts)
	sort.Slice(sorted, func(i, j int) bool {
		return bytes.Compare(sorted[i].Pubkey[:], sorted[j].Pubkey[:]) < 0
	})

	t := newSPT()
	for _, acc := range sorted {
		value, err := accountLeaf(acc)
		if err != nil {
			return "", err
		}
		t.insert(acc.Pubkey[:], value)
	}
	return t.rootHash(), nil
}
