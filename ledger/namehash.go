package ledger

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// NameHash computes the ENS node of a dotted name (EIP-137). The empty name is the root.
func NameHash(name string) common.Hash {
	var node common.Hash
	if name == "" {
		return node
	}
	labels := strings.Split(name, ".")
	for i := len(labels) - 1; i >= 0; i-- {
		labelHash := LabelHash(labels[i])
		node = crypto.Keccak256Hash(node.Bytes(), labelHash.Bytes())
	}
	return node
}

// LabelHash is the keccak256 of a single label.
func LabelHash(label string) common.Hash {
	return crypto.Keccak256Hash([]byte(label))
}
