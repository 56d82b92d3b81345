package ens

import (
	"encoding/hex"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	goens "github.com/wealdtech/go-ens/v3"
)

// Node is the namehash of a name.
type Node = common.Hash

// LabelHash is keccak256 of a single label.
type LabelHash = common.Hash

// RootNode is the namehash of the empty name.
var RootNode = Node{}

// LabelHashOf hashes a label. A label in encoded-labelhash form ("[<64 hex>]")
// stands for the hash it carries and is decoded instead of hashed.
func LabelHashOf(label string) LabelHash {
	if h, ok := DecodeEncodedLabelHash(label); ok {
		return h
	}
	return crypto.Keccak256Hash([]byte(label))
}

// MakeNode returns keccak256(parent ++ labelHash).
func MakeNode(labelHash LabelHash, parent Node) Node {
	return crypto.Keccak256Hash(parent[:], labelHash[:])
}

// ComputeNode returns the node of label.parent.
func ComputeNode(label string, parent Node) Node {
	return MakeNode(LabelHashOf(label), parent)
}

// NameHash walks labels right to left; the empty name is the root.
func NameHash(name string) Node {
	node := RootNode
	if name == "" {
		return node
	}
	labels := strings.Split(name, ".")
	for i := len(labels) - 1; i >= 0; i-- {
		node = ComputeNode(labels[i], node)
	}
	return node
}

// Normalize runs ENS normalization on every label that is not an encoded labelhash.
func Normalize(name string) (string, error) {
	if name == "" {
		return "", nil
	}
	labels := strings.Split(name, ".")
	for i, label := range labels {
		if IsEncodedLabelHash(label) {
			labels[i] = strings.ToLower(label)
			continue
		}
		normalized, err := goens.NormaliseDomain(label)
		if err != nil {
			return "", err
		}
		labels[i] = normalized
	}
	return strings.Join(labels, "."), nil
}

// IsNormalized reports whether name is already in normalized form.
func IsNormalized(name string) bool {
	if name != "" && (strings.HasPrefix(name, ".") || strings.HasSuffix(name, ".") || strings.Contains(name, "..")) {
		return false
	}
	normalized, err := Normalize(name)
	return err == nil && normalized == name
}

// Labels splits a name into its labels; the root has none.
func Labels(name string) []string {
	if name == "" {
		return nil
	}
	return strings.Split(name, ".")
}

// Parent drops the leftmost label.
func Parent(name string) string {
	if i := strings.Index(name, "."); i >= 0 {
		return name[i+1:]
	}
	return ""
}

// EncodeLabelHash renders a labelhash as "[<hex>]".
func EncodeLabelHash(h LabelHash) string {
	return "[" + hex.EncodeToString(h[:]) + "]"
}

func IsEncodedLabelHash(label string) bool {
	_, ok := DecodeEncodedLabelHash(label)
	return ok
}

func DecodeEncodedLabelHash(label string) (LabelHash, bool) {
	if len(label) != 66 || label[0] != '[' || label[65] != ']' {
		return LabelHash{}, false
	}
	b, err := hex.DecodeString(label[1:65])
	if err != nil {
		return LabelHash{}, false
	}
	return common.BytesToHash(b), true
}
