package ens

import (
	"strings"

	"github.com/x-xyz/ensapi/domain"
)

const (
	AddrReverseName    = "addr.reverse"
	DefaultReverseName = "default.reverse"
	reverseSuffix      = "reverse"
)

// AddrReverseLabel is the lower-case hex of an address without 0x.
func AddrReverseLabel(address domain.Address) string {
	return strings.TrimPrefix(address.ToLowerStr(), "0x")
}

// CoinTypeReverseParent is the parent of a reverse node for coinType:
// "addr.reverse" for ETH, "default.reverse" for the default EVM coin type
// and "<coinTypeHex>.reverse" otherwise.
func CoinTypeReverseParent(coinType CoinType) string {
	switch coinType {
	case EthCoinType:
		return AddrReverseName
	case DefaultEvmCoinType:
		return DefaultReverseName
	default:
		return coinType.Hex() + "." + reverseSuffix
	}
}

// ReverseName builds the ENSIP-19 reverse name of address for coinType.
func ReverseName(address domain.Address, coinType CoinType) string {
	return AddrReverseLabel(address) + "." + CoinTypeReverseParent(coinType)
}

// ParseReverseName splits a reverse name into its address label and coin type.
func ParseReverseName(name string) (label string, coinType CoinType, ok bool) {
	labels := Labels(name)
	if len(labels) != 3 || labels[2] != reverseSuffix || len(labels[0]) != 40 {
		return "", 0, false
	}
	switch labels[1] {
	case "addr":
		coinType = EthCoinType
	case "default":
		coinType = DefaultEvmCoinType
	default:
		c, err := ParseCoinType("0x" + labels[1])
		if err != nil {
			return "", 0, false
		}
		coinType = c
	}
	return labels[0], coinType, true
}

// HealReverseLabel recovers the label behind a labelhash observed under a
// reverse parent by testing the candidate addresses that could own it.
func HealReverseLabel(labelHash LabelHash, candidates ...domain.Address) (string, bool) {
	for _, candidate := range candidates {
		label := AddrReverseLabel(candidate)
		if LabelHashOf(label) == labelHash {
			return label, true
		}
	}
	return "", false
}
