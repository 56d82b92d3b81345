package ens

import (
	"strconv"
	"strings"

	"github.com/x-xyz/ensapi/domain"
)

// CoinType identifies an address record per ENSIP-9/ENSIP-11.
type CoinType uint32

const (
	// EthCoinType is SLIP-44 ETH, the coin type of the namespace root chain.
	EthCoinType CoinType = 60
	// DefaultEvmCoinType is the ENSIP-19 "any EVM chain" coin type.
	DefaultEvmCoinType CoinType = 0x80000000

	evmBit = uint32(0x80000000)
)

func (c CoinType) String() string {
	return strconv.FormatUint(uint64(c), 10)
}

// Hex is lower-case without 0x, as used in ENSIP-19 reverse names.
func (c CoinType) Hex() string {
	return strconv.FormatUint(uint64(c), 16)
}

func ParseCoinType(s string) (CoinType, error) {
	s = strings.TrimSpace(s)
	base := 10
	if strings.HasPrefix(s, "0x") {
		s, base = s[2:], 16
	}
	v, err := strconv.ParseUint(s, base, 32)
	if err != nil {
		return 0, domain.ErrInvalidCoinType
	}
	return CoinType(v), nil
}

// CoinTypeForChain maps an EVM chain id to its ENSIP-11 coin type. The
// namespace root chain is addressed by the ETH coin type.
func CoinTypeForChain(chainId, rootChainId domain.ChainId) CoinType {
	if chainId == rootChainId {
		return EthCoinType
	}
	return CoinType(evmBit | uint32(chainId))
}

// ChainForCoinType inverts CoinTypeForChain. DefaultEvmCoinType maps to chain 0.
func ChainForCoinType(coinType CoinType, rootChainId domain.ChainId) (domain.ChainId, bool) {
	if coinType == EthCoinType {
		return rootChainId, true
	}
	if IsEvmCoinType(coinType) {
		return domain.ChainId(uint32(coinType) &^ evmBit), true
	}
	return 0, false
}

// IsEvmCoinType reports whether records of this coin type hold 20-byte addresses.
func IsEvmCoinType(coinType CoinType) bool {
	return coinType == EthCoinType || uint32(coinType)&evmBit != 0
}
