package usecase

import (
	"encoding/hex"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	bEns "github.com/x-xyz/ensapi/base/ens"
	"github.com/x-xyz/ensapi/base/ptr"
)

// formatAddressBytes renders a raw addr(bytes32,uint256) result. EVM coin
// types holding 20 bytes are checksummed, anything else is 0x-hex. Empty
// means no record.
func formatAddressBytes(coinType bEns.CoinType, b []byte) *string {
	if len(b) == 0 {
		return nil
	}
	if bEns.IsEvmCoinType(coinType) && len(b) == common.AddressLength {
		return ptr.String(common.BytesToAddress(b).Hex())
	}
	return ptr.String("0x" + hex.EncodeToString(b))
}

// formatAddressString normalizes an address record stored by the indexer.
func formatAddressString(coinType bEns.CoinType, s string) *string {
	s = strings.TrimSpace(s)
	if s == "" || s == "0x" {
		return nil
	}
	if bEns.IsEvmCoinType(coinType) && common.IsHexAddress(s) {
		return ptr.String(common.HexToAddress(s).Hex())
	}
	return ptr.String(s)
}
