package domain

import (
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

type ChainId int32

func (c ChainId) String() string {
	return strconv.FormatInt(int64(c), 10)
}

// ParseChainId parses a positive decimal chain id.
func ParseChainId(s string) (ChainId, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil || v <= 0 {
		return 0, ErrInvalidChainId
	}
	return ChainId(v), nil
}

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

// IsZero treats both the empty string and the zero address as unset.
func (a Address) IsZero() bool {
	return a.IsEmpty() || a.Equals(EmptyAddress)
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

func (a Address) ToCommon() common.Address {
	return common.HexToAddress(string(a))
}

// Checksum returns the EIP-55 form.
func (a Address) Checksum() Address {
	return Address(a.ToCommon().Hex())
}

func AddressFromCommon(a common.Address) Address {
	return Address(a.Hex()).ToLower()
}
