package abi

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func TestENSResolverABI(t *testing.T) {
	req := require.New(t)
	tests := []struct {
		method string
		sig    string
		id     string
	}{
		{MethodAddr, "addr(bytes32)", "3b3b57de"},
		{MethodAddrCoinType, "addr(bytes32,uint256)", "f1cb7e06"},
		{MethodText, "text(bytes32,string)", "59d1d43c"},
		{MethodName, "name(bytes32)", "691f3431"},
		{MethodSupportsInterface, "supportsInterface(bytes4)", "01ffc9a7"},
		{MethodResolve, "resolve(bytes,bytes)", "9061b923"},
	}
	for _, tt := range tests {
		m, ok := ENSResolverABI.Methods[tt.method]
		req.True(ok, tt.method)
		req.Equal(tt.sig, m.Sig)
		req.Equal(tt.id, common.Bytes2Hex(m.ID))
	}
}

func TestENSRegistryABI(t *testing.T) {
	req := require.New(t)
	m, ok := ENSRegistryABI.Methods["resolver"]
	req.True(ok)
	req.Equal("0178b8bf", common.Bytes2Hex(m.ID))
}
