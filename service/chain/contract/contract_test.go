package contract

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	baseabi "github.com/x-xyz/ensapi/base/abi"
	bCtx "github.com/x-xyz/ensapi/base/ctx"
	bEns "github.com/x-xyz/ensapi/base/ens"
	"github.com/x-xyz/ensapi/domain"
	"github.com/x-xyz/ensapi/domain/ens"
	"github.com/x-xyz/ensapi/service/chain/mocks"
)

var resolverAccount = ens.NewAccountId(1, "0x231b0Ee14048e9dCcD1d247744d114a4EB5E8E63")

func TestRegistry_Resolver(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	registryAccount := ens.NewAccountId(1, "0x00000000000C2E074eC69A0dFb2997BA6C7d2e1e")
	node := bEns.NameHash("vitalik.eth")

	chainService := &mocks.Client{}
	chainService.On("Call", mock.Anything, domain.ChainId(1), registryAccount.Address.ToCommon(), baseabi.ENSRegistryABI, "resolver", [32]byte(node)).
		Return([]interface{}{resolverAccount.Address.ToCommon()}, nil).Once()

	got, err := NewRegistry(chainService, registryAccount).Resolver(ctx, node)
	req.NoError(err)
	req.Equal(resolverAccount.Address, got)
	chainService.AssertExpectations(t)
}

func TestResolver_Resolve(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	node := bEns.NameHash("sub.example.eth")
	dnsName, err := bEns.DNSEncode("sub.example.eth")
	req.NoError(err)

	inner, err := baseabi.ENSResolverABI.Pack(baseabi.MethodText, [32]byte(node), "url")
	req.NoError(err)
	encoded, err := baseabi.ENSResolverABI.Methods[baseabi.MethodText].Outputs.Pack("https://example.com")
	req.NoError(err)

	chainService := &mocks.Client{}
	chainService.On("Call", mock.Anything, domain.ChainId(1), resolverAccount.Address.ToCommon(), baseabi.ENSResolverABI, baseabi.MethodResolve, dnsName, inner).
		Return([]interface{}{encoded}, nil).Once()

	got, err := NewResolver(chainService, resolverAccount).Resolve(ctx, dnsName, baseabi.MethodText, [32]byte(node), "url")
	req.NoError(err)
	req.Equal([]interface{}{"https://example.com"}, got)
	chainService.AssertExpectations(t)
}

func TestResolver_SupportsInterface(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	chainService := &mocks.Client{}
	chainService.On("Call", mock.Anything, domain.ChainId(1), mock.Anything, mock.Anything, baseabi.MethodSupportsInterface, ExtendedResolverInterfaceId).
		Return([]interface{}{true}, nil).Once()
	supported, err := NewResolver(chainService, resolverAccount).SupportsInterface(ctx, ExtendedResolverInterfaceId)
	req.NoError(err)
	req.True(supported)

	boom := errors.New("boom")
	chainService.On("Call", mock.Anything, domain.ChainId(1), mock.Anything, mock.Anything, baseabi.MethodSupportsInterface, ExtendedResolverInterfaceId).
		Return(nil, boom).Once()
	_, err = NewResolver(chainService, resolverAccount).SupportsInterface(ctx, ExtendedResolverInterfaceId)
	req.ErrorIs(err, boom)
}
