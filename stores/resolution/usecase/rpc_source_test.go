package usecase

import (
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"

	baseabi "github.com/x-xyz/ensapi/base/abi"
	bEns "github.com/x-xyz/ensapi/base/ens"
	"github.com/x-xyz/ensapi/domain"
	"github.com/x-xyz/ensapi/domain/ens"
	"github.com/x-xyz/ensapi/service/chain/contract"
	mChain "github.com/x-xyz/ensapi/service/chain/mocks"
)

type rpcSourceSuite struct {
	suite.Suite
	chain    *mChain.Client
	im       ens.RpcSource
	resolver ens.AccountId
	addr     common.Address
}

func (s *rpcSourceSuite) SetupTest() {
	s.chain = &mChain.Client{}
	s.im = NewRpcSource(s.chain)
	s.resolver = ens.NewAccountId(1, publicResolver)
	s.addr = publicResolver.ToCommon()
}

func (s *rpcSourceSuite) TearDownTest() {
	s.chain.AssertExpectations(s.T())
}

func TestRpcSourceSuite(t *testing.T) {
	suite.Run(t, new(rpcSourceSuite))
}

func (s *rpcSourceSuite) onCall(method string, params ...interface{}) *mock.Call {
	args := []interface{}{mock.Anything, domain.ChainId(1), s.addr, mock.Anything, method}
	return s.chain.On("Call", append(args, params...)...)
}

func (s *rpcSourceSuite) probe(supported bool, err error) {
	s.onCall(baseabi.MethodSupportsInterface, contract.ExtendedResolverInterfaceId).Return([]interface{}{supported}, err).Once()
}

func (s *rpcSourceSuite) TestDirectCalls() {
	node := [32]byte(bEns.NameHash("vitalik.eth"))
	s.probe(false, nil)
	s.onCall(baseabi.MethodName, node).Return([]interface{}{""}, nil).Once()
	s.onCall(baseabi.MethodAddr, node).Return([]interface{}{common.HexToAddress(vitalik)}, nil).Once()
	s.onCall(baseabi.MethodAddrCoinType, node, mock.Anything).Return([]interface{}{common.HexToAddress(vitalik).Bytes()}, nil).Once()
	s.onCall(baseabi.MethodText, node, "avatar").Return([]interface{}{"ipfs://x"}, nil).Once()
	s.onCall(baseabi.MethodText, node, missingTextKey).Return([]interface{}{""}, nil).Once()

	recs, err := s.im.Get(mockCtx, s.resolver, "vitalik.eth", ens.Selection{
		Name:      true,
		Addresses: []bEns.CoinType{60, baseCoinType},
		Texts:     []string{"avatar", missingTextKey},
	}, true)
	s.Require().NoError(err)
	s.Nil(recs.Name)
	s.Equal(vitalik, *recs.Address(60))
	s.Equal(vitalik, *recs.Address(baseCoinType))
	s.Equal("ipfs://x", *recs.Texts["avatar"])
	s.Nil(recs.Texts[missingTextKey])
}

func (s *rpcSourceSuite) TestProbeErrorIsNegative() {
	node := [32]byte(bEns.NameHash("vitalik.eth"))
	s.probe(false, errors.New("execution reverted"))
	s.onCall(baseabi.MethodAddr, node).Return([]interface{}{common.Address{}}, nil).Once()

	recs, err := s.im.Get(mockCtx, s.resolver, "vitalik.eth", ens.Selection{Addresses: []bEns.CoinType{60}}, true)
	s.Require().NoError(err)
	s.Nil(recs.Address(60))
}

func (s *rpcSourceSuite) TestWildcardWithoutExtendedIsNull() {
	s.probe(false, errors.New("timeout"))

	recs, err := s.im.Get(mockCtx, s.resolver, "sub.vitalik.eth", ens.Selection{Name: true, Addresses: []bEns.CoinType{60}}, false)
	s.Require().NoError(err)
	s.Nil(recs.Name)
	s.Nil(recs.Address(60))
	_, ok := recs.Addresses[60]
	s.True(ok)
}

func (s *rpcSourceSuite) TestExtendedResolve() {
	s.probe(true, nil)
	dnsName, err := bEns.DNSEncode("jesse.base.eth")
	s.Require().NoError(err)
	out, err := baseabi.ENSResolverABI.Methods[baseabi.MethodAddr].Outputs.Pack(common.HexToAddress(vitalik))
	s.Require().NoError(err)
	s.onCall(baseabi.MethodResolve, dnsName, mock.Anything).Return([]interface{}{out}, nil).Once()

	recs, err := s.im.Get(mockCtx, s.resolver, "jesse.base.eth", ens.Selection{Addresses: []bEns.CoinType{60}}, false)
	s.Require().NoError(err)
	s.Equal(vitalik, *recs.Address(60))
}

func (s *rpcSourceSuite) TestOffchainLookupPropagates() {
	s.probe(true, nil)
	s.onCall(baseabi.MethodResolve, mock.Anything, mock.Anything).
		Return(nil, xerrors.Errorf("%s: %w", baseabi.MethodResolve, domain.ErrOffchainLookup)).Once()

	_, err := s.im.Get(mockCtx, s.resolver, "jesse.base.eth", ens.Selection{Texts: []string{"avatar"}}, true)
	s.ErrorIs(err, domain.ErrOffchainLookup)
}

func (s *rpcSourceSuite) TestFieldErrorPropagates() {
	errRpc := errors.New("connection refused")
	s.probe(false, nil)
	s.onCall(baseabi.MethodText, mock.Anything, "avatar").Return(nil, errRpc).Once()

	_, err := s.im.Get(mockCtx, s.resolver, "vitalik.eth", ens.Selection{Texts: []string{"avatar"}}, true)
	s.ErrorIs(err, errRpc)
}

func (s *rpcSourceSuite) TestEmptySelectionMakesNoCalls() {
	recs, err := s.im.Get(mockCtx, s.resolver, "vitalik.eth", ens.Selection{}, true)
	s.NoError(err)
	s.NotNil(recs)
}

func (s *rpcSourceSuite) TestGetResolver() {
	registry := ens.NewAccountId(1, "0x00000000000C2E074eC69A0dFb2997BA6C7d2e1e")
	node := bEns.NameHash("vitalik.eth")
	call := func() *mock.Call {
		return s.chain.On("Call", mock.Anything, domain.ChainId(1), registry.Address.ToCommon(), mock.Anything, "resolver", [32]byte(node))
	}

	call().Return([]interface{}{publicResolver.ToCommon()}, nil).Once()
	res, err := s.im.GetResolver(mockCtx, registry, node)
	s.NoError(err)
	s.True(res.Equals(publicResolver))

	call().Return([]interface{}{common.Address{}}, nil).Once()
	res, err = s.im.GetResolver(mockCtx, registry, node)
	s.NoError(err)
	s.True(res.IsEmpty())
}
