package usecase

import (
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/ensapi/base/ctx"
	bEns "github.com/x-xyz/ensapi/base/ens"
	"github.com/x-xyz/ensapi/domain"
	"github.com/x-xyz/ensapi/domain/ens"
	"github.com/x-xyz/ensapi/domain/ens/mocks"
)

var mockCtx = ctx.Background()

const (
	vitalik        = "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"
	vitalikLower   = "0xd8da6bf26964af9d7eed9e03e53415d37aa96045"
	coinType1001   = bEns.CoinType(1001)
	baseCoinType   = bEns.CoinType(2147492101)
	missingTextKey = "nonexistent-key"
)

type indexSourceSuite struct {
	suite.Suite
	records         *mocks.ResolverRecordsRepo
	domainResolvers *mocks.DomainResolverRepo
	primaryNames    *mocks.PrimaryNameRepo
	im              ens.IndexSource

	resolver ens.AccountId
	node     bEns.Node
}

func (s *indexSourceSuite) SetupTest() {
	s.records = &mocks.ResolverRecordsRepo{}
	s.domainResolvers = &mocks.DomainResolverRepo{}
	s.primaryNames = &mocks.PrimaryNameRepo{}
	s.im = NewIndexSource(s.records, s.domainResolvers, s.primaryNames)
	s.resolver = ens.NewAccountId(1, defaultingResolver)
	s.node = bEns.NameHash("vitalik.eth")
}

func (s *indexSourceSuite) TearDownTest() {
	s.records.AssertExpectations(s.T())
	s.domainResolvers.AssertExpectations(s.T())
	s.primaryNames.AssertExpectations(s.T())
}

func TestIndexSourceSuite(t *testing.T) {
	suite.Run(t, new(indexSourceSuite))
}

func (s *indexSourceSuite) stored(records ...ens.AddressRecord) {
	name := "vitalik.eth"
	s.records.On("FindOne", mockCtx, ens.NewResolverRecordsId(s.resolver, s.node)).Return(&ens.ResolverRecords{
		ChainId:        1,
		Resolver:       defaultingResolver.ToLower(),
		Node:           s.node.Hex(),
		Name:           &name,
		AddressRecords: records,
		TextRecords:    []ens.TextRecord{{Key: "avatar", Value: "ipfs://x"}},
	}, nil)
}

func (s *indexSourceSuite) TestAddressDefaulting() {
	s.stored(ens.AddressRecord{CoinType: uint32(bEns.DefaultEvmCoinType), Address: "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"})
	expected := common.HexToAddress("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa").Hex()

	// a missing coin type reads the default record
	recs, err := s.im.Get(mockCtx, s.resolver, s.node, ens.Selection{Addresses: []bEns.CoinType{coinType1001}}, true)
	s.Require().NoError(err)
	s.Require().NotNil(recs.Address(coinType1001))
	s.Equal("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", *recs.Address(coinType1001))

	recs, err = s.im.Get(mockCtx, s.resolver, s.node, ens.Selection{Addresses: []bEns.CoinType{baseCoinType}}, true)
	s.Require().NoError(err)
	s.Equal(expected, *recs.Address(baseCoinType))

	// the default coin type itself
	recs, err = s.im.Get(mockCtx, s.resolver, s.node, ens.Selection{Addresses: []bEns.CoinType{bEns.DefaultEvmCoinType}}, true)
	s.Require().NoError(err)
	s.Equal(expected, *recs.Address(bEns.DefaultEvmCoinType))

	// not surfaced unless selected
	recs, err = s.im.Get(mockCtx, s.resolver, s.node, ens.Selection{Addresses: []bEns.CoinType{baseCoinType}}, true)
	s.Require().NoError(err)
	_, surfaced := recs.Addresses[bEns.DefaultEvmCoinType]
	s.False(surfaced)

	// no defaulting without the flag
	recs, err = s.im.Get(mockCtx, s.resolver, s.node, ens.Selection{Addresses: []bEns.CoinType{coinType1001}}, false)
	s.Require().NoError(err)
	s.Nil(recs.Address(coinType1001))
}

func (s *indexSourceSuite) TestAddressDefaultingFromEthRecord() {
	s.stored(ens.AddressRecord{CoinType: uint32(bEns.EthCoinType), Address: "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"})
	expected := common.HexToAddress("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa").Hex()

	recs, err := s.im.Get(mockCtx, s.resolver, s.node, ens.Selection{Addresses: []bEns.CoinType{coinType1001, bEns.EthCoinType}}, true)
	s.Require().NoError(err)
	s.Require().NotNil(recs.Address(coinType1001))
	s.Equal("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", *recs.Address(coinType1001))
	s.Equal(expected, *recs.Address(bEns.EthCoinType))

	recs, err = s.im.Get(mockCtx, s.resolver, s.node, ens.Selection{Addresses: []bEns.CoinType{coinType1001}}, false)
	s.Require().NoError(err)
	s.Nil(recs.Address(coinType1001))
}

func (s *indexSourceSuite) TestDefaultCoinTypeRecordBeatsEthRecord() {
	s.stored(
		ens.AddressRecord{CoinType: uint32(bEns.EthCoinType), Address: "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"},
		ens.AddressRecord{CoinType: uint32(bEns.DefaultEvmCoinType), Address: "0xcccccccccccccccccccccccccccccccccccccccc"},
	)

	recs, err := s.im.Get(mockCtx, s.resolver, s.node, ens.Selection{Addresses: []bEns.CoinType{baseCoinType}}, true)
	s.Require().NoError(err)
	s.Equal(common.HexToAddress("0xcccccccccccccccccccccccccccccccccccccccc").Hex(), *recs.Address(baseCoinType))
}

func (s *indexSourceSuite) TestExplicitRecordBeatsDefault() {
	s.stored(
		ens.AddressRecord{CoinType: uint32(bEns.DefaultEvmCoinType), Address: "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"},
		ens.AddressRecord{CoinType: uint32(coinType1001), Address: "0xbbbb"},
	)

	recs, err := s.im.Get(mockCtx, s.resolver, s.node, ens.Selection{Addresses: []bEns.CoinType{coinType1001}}, true)
	s.Require().NoError(err)
	s.Equal("0xbbbb", *recs.Address(coinType1001))
}

func (s *indexSourceSuite) TestDefaultingDoesNotMutateStore() {
	stored := &ens.ResolverRecords{
		AddressRecords: []ens.AddressRecord{{CoinType: uint32(bEns.DefaultEvmCoinType), Address: vitalikLower}},
	}
	s.records.On("FindOne", mockCtx, mock.Anything).Return(stored, nil)

	_, err := s.im.Get(mockCtx, s.resolver, s.node, ens.Selection{Addresses: []bEns.CoinType{baseCoinType, 60}}, true)
	s.Require().NoError(err)
	s.Len(stored.AddressRecords, 1)
}

func (s *indexSourceSuite) TestNameAndTexts() {
	s.stored(ens.AddressRecord{CoinType: 60, Address: vitalikLower})

	recs, err := s.im.Get(mockCtx, s.resolver, s.node, ens.Selection{
		Name:      true,
		Addresses: []bEns.CoinType{60},
		Texts:     []string{"avatar", missingTextKey},
	}, false)
	s.Require().NoError(err)
	s.Equal("vitalik.eth", *recs.Name)
	s.Equal(vitalik, *recs.Address(60))
	s.Equal("ipfs://x", *recs.Texts["avatar"])
	v, ok := recs.Texts[missingTextKey]
	s.True(ok)
	s.Nil(v)
}

func (s *indexSourceSuite) TestNotIndexed() {
	s.records.On("FindOne", mockCtx, mock.Anything).Return(nil, domain.ErrNotFound)
	recs, err := s.im.Get(mockCtx, s.resolver, s.node, ens.Selection{Name: true}, false)
	s.NoError(err)
	s.Nil(recs)
}

func (s *indexSourceSuite) TestStoreErrorPropagates() {
	errDB := errors.New("db down")
	s.records.On("FindOne", mockCtx, mock.Anything).Return(nil, errDB)
	_, err := s.im.Get(mockCtx, s.resolver, s.node, ens.Selection{Name: true}, false)
	s.Equal(errDB, err)
}

func (s *indexSourceSuite) TestGetResolver() {
	registry := ens.NewAccountId(1, "0x00000000000C2E074eC69A0dFb2997BA6C7d2e1e")
	s.domainResolvers.On("FindOne", mockCtx, ens.NewDomainResolverId(registry, s.node)).
		Return(&ens.DomainResolver{Resolver: publicResolver.ToLower()}, nil).Once()
	res, err := s.im.GetResolver(mockCtx, registry, s.node)
	s.NoError(err)
	s.Equal(publicResolver.ToLower(), res)

	s.domainResolvers.On("FindOne", mockCtx, ens.NewDomainResolverId(registry, s.node)).
		Return(&ens.DomainResolver{Resolver: domain.EmptyAddress}, nil).Once()
	res, err = s.im.GetResolver(mockCtx, registry, s.node)
	s.NoError(err)
	s.True(res.IsEmpty())

	s.domainResolvers.On("FindOne", mockCtx, ens.NewDomainResolverId(registry, s.node)).
		Return(nil, domain.ErrNotFound).Once()
	res, err = s.im.GetResolver(mockCtx, registry, s.node)
	s.NoError(err)
	s.True(res.IsEmpty())
}

func (s *indexSourceSuite) TestGetPrimaryNameFallsBackToDefault() {
	s.primaryNames.On("FindOne", mockCtx, ens.NewPrimaryNameId(vitalik, baseCoinType)).Return(nil, domain.ErrNotFound).Once()
	s.primaryNames.On("FindOne", mockCtx, ens.NewPrimaryNameId(vitalik, bEns.DefaultEvmCoinType)).
		Return(&ens.PrimaryName{Name: "vitalik.eth"}, nil).Once()

	name, err := s.im.GetPrimaryName(mockCtx, vitalik, baseCoinType)
	s.Require().NoError(err)
	s.Equal("vitalik.eth", *name)
}

func (s *indexSourceSuite) TestGetPrimaryNameSpecificWins() {
	s.primaryNames.On("FindOne", mockCtx, ens.NewPrimaryNameId(vitalik, baseCoinType)).
		Return(&ens.PrimaryName{Name: "jesse.base.eth"}, nil).Once()

	name, err := s.im.GetPrimaryName(mockCtx, vitalik, baseCoinType)
	s.Require().NoError(err)
	s.Equal("jesse.base.eth", *name)
}

func (s *indexSourceSuite) TestGetPrimaryNameAbsent() {
	s.primaryNames.On("FindOne", mockCtx, ens.NewPrimaryNameId(vitalik, bEns.DefaultEvmCoinType)).Return(nil, domain.ErrNotFound).Once()

	name, err := s.im.GetPrimaryName(mockCtx, vitalik, bEns.DefaultEvmCoinType)
	s.NoError(err)
	s.Nil(name)
}
