package mocks

import (
	mock "github.com/stretchr/testify/mock"
	ctx "github.com/x-xyz/ensapi/base/ctx"
	bEns "github.com/x-xyz/ensapi/base/ens"
	domain "github.com/x-xyz/ensapi/domain"
	ens "github.com/x-xyz/ensapi/domain/ens"
)

// IndexSource is a mock type for the IndexSource type
type IndexSource struct {
	mock.Mock
}

// Get provides a mock function with given fields: c, resolver, node, sel, addressDefaulting
func (_m *IndexSource) Get(c ctx.Ctx, resolver ens.AccountId, node bEns.Node, sel ens.Selection, addressDefaulting bool) (*ens.Records, error) {
	ret := _m.Called(c, resolver, node, sel, addressDefaulting)

	var r0 *ens.Records
	if rf, ok := ret.Get(0).(func(ctx.Ctx, ens.AccountId, bEns.Node, ens.Selection, bool) *ens.Records); ok {
		r0 = rf(c, resolver, node, sel, addressDefaulting)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*ens.Records)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx.Ctx, ens.AccountId, bEns.Node, ens.Selection, bool) error); ok {
		r1 = rf(c, resolver, node, sel, addressDefaulting)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetResolver provides a mock function with given fields: c, registry, node
func (_m *IndexSource) GetResolver(c ctx.Ctx, registry ens.AccountId, node bEns.Node) (domain.Address, error) {
	ret := _m.Called(c, registry, node)

	var r0 domain.Address
	if rf, ok := ret.Get(0).(func(ctx.Ctx, ens.AccountId, bEns.Node) domain.Address); ok {
		r0 = rf(c, registry, node)
	} else {
		r0 = ret.Get(0).(domain.Address)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx.Ctx, ens.AccountId, bEns.Node) error); ok {
		r1 = rf(c, registry, node)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetPrimaryName provides a mock function with given fields: c, address, coinType
func (_m *IndexSource) GetPrimaryName(c ctx.Ctx, address domain.Address, coinType bEns.CoinType) (*string, error) {
	ret := _m.Called(c, address, coinType)

	var r0 *string
	if rf, ok := ret.Get(0).(func(ctx.Ctx, domain.Address, bEns.CoinType) *string); ok {
		r0 = rf(c, address, coinType)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*string)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx.Ctx, domain.Address, bEns.CoinType) error); ok {
		r1 = rf(c, address, coinType)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
