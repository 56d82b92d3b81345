package mocks

import (
	mock "github.com/stretchr/testify/mock"
	ctx "github.com/x-xyz/ensapi/base/ctx"
	bEns "github.com/x-xyz/ensapi/base/ens"
	domain "github.com/x-xyz/ensapi/domain"
	ens "github.com/x-xyz/ensapi/domain/ens"
)

// RpcSource is a mock type for the RpcSource type
type RpcSource struct {
	mock.Mock
}

// Get provides a mock function with given fields: c, resolver, name, sel, exactMatch
func (_m *RpcSource) Get(c ctx.Ctx, resolver ens.AccountId, name string, sel ens.Selection, exactMatch bool) (*ens.Records, error) {
	ret := _m.Called(c, resolver, name, sel, exactMatch)

	var r0 *ens.Records
	if rf, ok := ret.Get(0).(func(ctx.Ctx, ens.AccountId, string, ens.Selection, bool) *ens.Records); ok {
		r0 = rf(c, resolver, name, sel, exactMatch)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*ens.Records)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx.Ctx, ens.AccountId, string, ens.Selection, bool) error); ok {
		r1 = rf(c, resolver, name, sel, exactMatch)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetResolver provides a mock function with given fields: c, registry, node
func (_m *RpcSource) GetResolver(c ctx.Ctx, registry ens.AccountId, node bEns.Node) (domain.Address, error) {
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
