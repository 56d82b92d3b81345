package mocks

import (
	mock "github.com/stretchr/testify/mock"
	ctx "github.com/x-xyz/ensapi/base/ctx"
	domain "github.com/x-xyz/ensapi/domain"
	ens "github.com/x-xyz/ensapi/domain/ens"
)

// ResolutionUsecase is a mock type for the ResolutionUsecase type
type ResolutionUsecase struct {
	mock.Mock
}

// ResolveForward provides a mock function with given fields: c, name, sel, opts
func (_m *ResolutionUsecase) ResolveForward(c ctx.Ctx, name string, sel ens.Selection, opts ens.Options) (*ens.Records, error) {
	ret := _m.Called(c, name, sel, opts)

	var r0 *ens.Records
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*ens.Records)
	}
	return r0, ret.Error(1)
}

// ResolveReverse provides a mock function with given fields: c, address, chainId, opts
func (_m *ResolutionUsecase) ResolveReverse(c ctx.Ctx, address domain.Address, chainId domain.ChainId, opts ens.Options) (*string, error) {
	ret := _m.Called(c, address, chainId, opts)

	var r0 *string
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*string)
	}
	return r0, ret.Error(1)
}

// ResolveAutomatic provides a mock function with given fields: c, input, sel, opts
func (_m *ResolutionUsecase) ResolveAutomatic(c ctx.Ctx, input string, sel ens.Selection, opts ens.Options) (*ens.Records, error) {
	ret := _m.Called(c, input, sel, opts)

	var r0 *ens.Records
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*ens.Records)
	}
	return r0, ret.Error(1)
}

// ResolvePrimaryNames provides a mock function with given fields: c, address, chainIds, opts
func (_m *ResolutionUsecase) ResolvePrimaryNames(c ctx.Ctx, address domain.Address, chainIds []domain.ChainId, opts ens.Options) (map[domain.ChainId]ens.PrimaryNameResult, error) {
	ret := _m.Called(c, address, chainIds, opts)

	var r0 map[domain.ChainId]ens.PrimaryNameResult
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(map[domain.ChainId]ens.PrimaryNameResult)
	}
	return r0, ret.Error(1)
}

// DefaultPrimaryNameChains provides a mock function with given fields:
func (_m *ResolutionUsecase) DefaultPrimaryNameChains() []domain.ChainId {
	ret := _m.Called()

	var r0 []domain.ChainId
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.ChainId)
	}
	return r0
}
