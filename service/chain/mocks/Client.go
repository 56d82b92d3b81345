package mocks

import (
	abi "github.com/ethereum/go-ethereum/accounts/abi"
	common "github.com/ethereum/go-ethereum/common"
	mock "github.com/stretchr/testify/mock"
	ctx "github.com/x-xyz/ensapi/base/ctx"
	domain "github.com/x-xyz/ensapi/domain"
)

// Client is a mock type for the Client type
type Client struct {
	mock.Mock
}

// Call provides a mock function with given fields: _a0, chainId, addr, _abi, method, params
func (_m *Client) Call(_a0 ctx.Ctx, chainId domain.ChainId, addr common.Address, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	var _ca []interface{}
	_ca = append(_ca, _a0, chainId, addr, _abi, method)
	_ca = append(_ca, params...)
	ret := _m.Called(_ca...)

	var r0 []interface{}
	if rf, ok := ret.Get(0).(func(ctx.Ctx, domain.ChainId, common.Address, abi.ABI, string, ...interface{}) []interface{}); ok {
		r0 = rf(_a0, chainId, addr, _abi, method, params...)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]interface{})
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx.Ctx, domain.ChainId, common.Address, abi.ABI, string, ...interface{}) error); ok {
		r1 = rf(_a0, chainId, addr, _abi, method, params...)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// HasChain provides a mock function with given fields: chainId
func (_m *Client) HasChain(chainId domain.ChainId) bool {
	ret := _m.Called(chainId)

	var r0 bool
	if rf, ok := ret.Get(0).(func(domain.ChainId) bool); ok {
		r0 = rf(chainId)
	} else {
		r0 = ret.Get(0).(bool)
	}

	return r0
}
