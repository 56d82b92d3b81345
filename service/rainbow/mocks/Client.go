package mocks

import (
	common "github.com/ethereum/go-ethereum/common"
	mock "github.com/stretchr/testify/mock"
	ctx "github.com/x-xyz/ensapi/base/ctx"
)

// Client is a mock type for the Client type
type Client struct {
	mock.Mock
}

// Heal provides a mock function with given fields: _a0, labelHash
func (_m *Client) Heal(_a0 ctx.Ctx, labelHash common.Hash) (string, error) {
	ret := _m.Called(_a0, labelHash)

	var r0 string
	if rf, ok := ret.Get(0).(func(ctx.Ctx, common.Hash) string); ok {
		r0 = rf(_a0, labelHash)
	} else {
		r0 = ret.Get(0).(string)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx.Ctx, common.Hash) error); ok {
		r1 = rf(_a0, labelHash)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
