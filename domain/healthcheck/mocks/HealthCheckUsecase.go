package mocks

import (
	mock "github.com/stretchr/testify/mock"
	ctx "github.com/x-xyz/ensapi/base/ctx"
)

// HealthCheckUsecase is a mock type for the HealthCheckUsecase type
type HealthCheckUsecase struct {
	mock.Mock
}

// Check provides a mock function with given fields: context
func (_m *HealthCheckUsecase) Check(context ctx.Ctx) error {
	ret := _m.Called(context)

	var r0 error
	if rf, ok := ret.Get(0).(func(ctx.Ctx) error); ok {
		r0 = rf(context)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}
