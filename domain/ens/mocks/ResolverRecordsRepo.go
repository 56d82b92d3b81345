package mocks

import (
	mock "github.com/stretchr/testify/mock"
	ctx "github.com/x-xyz/ensapi/base/ctx"
	ens "github.com/x-xyz/ensapi/domain/ens"
)

// ResolverRecordsRepo is a mock type for the ResolverRecordsRepo type
type ResolverRecordsRepo struct {
	mock.Mock
}

// FindOne provides a mock function with given fields: c, id
func (_m *ResolverRecordsRepo) FindOne(c ctx.Ctx, id ens.ResolverRecordsId) (*ens.ResolverRecords, error) {
	ret := _m.Called(c, id)

	var r0 *ens.ResolverRecords
	if rf, ok := ret.Get(0).(func(ctx.Ctx, ens.ResolverRecordsId) *ens.ResolverRecords); ok {
		r0 = rf(c, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*ens.ResolverRecords)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx.Ctx, ens.ResolverRecordsId) error); ok {
		r1 = rf(c, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
