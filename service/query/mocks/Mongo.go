package mocks

import (
	mock "github.com/stretchr/testify/mock"
	ctx "github.com/x-xyz/ensapi/base/ctx"
	domain "github.com/x-xyz/ensapi/domain"
)

// Mongo is a mock type for the Mongo type
type Mongo struct {
	mock.Mock
}

// FindOne provides a mock function with given fields: context, table, query, result
func (_m *Mongo) FindOne(context ctx.Ctx, table domain.Table, query interface{}, result interface{}) error {
	ret := _m.Called(context, table, query, result)

	var r0 error
	if rf, ok := ret.Get(0).(func(ctx.Ctx, domain.Table, interface{}, interface{}) error); ok {
		r0 = rf(context, table, query, result)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Count provides a mock function with given fields: context, table, selector
func (_m *Mongo) Count(context ctx.Ctx, table domain.Table, selector interface{}) (int, error) {
	ret := _m.Called(context, table, selector)

	var r0 int
	if rf, ok := ret.Get(0).(func(ctx.Ctx, domain.Table, interface{}) int); ok {
		r0 = rf(context, table, selector)
	} else {
		r0 = ret.Get(0).(int)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx.Ctx, domain.Table, interface{}) error); ok {
		r1 = rf(context, table, selector)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Search provides a mock function with given fields: context, table, offset, limit, sort, query, results
func (_m *Mongo) Search(context ctx.Ctx, table domain.Table, offset int, limit int, sort string, query interface{}, results interface{}) error {
	ret := _m.Called(context, table, offset, limit, sort, query, results)

	var r0 error
	if rf, ok := ret.Get(0).(func(ctx.Ctx, domain.Table, int, int, string, interface{}, interface{}) error); ok {
		r0 = rf(context, table, offset, limit, sort, query, results)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// SearchNSorts provides a mock function with given fields: context, table, offset, limit, sortFields, query, results
func (_m *Mongo) SearchNSorts(context ctx.Ctx, table domain.Table, offset int, limit int, sortFields []string, query interface{}, results interface{}) error {
	ret := _m.Called(context, table, offset, limit, sortFields, query, results)

	var r0 error
	if rf, ok := ret.Get(0).(func(ctx.Ctx, domain.Table, int, int, []string, interface{}, interface{}) error); ok {
		r0 = rf(context, table, offset, limit, sortFields, query, results)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Ping provides a mock function with given fields: context
func (_m *Mongo) Ping(context ctx.Ctx) error {
	ret := _m.Called(context)

	var r0 error
	if rf, ok := ret.Get(0).(func(ctx.Ctx) error); ok {
		r0 = rf(context)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}
