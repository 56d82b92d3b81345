package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/ensapi/base/ctx"
	"github.com/x-xyz/ensapi/domain/healthcheck/mocks"
)

func TestCheck(t *testing.T) {
	req := require.New(t)

	repo := &mocks.HealthCheckRepo{}
	repo.On("PingDB", mock.Anything).Return(nil).Once()
	repo.On("PingCache", mock.Anything).Return(nil).Once()
	req.NoError(New(repo).Check(ctx.Background()))
	repo.AssertExpectations(t)

	errDB := errors.New("db down")
	repo = &mocks.HealthCheckRepo{}
	repo.On("PingDB", mock.Anything).Return(errDB).Once()
	req.Equal(errDB, New(repo).Check(ctx.Background()))
	repo.AssertNotCalled(t, "PingCache", mock.Anything)
}
