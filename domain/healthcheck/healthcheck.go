package healthcheck

import (
	"context"

	"github.com/x-xyz/ensapi/base/ctx"
)

// HealthCheckUsecase represents the healthCheck's usecases
type HealthCheckUsecase interface {
	Check(context ctx.Ctx) error
}

// HealthCheckRepo is repository layer of healthCheck
type HealthCheckRepo interface {
	PingDB(context ctx.Ctx) error
	PingCache(context ctx.Ctx) error
}

// Pinger is satisfied by the mongo client
type Pinger interface {
	Ping(ctx context.Context) error
}
