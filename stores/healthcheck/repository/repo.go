package repository

import (
	"time"

	"github.com/x-xyz/ensapi/base/ctx"
	hcdomain "github.com/x-xyz/ensapi/domain/healthcheck"
	"github.com/x-xyz/ensapi/domain/keys"
	"github.com/x-xyz/ensapi/service/redis"
)

const pingTimeout = 2 * time.Second

type impl struct {
	db         hcdomain.Pinger
	redisCache redis.Service
}

// New creates new healthCheckRepo object representation of HealthCheckRepo
// interface. redisCache may be nil when no shared cache is configured.
func New(
	db hcdomain.Pinger,
	redisCache redis.Service,
) hcdomain.HealthCheckRepo {
	return &impl{
		db:         db,
		redisCache: redisCache,
	}
}

func (im *impl) PingDB(context ctx.Ctx) error {
	ctx, cancel := ctx.WithTimeout(context, pingTimeout)
	defer cancel()
	if err := im.db.Ping(ctx); err != nil {
		context.WithField("err", err).Error("ping mongo error")
		return err
	}
	return nil
}

func (im *impl) PingCache(context ctx.Ctx) error {
	if im.redisCache == nil {
		return nil
	}
	ctx, cancel := ctx.WithTimeout(context, pingTimeout)
	defer cancel()
	if err := im.redisCache.Set(ctx, keys.RedisKey(keys.PfxHealthCheck, "testset"), []byte("1"), 30*time.Second); err != nil {
		context.WithField("err", err).Error("test redis set failed")
		return err
	}
	return nil
}
