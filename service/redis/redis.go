package redis

import (
	"errors"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/ensapi/base/ctx"
)

const (
	// Forever means the key never expires
	Forever time.Duration = -1
)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = redis.ErrNil
	// ErrNoTTL is returned by TTL when the key exists without an expiration
	ErrNoTTL = errors.New("key has no associated expire")
	// ErrGapTime is returned when no pool is available
	ErrGapTime = errors.New("redis pool not available")
)

// Service is the subset of redis commands the api relies on.
type Service interface {
	Get(context ctx.Ctx, key string) ([]byte, error)
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	Del(context ctx.Ctx, ks ...string) (int, error)
	Exists(context ctx.Ctx, key string) (bool, error)
	// TTL returns seconds to live, ErrNotFound or ErrNoTTL
	TTL(context ctx.Ctx, key string) (int, error)
	Name() string
}
