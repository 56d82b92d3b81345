package redis

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/ensapi/base/ctx"
	"github.com/x-xyz/ensapi/base/database/redisclient"
	"github.com/x-xyz/ensapi/base/metrics"
	"github.com/x-xyz/ensapi/domain/keys"
)

var mockCtx = ctx.Background()

type redisSuite struct {
	suite.Suite
	im Service
}

// The suite needs a running redis, e.g. ENSAPI_TEST_REDIS_URI=localhost:6379
func TestRedisSuite(t *testing.T) {
	uri := os.Getenv("ENSAPI_TEST_REDIS_URI")
	if uri == "" {
		t.Skip("ENSAPI_TEST_REDIS_URI not set")
	}
	pool := redisclient.MustConnectRedis(uri, "", redisclient.RedisParam{PoolMultiplier: 4})
	suite.Run(t, &redisSuite{
		im: New("test", metrics.New("test"), &Pools{Src: pool}),
	})
}

func (s *redisSuite) TestSetGetDel() {
	key := keys.RedisKey("test", "setget")
	s.Require().NoError(s.im.Set(mockCtx, key, []byte("v"), time.Minute))

	v, err := s.im.Get(mockCtx, key)
	s.NoError(err)
	s.Equal([]byte("v"), v)

	ttl, err := s.im.TTL(mockCtx, key)
	s.NoError(err)
	s.True(ttl > 0 && ttl <= 60)

	exists, err := s.im.Exists(mockCtx, key)
	s.NoError(err)
	s.True(exists)

	n, err := s.im.Del(mockCtx, key)
	s.NoError(err)
	s.Equal(1, n)

	_, err = s.im.Get(mockCtx, key)
	s.Equal(ErrNotFound, err)
	_, err = s.im.TTL(mockCtx, key)
	s.Equal(ErrNotFound, err)
}

func (s *redisSuite) TestForever() {
	key := keys.RedisKey("test", "forever")
	s.Require().NoError(s.im.Set(mockCtx, key, []byte("v"), Forever))
	_, err := s.im.TTL(mockCtx, key)
	s.Equal(ErrNoTTL, err)
	_, err = s.im.Del(mockCtx, key)
	s.NoError(err)
}

func TestNoPool(t *testing.T) {
	im := New("cache", metrics.New("cache"), &Pools{})
	key := keys.RedisKey(keys.PfxHeal, "abc")

	require.NotPanics(t, func() {
		_, err := im.Get(mockCtx, key)
		require.Equal(t, ErrGapTime, err)

		require.Equal(t, ErrGapTime, im.Set(mockCtx, key, []byte("v"), time.Minute))
		require.Equal(t, ErrGapTime, im.Set(mockCtx, key, []byte("v"), Forever))

		_, err = im.Exists(mockCtx, key)
		require.Equal(t, ErrGapTime, err)

		_, err = im.Del(mockCtx, key, keys.RedisKey(keys.PfxHeal, "def"))
		require.Equal(t, ErrGapTime, err)
	})
}
