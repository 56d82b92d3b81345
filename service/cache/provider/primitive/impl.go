package primitive

import (
	"time"

	"github.com/coocood/freecache"

	"github.com/x-xyz/ensapi/base/ctx"
	"github.com/x-xyz/ensapi/base/log"
	"github.com/x-xyz/ensapi/service/cache/provider"
)

type impl struct {
	name  string
	cache *freecache.Cache
}

// NewPrimitive creates an in-process cache of size MB
func NewPrimitive(name string, size int) provider.Provider {
	return &impl{name, freecache.NewCache(size * 1024 * 1024)}
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	val, ttl, err := im.cache.GetWithExpiration([]byte(key))
	if err == freecache.ErrNotFound {
		return nil, time.Duration(0), provider.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("key", key).Error("cache.Get failed")
		return nil, time.Duration(0), err
	}
	if ttl == 0 {
		return val, time.Duration(0), nil
	}
	return val, time.Until(time.Unix(int64(ttl), 0)), nil
}

// Set skips entries too large for the local cache, callers fall through to
// the next layer.
func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	err := im.cache.Set([]byte(key), value, int(ttl.Seconds()))
	if err == freecache.ErrLargeEntry || err == freecache.ErrLargeKey {
		c.WithFields(log.Fields{"key": key, "name": im.name, "size": len(value)}).Warn("entry too large for local cache")
		return nil
	} else if err != nil {
		c.WithField("err", err).WithField("key", key).Error("cache.Set failed")
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	im.cache.Del([]byte(key))
	return nil
}
