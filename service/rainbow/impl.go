package rainbow

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/sync/singleflight"
	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/ensapi/base/ctx"
	bEns "github.com/x-xyz/ensapi/base/ens"
	"github.com/x-xyz/ensapi/base/log"
	"github.com/x-xyz/ensapi/base/metrics"
	"github.com/x-xyz/ensapi/domain/keys"
	"github.com/x-xyz/ensapi/service/cache"
	compoundcache "github.com/x-xyz/ensapi/service/cache/compoundCache"
	"github.com/x-xyz/ensapi/service/cache/provider/primitive"
	redisCache "github.com/x-xyz/ensapi/service/cache/provider/redis"
)

const (
	defaultLocalTtl = 10 * time.Minute
	defaultRedisTtl = 7 * 24 * time.Hour
)

var met = metrics.New("rainbow")

func NewClient(cfg *ClientCfg) Client {
	localTtl, redisTtl := cfg.LocalTtl, cfg.RedisTtl
	if localTtl == 0 {
		localTtl = defaultLocalTtl
	}
	if redisTtl == 0 {
		redisTtl = defaultRedisTtl
	}

	layers := []cache.Service{
		cache.New(cache.ServiceConfig{
			Ttl:   localTtl,
			Pfx:   keys.PfxHeal,
			Cache: primitive.NewPrimitive(keys.PfxHeal, 16),
		}),
	}
	if cfg.Redis != nil {
		layers = append(layers, cache.New(cache.ServiceConfig{
			Ttl:   redisTtl,
			Pfx:   keys.PfxHeal,
			Cache: redisCache.NewRedis(cfg.Redis),
		}))
	}

	return &client{
		client:  cfg.HttpClient,
		url:     strings.TrimRight(cfg.Url, "/"),
		timeout: cfg.Timeout,
		cache:   compoundcache.NewCompoundCache(layers),
	}
}

type client struct {
	client  http.Client
	url     string
	timeout time.Duration
	cache   cache.Service
	group   singleflight.Group
}

func (c *client) Heal(ctx bCtx.Ctx, labelHash bEns.LabelHash) (string, error) {
	key := labelHash.Hex()
	var label string
	if err := c.cache.GetByFunc(ctx, key, &label, func() (interface{}, error) {
		v, err, shared := c.group.Do(key, func() (interface{}, error) {
			return c.heal(ctx, labelHash)
		})
		if shared {
			met.BumpSum("heal.shared", 1)
		}
		if err != nil {
			return nil, err
		}
		l := v.(string)
		return &l, nil
	}); err != nil {
		return "", err
	}
	return label, nil
}

func (c *client) heal(ctx bCtx.Ctx, labelHash bEns.LabelHash) (string, error) {
	defer met.BumpTime("heal.time").End()

	url := fmt.Sprintf("%s/v1/heal/%s", c.url, labelHash.Hex())
	status, data, err := c.get(ctx, url)
	if err != nil {
		met.BumpSum("heal.err", 1)
		return "", err
	}

	resp := HealResponse{}
	if err := json.Unmarshal(data, &resp); err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("json.Unmarshal failed")
		return "", err
	}

	if status == http.StatusNotFound || resp.ErrorCode == http.StatusNotFound {
		met.BumpSum("heal.unknown", 1)
		return "", ErrNotHealable
	}
	if status != http.StatusOK || resp.Status != statusSuccess {
		ctx.WithFields(log.Fields{
			"url":        url,
			"statusCode": status,
			"error":      resp.Error,
		}).Error("heal request not ok")
		return "", ErrStatusCodeNotOk
	}

	if crypto.Keccak256Hash([]byte(resp.Label)) != labelHash {
		ctx.WithFields(log.Fields{
			"labelHash": labelHash.Hex(),
			"label":     resp.Label,
		}).Error("healed label mismatch")
		return "", xerrors.Errorf("%s: %w", labelHash.Hex(), ErrLabelMismatch)
	}
	return resp.Label, nil
}

// get returns the status code and body; only transport failures are errors.
func (c *client) get(ctx bCtx.Ctx, url string) (int, []byte, error) {
	if c.timeout > 0 {
		var cancel func()
		ctx, cancel = bCtx.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("NewRequestWithContext failed")
		return 0, nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("client.Do failed")
		return 0, nil, err
	}
	defer resp.Body.Close()
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("failed to read body")
		return 0, nil, err
	}
	return resp.StatusCode, body, nil
}
