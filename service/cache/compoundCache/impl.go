package compoundcache

import (
	"reflect"

	"github.com/x-xyz/ensapi/base/ctx"
	"github.com/x-xyz/ensapi/service/cache"
)

type impl struct {
	layers []cache.Service
}

// NewCompoundCache chains cache layers, fastest first. Reads return on the
// first hit and back-fill the layers in front of it.
func NewCompoundCache(layers []cache.Service) cache.Service {
	return &impl{
		layers: layers,
	}
}

func (im *impl) GetByFunc(c ctx.Ctx, key string, container interface{}, getter cache.OneTimeGetter) error {
	err := im.Get(c, key, container)
	if err != nil && err != cache.ErrNotFound {
		c.WithField("err", err).WithField("key", key).Warn("Get failed, fall back to getter")
	} else if err == nil {
		return nil
	}

	val, err := getter()
	if err != nil {
		return err
	}

	if err := im.Set(c, key, val); err != nil {
		c.WithField("err", err).WithField("key", key).Error("Set failed")
	}

	reflect.ValueOf(container).Elem().Set(reflect.ValueOf(val).Elem())

	return nil
}

func (im *impl) Get(c ctx.Ctx, key string, container interface{}) error {
	var (
		err    error
		hitIdx = -1
	)

	for idx, lyr := range im.layers {
		if err = lyr.Get(c, key, container); err == cache.ErrNotFound {
			continue
		} else if err != nil {
			return err
		}
		hitIdx = idx
		break
	}

	if hitIdx == -1 {
		return cache.ErrNotFound
	}

	for idx := 0; idx < hitIdx; idx++ {
		if err := im.layers[idx].Set(c, key, container); err != nil {
			c.WithField("err", err).WithField("key", key).WithField("layer", idx).Warn("back-fill failed")
		}
	}

	return nil
}

func (im *impl) Set(c ctx.Ctx, key string, value interface{}) error {
	for _, lyr := range im.layers {
		if err := lyr.Set(c, key, value); err != nil {
			return err
		}
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	for _, lyr := range im.layers {
		if err := lyr.Del(c, key); err != nil {
			return err
		}
	}
	return nil
}
