package repository

import (
	"errors"

	"github.com/x-xyz/ensapi/base/ctx"
	"github.com/x-xyz/ensapi/base/database/mongoclient"
	"github.com/x-xyz/ensapi/base/log"
	"github.com/x-xyz/ensapi/domain"
	"github.com/x-xyz/ensapi/domain/ens"
	"github.com/x-xyz/ensapi/service/query"
)

type primaryNameImpl struct {
	query query.Mongo
}

func NewPrimaryNameRepo(query query.Mongo) ens.PrimaryNameRepo {
	return &primaryNameImpl{query}
}

func (im *primaryNameImpl) FindOne(ctx ctx.Ctx, id ens.PrimaryNameId) (*ens.PrimaryName, error) {
	res := ens.PrimaryName{}
	id.Address = id.Address.ToLower()
	qry, err := mongoclient.MakeBsonM(&id)
	if err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}

	err = im.query.FindOne(ctx, domain.TablePrimaryNames, qry, &res)
	if errors.Is(err, query.ErrNotFound) {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to query.FindOne")
		return nil, err
	}
	return &res, nil
}
