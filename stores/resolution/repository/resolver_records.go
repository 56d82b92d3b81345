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

type resolverRecordsImpl struct {
	query query.Mongo
}

func NewResolverRecordsRepo(query query.Mongo) ens.ResolverRecordsRepo {
	return &resolverRecordsImpl{query}
}

func (im *resolverRecordsImpl) FindOne(ctx ctx.Ctx, id ens.ResolverRecordsId) (*ens.ResolverRecords, error) {
	res := ens.ResolverRecords{}
	id.Resolver = id.Resolver.ToLower()
	qry, err := mongoclient.MakeBsonM(&id)
	if err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}

	err = im.query.FindOne(ctx, domain.TableResolverRecords, qry, &res)
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
