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

type domainResolverImpl struct {
	query query.Mongo
}

func NewDomainResolverRepo(query query.Mongo) ens.DomainResolverRepo {
	return &domainResolverImpl{query}
}

func (im *domainResolverImpl) FindOne(ctx ctx.Ctx, id ens.DomainResolverId) (*ens.DomainResolver, error) {
	res := ens.DomainResolver{}
	id.Registry = id.Registry.ToLower()
	qry, err := mongoclient.MakeBsonM(&id)
	if err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}

	err = im.query.FindOne(ctx, domain.TableDomainResolvers, qry, &res)
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
