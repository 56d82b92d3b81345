package usecase

import (
	"errors"

	"github.com/x-xyz/ensapi/base/ctx"
	bEns "github.com/x-xyz/ensapi/base/ens"
	"github.com/x-xyz/ensapi/base/log"
	"github.com/x-xyz/ensapi/base/ptr"
	"github.com/x-xyz/ensapi/domain"
	"github.com/x-xyz/ensapi/domain/ens"
)

type indexSource struct {
	records         ens.ResolverRecordsRepo
	domainResolvers ens.DomainResolverRepo
	primaryNames    ens.PrimaryNameRepo
}

func NewIndexSource(records ens.ResolverRecordsRepo, domainResolvers ens.DomainResolverRepo, primaryNames ens.PrimaryNameRepo) ens.IndexSource {
	return &indexSource{
		records:         records,
		domainResolvers: domainResolvers,
		primaryNames:    primaryNames,
	}
}

func (im *indexSource) Get(c ctx.Ctx, resolver ens.AccountId, node bEns.Node, sel ens.Selection, addressDefaulting bool) (*ens.Records, error) {
	stored, err := im.records.FindOne(c, ens.NewResolverRecordsId(resolver, node))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"resolver": resolver,
			"node":     node.Hex(),
		}).Error("records.FindOne failed")
		return nil, err
	}

	records := ens.NewRecords(sel)
	if stored.Name != nil && *stored.Name != "" {
		records.SetName(stored.Name)
	}

	// Defaulted values are computed here and never written back.
	defaultAddress, hasDefault := stored.AddressOf(bEns.DefaultEvmCoinType)
	if !hasDefault {
		// resolvers predating ENSIP-19 keep the default address under the ETH coin type
		defaultAddress, hasDefault = stored.AddressOf(bEns.EthCoinType)
	}
	for _, coinType := range sel.Addresses {
		if address, ok := stored.AddressOf(coinType); ok {
			records.SetAddress(coinType, formatAddressString(coinType, address))
		} else if addressDefaulting && hasDefault {
			records.SetAddress(coinType, formatAddressString(coinType, defaultAddress))
		}
	}

	for _, key := range sel.Texts {
		if value, ok := stored.TextOf(key); ok && value != "" {
			v := value
			records.SetText(key, &v)
		}
	}
	return records, nil
}

func (im *indexSource) GetResolver(c ctx.Ctx, registry ens.AccountId, node bEns.Node) (domain.Address, error) {
	res, err := im.domainResolvers.FindOne(c, ens.NewDomainResolverId(registry, node))
	if errors.Is(err, domain.ErrNotFound) {
		return "", nil
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"registry": registry,
			"node":     node.Hex(),
		}).Error("domainResolvers.FindOne failed")
		return "", err
	}
	if res.Resolver.IsZero() {
		return "", nil
	}
	return res.Resolver, nil
}

func (im *indexSource) GetPrimaryName(c ctx.Ctx, address domain.Address, coinType bEns.CoinType) (*string, error) {
	name, err := im.findPrimaryName(c, address, coinType)
	if err != nil || name != nil || coinType == bEns.DefaultEvmCoinType {
		return name, err
	}
	return im.findPrimaryName(c, address, bEns.DefaultEvmCoinType)
}

func (im *indexSource) findPrimaryName(c ctx.Ctx, address domain.Address, coinType bEns.CoinType) (*string, error) {
	res, err := im.primaryNames.FindOne(c, ens.NewPrimaryNameId(address, coinType))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"address":  address,
			"coinType": coinType,
		}).Error("primaryNames.FindOne failed")
		return nil, err
	}
	return ptr.StringOrNil(res.Name), nil
}
