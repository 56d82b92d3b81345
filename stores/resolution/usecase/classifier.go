package usecase

import (
	"github.com/x-xyz/ensapi/domain"
	"github.com/x-xyz/ensapi/domain/ens"
	"github.com/x-xyz/ensapi/domain/namespace"
)

// Classify matches a resolver against the namespace's deployment tables:
// ENSIP-19 reverse resolvers first, then offchain-lookup resolvers, then
// static resolvers. Anything else is unknown.
func Classify(ns *namespace.Namespace, chainId domain.ChainId, resolver domain.Address) ens.Classification {
	account := ens.NewAccountId(chainId, resolver)

	for _, r := range ns.ReverseRegistrars {
		for _, res := range r.Resolvers {
			if res.Equals(account) {
				return ens.KnownENSIP19ReverseResolver{Registrar: r.Registrar, CoinType: r.CoinType}
			}
		}
	}

	for _, r := range ns.OffchainLookupResolvers {
		if r.Resolver.Equals(account) {
			return ens.KnownOffchainLookupResolver{DeferTo: r.DeferTo}
		}
	}

	for _, r := range ns.StaticResolvers {
		if r.Resolver.Equals(account) {
			return ens.KnownOnchainStaticResolver{AddressDefaulting: r.AddressDefaulting}
		}
	}

	return ens.UnknownResolver{}
}

// ImplementsAddressDefaulting holds only for static resolvers flagged in the
// namespace table.
func ImplementsAddressDefaulting(ns *namespace.Namespace, chainId domain.ChainId, resolver domain.Address) bool {
	s, ok := Classify(ns, chainId, resolver).(ens.KnownOnchainStaticResolver)
	return ok && s.AddressDefaulting
}
