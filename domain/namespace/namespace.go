// Package namespace holds the static deployment tables of every supported
// ENS namespace. The tables are versioned data: a newly deployed resolver
// needs a new entry here before it can be classified.
package namespace

import (
	"sort"

	bEns "github.com/x-xyz/ensapi/base/ens"
	"github.com/x-xyz/ensapi/domain"
	"github.com/x-xyz/ensapi/domain/ens"
)

type Id string

const (
	Mainnet    Id = "mainnet"
	Sepolia    Id = "sepolia"
	Holesky    Id = "holesky"
	EnsTestEnv Id = "ens-test-env"
)

type StaticResolver struct {
	Resolver ens.AccountId
	// AddressDefaulting is set when the contract answers a missing coin type
	// from its default EVM coin type record.
	AddressDefaulting bool
}

type OffchainLookupResolver struct {
	Resolver ens.AccountId
	DeferTo  ens.DeferTo
}

// ReverseRegistrar is an ENSIP-19 StandaloneReverseRegistrar and the
// mainnet resolver that serves it, when that resolver is pinned.
type ReverseRegistrar struct {
	Registrar ens.AccountId
	CoinType  bEns.CoinType
	Resolvers []ens.AccountId
}

type Namespace struct {
	Id          Id
	RootChainId domain.ChainId
	// Registries are the ENS registries the indexing plugins read from.
	Registries              map[ens.Plugin]ens.AccountId
	StaticResolvers         []StaticResolver
	OffchainLookupResolvers []OffchainLookupResolver
	ReverseRegistrars       []ReverseRegistrar
}

// RootRegistry is the registry forward resolution starts from.
func (n *Namespace) RootRegistry() ens.AccountId {
	return n.Registries[ens.PluginSubgraph]
}

func (n *Namespace) Registry(plugin ens.Plugin) (ens.AccountId, bool) {
	r, ok := n.Registries[plugin]
	return r, ok
}

// ReverseRegistrarFor returns the registrar holding primary names for coinType.
func (n *Namespace) ReverseRegistrarFor(coinType bEns.CoinType) (ReverseRegistrar, bool) {
	for _, r := range n.ReverseRegistrars {
		if r.CoinType == coinType {
			return r, true
		}
	}
	return ReverseRegistrar{}, false
}

// ENSIP19Chains is the root chain followed by every chain whose coin type
// has a reverse registrar, ascending and without duplicates.
func (n *Namespace) ENSIP19Chains() []domain.ChainId {
	seen := map[domain.ChainId]bool{n.RootChainId: true}
	others := []domain.ChainId{}
	for _, r := range n.ReverseRegistrars {
		// the default coin type names no chain of its own
		chainId, ok := bEns.ChainForCoinType(r.CoinType, n.RootChainId)
		if !ok || chainId == 0 {
			continue
		}
		if !seen[chainId] {
			seen[chainId] = true
			others = append(others, chainId)
		}
	}
	sort.Slice(others, func(i, j int) bool { return others[i] < others[j] })
	return append([]domain.ChainId{n.RootChainId}, others...)
}

// Chains lists every chain the namespace references.
func (n *Namespace) Chains() []domain.ChainId {
	seen := map[domain.ChainId]bool{}
	add := func(id domain.ChainId) {
		seen[id] = true
	}
	add(n.RootChainId)
	for _, r := range n.Registries {
		add(r.ChainId)
	}
	for _, r := range n.StaticResolvers {
		add(r.Resolver.ChainId)
	}
	for _, r := range n.OffchainLookupResolvers {
		add(r.Resolver.ChainId)
		add(r.DeferTo.ChainId)
	}
	for _, r := range n.ReverseRegistrars {
		add(r.Registrar.ChainId)
	}
	res := make([]domain.ChainId, 0, len(seen))
	for id := range seen {
		res = append(res, id)
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}

func Get(id Id) (*Namespace, error) {
	switch id {
	case Mainnet:
		return &mainnet, nil
	case Sepolia:
		return &sepolia, nil
	case Holesky:
		return &holesky, nil
	case EnsTestEnv:
		return &ensTestEnv, nil
	}
	return nil, domain.ErrUnknownNamespace
}

func account(chainId domain.ChainId, address string) ens.AccountId {
	return ens.NewAccountId(chainId, domain.Address(address))
}
